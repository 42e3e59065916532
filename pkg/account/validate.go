package account

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// We don't use the internal errors package here because validation will rewrite it anyways
// Just spit out errors and turn them into validation errors inside the appropriate functions

var accountIDRegex = regexp.MustCompile("^[0-9]{12}$")
var regionRegex = regexp.MustCompile(`^[a-z]{2}(-[a-z]+)+-[0-9]$`)

var validateID = []validation.Rule{
	validation.NotNil.Error("must be a string"),
	validation.Match(accountIDRegex).Error("must be a string with 12 digits"),
}

var validateStatus = []validation.Rule{
	validation.NotNil.Error("must be a valid account status"),
}

var validateRoleArn = []validation.Rule{
	validation.NotNil.Error("must be an iam role arn"),
}

var validateRegions = []validation.Rule{
	validation.By(isRegionList),
}

var validateEmail = []validation.Rule{
	validation.NilOrNotEmpty.Error("must not be empty"),
	is.Email.Error("must be a valid email address"),
}

var validateInt64 = []validation.Rule{
	validation.NotNil.Error("must be an epoch timestamp"),
}

func isNil(value interface{}) error {
	if !reflect.ValueOf(value).IsNil() {
		return errors.New("must be empty")
	}
	return nil
}

func isNilOrEqual(d string) validation.RuleFunc {
	return func(value interface{}) error {
		if !reflect.ValueOf(value).IsNil() {
			s, _ := value.(*string)
			if *s != d {
				return errors.New("must be empty or unchanged")
			}
		}
		return nil
	}
}

func isRegionList(value interface{}) error {
	regions, _ := value.([]string)
	if len(regions) == 0 {
		return errors.New("must contain at least one region")
	}
	for _, region := range regions {
		if !regionRegex.MatchString(region) {
			return fmt.Errorf("%q is not a valid region", region)
		}
	}
	return nil
}

func isAccountDeregistered(value interface{}) error {
	s, _ := value.(*Status)
	if *s != StatusDeregistered {
		return errors.New("must be deregistered")
	}
	return nil
}
