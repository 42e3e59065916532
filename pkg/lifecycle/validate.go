package lifecycle

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// We don't use the internal errors package here because validation will rewrite it anyways
// Just spit out errors and turn them into validation errors inside the appropriate functions

var accountIDRegex = regexp.MustCompile("^[0-9]{12}$")

var validateRunID = []validation.Rule{
	validation.NotNil.Error("must be a run id"),
	is.UUIDv4.Error("must be a uuidv4"),
}

var validateAccountID = []validation.Rule{
	validation.NotNil.Error("must be a string"),
	validation.Match(accountIDRegex).Error("must be a string with 12 digits"),
}

var validateKind = []validation.Rule{
	validation.NotNil.Error("must be a workflow kind"),
}

var validateRunStatus = []validation.Rule{
	validation.NotNil.Error("must be a run status"),
}
