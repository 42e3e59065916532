package api

import (
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/ajittgosavii/cloudidps/pkg/errors"
	"github.com/gorilla/schema"
	"gopkg.in/oleiade/reflections.v1"
)

// GetStructFromQuery converts r query into a struct
func GetStructFromQuery(i interface{}, v url.Values) error {
	var decoder = schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	err := decoder.Decode(i, v)
	if err != nil {
		return errors.NewValidation("query", err)
	}
	return nil
}

// BuildNextURL merges the pagination cursor fields of the query struct
// into the request's URL so a client can follow the Link header.
// Cursor fields are the struct fields prefixed with "Next".
func BuildNextURL(r *http.Request, i interface{}, baseURL url.URL) (url.URL, error) {
	nextURL := baseURL
	nextURL.Path = r.URL.Path
	query := r.URL.Query()

	fieldNames, err := reflections.Fields(i)
	if err != nil {
		return url.URL{}, errors.NewInternalServer("unable to read pagination fields", err)
	}

	for _, fieldName := range fieldNames {
		if !strings.HasPrefix(fieldName, "Next") {
			continue
		}
		value, err := reflections.GetField(i, fieldName)
		if err != nil {
			return url.URL{}, errors.NewInternalServer("unable to read pagination fields", err)
		}

		rv := reflect.ValueOf(value)
		if rv.Kind() == reflect.Ptr {
			if rv.IsNil() {
				continue
			}
			rv = rv.Elem()
		}

		// the query parameter names come from the schema tags so the
		// next link decodes with GetStructFromQuery
		paramName := strings.ToLower(fieldName[:1]) + fieldName[1:]
		if tag, err := reflections.GetFieldTag(i, fieldName, "schema"); err == nil && tag != "" {
			paramName = strings.Split(tag, ",")[0]
		}
		query.Set(paramName, fmt.Sprintf("%v", rv.Interface()))
	}

	nextURL.RawQuery = query.Encode()
	return nextURL, nil
}
