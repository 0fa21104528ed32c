package api

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// invalid reports whether the request payload fails its `validate` tags.
// Each endpoint supplies its own client-facing message, so the validator's
// error detail is not surfaced.
func invalid(req any) bool {
	return validate.Struct(req) != nil
}
