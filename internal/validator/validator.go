// internal/validator/validator.go
package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

var nonSpace = regexp.MustCompile(`\S`)

func init() {
	Validate = validator.New()

	// Report JSON names in error messages: "productName is required".
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Non-empty and not only whitespace.
	_ = Validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return nonSpace.MatchString(fl.Field().String())
	})
}
