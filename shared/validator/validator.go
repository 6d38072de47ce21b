package validator

import (
	"reflect"
	"regexp"
	"strings"

	val "github.com/go-playground/validator/v10"
)

// FieldErrors maps a form field name to its validation messages in rule
// order. A nil map means the input is valid; templates surface only the
// first message per field.
type FieldErrors map[string][]string

// First returns the first message recorded for the given field, or "".
func (f FieldErrors) First(field string) string {
	if msgs, ok := f[field]; ok && len(msgs) > 0 {
		return msgs[0]
	}

	return ""
}

var validate *val.Validate

// passwordChars limits passwords to alphanumerics plus common ASCII symbols.
var passwordChars = regexp.MustCompile(`^[a-zA-Z0-9!@#$%^&*()_+\-=[\]{};':"\\|,.<>/?]*$`)

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	err := validate.RegisterValidation("passwordchars", func(fl val.FieldLevel) bool {
		return passwordChars.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
}

// ValidateStruct checks data against its validate tags and returns the
// field-level messages. Validation is pure: it never touches the store and
// the same input always yields the same result.
// https://github.com/go-playground/validator
func ValidateStruct[T any](data *T) FieldErrors {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	return fieldMessages(err)
}
