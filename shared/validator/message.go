package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":      "{field} is required.",
		"min":           "Please enter at least {param} characters.",
		"max":           "Please enter at most {param} characters.",
		"alphanum":      "Please enter alphanumeric characters only.",
		"passwordchars": "Please enter alphanumeric and symbol characters only.",
		"oneof":         "{field} must be one of: {param}.",
	}
)

func fieldMessages(err error) FieldErrors {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return FieldErrors{"form": {err.Error()}}
	}

	fields := FieldErrors{}

	for _, valErr := range valErrors {
		field := valErr.Field()

		msg := messages[valErr.Tag()]
		if msg == "" {
			msg = valErr.Error()
		} else {
			msg = strings.ReplaceAll(msg, "{field}", field)
			msg = strings.ReplaceAll(msg, "{param}", valErr.Param())
		}

		fields[field] = append(fields[field], msg)
	}

	return fields
}
