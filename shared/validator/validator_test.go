package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmcelreavey/todo-li-app/shared/validator"
)

type credentialsForm struct {
	Name     string `form:"name"     validate:"required,min=4,max=20,alphanum"`
	Password string `form:"password" validate:"required,min=8,max=20,passwordchars"`
}

type todoForm struct {
	Title    string `form:"title"    validate:"required,max=20"`
	Progress string `form:"progress" validate:"required,oneof=incomplete inprogress complete"`
}

func TestValidateStruct_Credentials(t *testing.T) {
	tests := []struct {
		name      string
		form      credentialsForm
		wantField string
	}{
		{name: "valid", form: credentialsForm{Name: "alice1", Password: "Secret123!"}},
		{name: "name too short", form: credentialsForm{Name: "abc", Password: "Secret123!"}, wantField: "name"},
		{name: "name too long", form: credentialsForm{Name: strings.Repeat("a", 21), Password: "Secret123!"}, wantField: "name"},
		{name: "name not alphanumeric", form: credentialsForm{Name: "alice!", Password: "Secret123!"}, wantField: "name"},
		{name: "name missing", form: credentialsForm{Password: "Secret123!"}, wantField: "name"},
		{name: "password too short", form: credentialsForm{Name: "alice1", Password: "short"}, wantField: "password"},
		{name: "password illegal characters", form: credentialsForm{Name: "alice1", Password: "pässwörd123"}, wantField: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fieldErrors := validator.ValidateStruct(&tt.form)

			if tt.wantField == "" {
				assert.Nil(t, fieldErrors)

				return
			}

			assert.Contains(t, fieldErrors, tt.wantField)
			assert.NotEmpty(t, fieldErrors.First(tt.wantField))
		})
	}
}

func TestValidateStruct_TitleBoundary(t *testing.T) {
	exactly20 := todoForm{Title: strings.Repeat("a", 20), Progress: "incomplete"}
	assert.Nil(t, validator.ValidateStruct(&exactly20))

	tooLong := todoForm{Title: strings.Repeat("a", 21), Progress: "incomplete"}
	fieldErrors := validator.ValidateStruct(&tooLong)
	assert.Contains(t, fieldErrors.First("title"), "20")
}

func TestValidateStruct_Progress(t *testing.T) {
	bad := todoForm{Title: "Buy milk", Progress: "done"}
	fieldErrors := validator.ValidateStruct(&bad)
	assert.Contains(t, fieldErrors, "progress")

	for _, progress := range []string{"incomplete", "inprogress", "complete"} {
		good := todoForm{Title: "Buy milk", Progress: progress}
		assert.Nil(t, validator.ValidateStruct(&good))
	}
}

func TestValidateStruct_Deterministic(t *testing.T) {
	form := credentialsForm{Name: "ab", Password: "short"}

	first := validator.ValidateStruct(&form)
	second := validator.ValidateStruct(&form)

	assert.Equal(t, first, second)
}

func TestFieldErrors_First(t *testing.T) {
	fieldErrors := validator.FieldErrors{"title": {"one", "two"}}

	assert.Equal(t, "one", fieldErrors.First("title"))
	assert.Empty(t, fieldErrors.First("progress"))
}
