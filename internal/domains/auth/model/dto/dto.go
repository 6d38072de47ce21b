package dto

import (
	"net/http"

	userModel "github.com/jmcelreavey/todo-li-app/internal/domains/user/model"
	"github.com/jmcelreavey/todo-li-app/shared/constant"
	gModel "github.com/jmcelreavey/todo-li-app/shared/model"
	"github.com/jmcelreavey/todo-li-app/shared/timezone"
)

type SignUpRequest struct {
	Name     string `form:"name"     validate:"required,min=4,max=20,alphanum"`
	Password string `form:"password" validate:"required,min=8,max=20,passwordchars"`
}

// NewSignUpRequest binds the sign-up form fields.
func NewSignUpRequest(r *http.Request) SignUpRequest {
	return SignUpRequest{
		Name:     r.FormValue(constant.FormFieldName),
		Password: r.FormValue(constant.FormFieldPassword),
	}
}

func (r *SignUpRequest) ToUserModel(hashedPassword string) userModel.User {
	return userModel.User{
		Name:     r.Name,
		Password: hashedPassword,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type SignInRequest struct {
	Name     string `form:"name"     validate:"required,min=4,max=20,alphanum"`
	Password string `form:"password" validate:"required,min=8,max=20,passwordchars"`
}

// NewSignInRequest binds the sign-in form fields.
func NewSignInRequest(r *http.Request) SignInRequest {
	return SignInRequest{
		Name:     r.FormValue(constant.FormFieldName),
		Password: r.FormValue(constant.FormFieldPassword),
	}
}
