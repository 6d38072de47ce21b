package dto

import (
	"net/http"

	"github.com/jmcelreavey/todo-li-app/internal/domains/todo/model"
	"github.com/jmcelreavey/todo-li-app/shared/constant"
	gDto "github.com/jmcelreavey/todo-li-app/shared/dto"
	gModel "github.com/jmcelreavey/todo-li-app/shared/model"
	"github.com/jmcelreavey/todo-li-app/shared/timezone"
)

type CreateTodoRequest struct {
	Title string `form:"title" validate:"required,max=20"`
}

// NewCreateTodoRequest binds the new-todo form fields.
func NewCreateTodoRequest(r *http.Request) CreateTodoRequest {
	return CreateTodoRequest{
		Title: r.FormValue(constant.FormFieldTitle),
	}
}

func (c *CreateTodoRequest) ToModel(userID int64) model.Todo {
	return model.Todo{
		Title:    c.Title,
		Progress: constant.ProgressIncomplete,
		Bookmark: false,
		UserID:   userID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type UpdateTodoRequest struct {
	Title    string `db:"title"    form:"title"    validate:"required,max=20"`
	Progress string `db:"progress" form:"progress" validate:"required,oneof=incomplete inprogress complete"`
}

// NewUpdateTodoRequest binds the edit form fields.
func NewUpdateTodoRequest(r *http.Request) UpdateTodoRequest {
	return UpdateTodoRequest{
		Title:    r.FormValue(constant.FormFieldTitle),
		Progress: r.FormValue(constant.FormFieldProgress),
	}
}

type TodoResponse struct {
	ID       int64
	Title    string
	Progress string
	Bookmark bool
	gDto.Metadata
}

func (r *TodoResponse) FromModel(model model.Todo) {
	r.ID = model.ID
	r.Title = model.Title
	r.Progress = model.Progress
	r.Bookmark = model.Bookmark
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Todo) []TodoResponse {
	res := make([]TodoResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
