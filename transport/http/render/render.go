package render

import (
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/jmcelreavey/todo-li-app/internal/domains/todo/model/dto"
	"github.com/jmcelreavey/todo-li-app/shared/constant"
	"github.com/jmcelreavey/todo-li-app/shared/validator"
)

// AuthPage carries the state of the sign-in and sign-up forms: the submitted
// values, per-field validation errors, and a single form-level error for
// failed credentials.
type AuthPage struct {
	Title  string
	Name   string
	Error  string
	Errors validator.FieldErrors
}

// CreateForm is the state of the new-todo modal.
type CreateForm struct {
	Title  string
	Errors validator.FieldErrors
}

// EditForm is the state of the edit modal.
type EditForm struct {
	ID       int64
	Title    string
	Progress string
	Errors   validator.FieldErrors
}

// DeleteConfirm is the state of the delete-confirmation modal.
type DeleteConfirm struct {
	ID    int64
	Title string
}

// TodosPage is the todo list with its tabs and whichever modal is open.
type TodosPage struct {
	Title    string
	Flash    string
	Progress string
	Todos    []dto.TodoResponse
	Create   *CreateForm
	Edit     *EditForm
	Delete   *DeleteConfirm
}

// BookmarksPage is the bookmarked-todos list.
type BookmarksPage struct {
	Title string
	Flash string
	Todos []dto.TodoResponse
}

type errorPage struct {
	Title   string
	Message string
}

func SignIn(w http.ResponseWriter, code int, data AuthPage) {
	if data.Title == "" {
		data.Title = "Sign In"
	}

	execute(w, code, data, "templates/base.html", "templates/sign_in.html")
}

func SignUp(w http.ResponseWriter, code int, data AuthPage) {
	if data.Title == "" {
		data.Title = "Sign Up"
	}

	execute(w, code, data, "templates/base.html", "templates/sign_up.html")
}

func Todos(w http.ResponseWriter, code int, data TodosPage) {
	if data.Title == "" {
		data.Title = "Todo List"
	}

	execute(w, code, data, "templates/base.html", "templates/todos.html")
}

func Bookmarks(w http.ResponseWriter, code int, data BookmarksPage) {
	if data.Title == "" {
		data.Title = "Bookmarked"
	}

	execute(w, code, data, "templates/base.html", "templates/bookmarks.html")
}

func NotFound(w http.ResponseWriter) {
	execute(w, http.StatusNotFound, errorPage{Title: "Not Found"}, "templates/base.html", "templates/not_found.html")
}

// Error renders the generic error page. The message shown is the failure
// message when err is classified, or a generic apology otherwise.
func Error(w http.ResponseWriter, code int, message string) {
	if message == "" {
		message = constant.ResponseErrorUnexpected
	}

	execute(w, code, errorPage{Title: "Error", Message: message}, "templates/base.html", "templates/error.html")
}

func execute(w http.ResponseWriter, code int, data any, files ...string) {
	tmpl := template.Must(template.ParseFS(templateFS, files...))

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
	w.WriteHeader(code)

	if err := tmpl.Execute(w, data); err != nil {
		log.Error().Err(err).Msg("failed to render template")
	}
}
