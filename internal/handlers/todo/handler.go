package todo

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/jmcelreavey/todo-li-app/infras/otel"
	"github.com/jmcelreavey/todo-li-app/infras/session"
	"github.com/jmcelreavey/todo-li-app/internal/domains/todo/model/dto"
	"github.com/jmcelreavey/todo-li-app/internal/domains/todo/service"
	"github.com/jmcelreavey/todo-li-app/shared/constant"
	"github.com/jmcelreavey/todo-li-app/shared/failure"
	"github.com/jmcelreavey/todo-li-app/shared/validator"
	"github.com/jmcelreavey/todo-li-app/transport/http/middleware"
	"github.com/jmcelreavey/todo-li-app/transport/http/render"
	"github.com/jmcelreavey/todo-li-app/transport/http/response"
)

const messageInvalidParam = "Invalid parameter."

type Handler struct {
	service  service.Todo
	sessions session.Sessions
	guard    middleware.Auth
	otel     otel.Otel
}

func New(service service.Todo, sessions session.Sessions, guard middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		sessions: sessions,
		guard:    guard,
		otel:     otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/todos", func(r chi.Router) {
		r.Use(handler.guard.RequireAuth)

		r.Route("/{progress}", func(r chi.Router) {
			r.Get("/", handler.List)
			r.Post("/", handler.Action)
			r.Get("/new", handler.CreatePage)
			r.Post("/new", handler.Create)
			r.Get("/{todoId}/edit", handler.EditPage)
			r.Post("/{todoId}/edit", handler.Update)
		})
	})
}

// List renders the todo table for one progress tab. A deletedId query param
// opens the delete-confirmation modal on top of the list.
func (handler *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".List")
	defer scope.End()

	progress, ok := handler.progress(r)
	if !ok {
		render.NotFound(w)

		return
	}

	page, err := handler.listPage(w, r, progress)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if rawID := r.URL.Query().Get(constant.FormFieldDeletedID); rawID != "" {
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			response.WithError(w, failure.BadRequestFromString(messageInvalidParam))

			return
		}

		userID, _ := ctx.Value(constant.ContextKeyUserID).(int64)

		todo, err := handler.service.Get(ctx, id, userID)
		if err != nil {
			scope.TraceError(err)

			response.WithError(w, err)

			return
		}

		page.Delete = &render.DeleteConfirm{ID: todo.ID, Title: todo.Title}
	}

	render.Todos(w, http.StatusOK, page)
}

// Action dispatches the list form posts by intent: delete removes the todo
// named by the deletedId query param, bookmark flips the flag.
func (handler *Handler) Action(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Action")
	defer scope.End()

	progress, ok := handler.progress(r)
	if !ok {
		render.NotFound(w)

		return
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(int64)

	switch r.FormValue(constant.FormFieldIntent) {
	case constant.IntentDelete:
		id, err := strconv.ParseInt(r.URL.Query().Get(constant.FormFieldDeletedID), 10, 64)
		if err != nil {
			response.WithError(w, failure.BadRequestFromString(messageInvalidParam))

			return
		}

		title, err := handler.service.Delete(ctx, id, userID)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to delete todo")

			response.WithError(w, err)

			return
		}

		handler.flash(w, r, title+" has been deleted.")
		response.Redirect(w, r, constant.PathTodos+"/"+progress)
	case constant.IntentBookmark:
		id, err := strconv.ParseInt(r.FormValue(constant.FormFieldTodoID), 10, 64)
		if err != nil {
			response.WithError(w, failure.BadRequestFromString(messageInvalidParam))

			return
		}

		if err := handler.service.ToggleBookmark(ctx, id, userID); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to toggle bookmark")

			response.WithError(w, err)

			return
		}

		response.Redirect(w, r, constant.PathTodos+"/"+progress)
	default:
		response.WithError(w, failure.BadRequestFromString(messageInvalidParam))
	}
}

// CreatePage renders the list with the create modal open.
func (handler *Handler) CreatePage(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePage")
	defer scope.End()

	progress, ok := handler.progress(r)
	if !ok {
		render.NotFound(w)

		return
	}

	page, err := handler.listPage(w, r, progress)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	page.Create = &render.CreateForm{}

	render.Todos(w, http.StatusOK, page)
}

// Create adds a todo and sends the user back to the incomplete tab with a
// confirmation flash. Validation failures re-render the modal in place.
func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Create")
	defer scope.End()

	progress, ok := handler.progress(r)
	if !ok {
		render.NotFound(w)

		return
	}

	req := dto.NewCreateTodoRequest(r)

	if fieldErrors := validator.ValidateStruct(&req); fieldErrors != nil {
		page, err := handler.listPage(w, r, progress)
		if err != nil {
			scope.TraceError(err)

			response.WithError(w, err)

			return
		}

		page.Create = &render.CreateForm{Title: req.Title, Errors: fieldErrors}

		render.Todos(w, http.StatusOK, page)

		return
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(int64)

	if _, err := handler.service.Create(ctx, req, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create todo")

		response.WithError(w, err)

		return
	}

	handler.flash(w, r, "Created "+req.Title+".")
	response.Redirect(w, r, constant.PathTodosIndex)
}

// EditPage renders the list with the edit modal open, prefilled from the todo.
func (handler *Handler) EditPage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EditPage")
	defer scope.End()

	progress, ok := handler.progress(r)
	if !ok {
		render.NotFound(w)

		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "todoId"), 10, 64)
	if err != nil {
		response.WithError(w, failure.BadRequestFromString(messageInvalidParam))

		return
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(int64)

	todo, err := handler.service.Get(ctx, id, userID)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	page, err := handler.listPage(w, r, progress)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	page.Edit = &render.EditForm{ID: todo.ID, Title: todo.Title, Progress: todo.Progress}

	render.Todos(w, http.StatusOK, page)
}

// Update saves the edit and redirects to the tab matching the new progress.
func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Update")
	defer scope.End()

	progress, ok := handler.progress(r)
	if !ok {
		render.NotFound(w)

		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "todoId"), 10, 64)
	if err != nil {
		response.WithError(w, failure.BadRequestFromString(messageInvalidParam))

		return
	}

	req := dto.NewUpdateTodoRequest(r)

	if fieldErrors := validator.ValidateStruct(&req); fieldErrors != nil {
		page, err := handler.listPage(w, r, progress)
		if err != nil {
			scope.TraceError(err)

			response.WithError(w, err)

			return
		}

		page.Edit = &render.EditForm{ID: id, Title: req.Title, Progress: req.Progress, Errors: fieldErrors}

		render.Todos(w, http.StatusOK, page)

		return
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(int64)

	if err := handler.service.Update(ctx, req, id, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update todo")

		response.WithError(w, err)

		return
	}

	handler.flash(w, r, "Successfully edited "+req.Title+".")
	response.Redirect(w, r, constant.PathTodos+"/"+req.Progress)
}

// listPage loads the table data and drains the pending flash, rewriting the
// cookie when the flash was consumed.
func (handler *Handler) listPage(w http.ResponseWriter, r *http.Request, progress string) (render.TodosPage, error) {
	ctx := r.Context()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(int64)

	todos, err := handler.service.GetByProgress(ctx, progress, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list todos")

		return render.TodosPage{}, err
	}

	page := render.TodosPage{
		Progress: progress,
		Todos:    todos,
	}

	if state, ok := ctx.Value(constant.ContextKeySession).(*session.State); ok {
		page.Flash = state.ConsumeFlash()
		if state.Dirty() {
			if err := handler.sessions.Write(w, state); err != nil {
				log.Error().Err(err).Msg("failed to rewrite session")
			}
		}
	}

	return page, nil
}

func (handler *Handler) flash(w http.ResponseWriter, r *http.Request, message string) {
	state, ok := r.Context().Value(constant.ContextKeySession).(*session.State)
	if !ok {
		return
	}

	state.Flash(message)

	if err := handler.sessions.Write(w, state); err != nil {
		log.Error().Err(err).Msg("failed to write session")
	}
}

func (handler *Handler) progress(r *http.Request) (string, bool) {
	progress := chi.URLParam(r, "progress")

	switch progress {
	case constant.ProgressIncomplete, constant.ProgressInProgress, constant.ProgressComplete:
		return progress, true
	default:
		return "", false
	}
}
