package bookmark

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/jmcelreavey/todo-li-app/infras/otel"
	"github.com/jmcelreavey/todo-li-app/infras/session"
	"github.com/jmcelreavey/todo-li-app/internal/domains/todo/service"
	"github.com/jmcelreavey/todo-li-app/shared/constant"
	"github.com/jmcelreavey/todo-li-app/shared/failure"
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
	r.Route("/bookmarks", func(r chi.Router) {
		r.Use(handler.guard.RequireAuth)
		r.Get("/", handler.List)
		r.Post("/", handler.Toggle)
	})
}

// List renders the bookmarked todos.
func (handler *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Bookmarks")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(int64)

	todos, err := handler.service.GetBookmarked(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list bookmarked todos")

		response.WithError(w, err)

		return
	}

	page := render.BookmarksPage{Todos: todos}

	if state, ok := ctx.Value(constant.ContextKeySession).(*session.State); ok {
		page.Flash = state.ConsumeFlash()
		if state.Dirty() {
			if err := handler.sessions.Write(w, state); err != nil {
				log.Error().Err(err).Msg("failed to rewrite session")
			}
		}
	}

	render.Bookmarks(w, http.StatusOK, page)
}

// Toggle flips the bookmark flag and returns to the bookmarks list.
func (handler *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleBookmark")
	defer scope.End()

	if r.FormValue(constant.FormFieldIntent) != constant.IntentBookmark {
		response.WithError(w, failure.BadRequestFromString(messageInvalidParam))

		return
	}

	id, err := strconv.ParseInt(r.FormValue(constant.FormFieldTodoID), 10, 64)
	if err != nil {
		response.WithError(w, failure.BadRequestFromString(messageInvalidParam))

		return
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(int64)

	if err := handler.service.ToggleBookmark(ctx, id, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to toggle bookmark")

		response.WithError(w, err)

		return
	}

	response.Redirect(w, r, constant.PathBookmarks)
}
