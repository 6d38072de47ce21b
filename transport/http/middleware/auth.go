package middleware

import (
	"context"
	"net/http"

	"github.com/jmcelreavey/todo-li-app/infras/otel"
	"github.com/jmcelreavey/todo-li-app/infras/session"
	"github.com/jmcelreavey/todo-li-app/shared/constant"
)

// Auth guards routes behind the session cookie.
type Auth interface {
	RequireAuth(next http.Handler) http.Handler
	RedirectAuthenticated(next http.Handler) http.Handler
}

type authImpl struct {
	sessions session.Sessions
	otel     otel.Otel
}

func NewAuthMiddleware(sessions session.Sessions, otel otel.Otel) Auth {
	return &authImpl{
		sessions: sessions,
		otel:     otel,
	}
}

// RequireAuth redirects anonymous requests to the sign-in page and puts the
// session user id on the request context for handlers downstream.
func (m *authImpl) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		state, err := m.sessions.Read(request)
		if err != nil {
			http.Redirect(writer, request, constant.PathSignIn, http.StatusSeeOther)

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, state.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeySession, state)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RedirectAuthenticated sends signed-in users straight to the todo list, so
// the sign-in and sign-up pages only show to anonymous visitors.
func (m *authImpl) RedirectAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if _, err := m.sessions.Read(request); err == nil {
			http.Redirect(writer, request, constant.PathTodosIndex, http.StatusSeeOther)

			return
		}

		next.ServeHTTP(writer, request)
	})
}
