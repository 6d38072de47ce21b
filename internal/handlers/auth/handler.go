package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/jmcelreavey/todo-li-app/infras/otel"
	"github.com/jmcelreavey/todo-li-app/infras/session"
	"github.com/jmcelreavey/todo-li-app/internal/domains/auth/model/dto"
	"github.com/jmcelreavey/todo-li-app/internal/domains/auth/service"
	"github.com/jmcelreavey/todo-li-app/shared/constant"
	"github.com/jmcelreavey/todo-li-app/shared/failure"
	"github.com/jmcelreavey/todo-li-app/shared/validator"
	"github.com/jmcelreavey/todo-li-app/transport/http/middleware"
	"github.com/jmcelreavey/todo-li-app/transport/http/render"
	"github.com/jmcelreavey/todo-li-app/transport/http/response"
)

type Handler struct {
	service  service.Auth
	sessions session.Sessions
	guard    middleware.Auth
	otel     otel.Otel
}

func New(service service.Auth, sessions session.Sessions, guard middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		sessions: sessions,
		guard:    guard,
		otel:     otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(handler.guard.RedirectAuthenticated)
			r.Get("/sign-in", handler.SignInPage)
			r.Get("/sign-up", handler.SignUpPage)
		})
		r.Post("/sign-in", handler.SignIn)
		r.Post("/sign-up", handler.SignUp)
	})
	r.Post("/logout", handler.Logout)
}

// SignInPage renders the sign-in form.
func (handler *Handler) SignInPage(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SignInPage")
	defer scope.End()

	render.SignIn(w, http.StatusOK, render.AuthPage{})
}

// SignIn verifies the credentials and opens a session. A failed attempt
// re-renders the form with a single undifferentiated error.
func (handler *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SignIn")
	defer scope.End()

	req := dto.NewSignInRequest(r)

	if fieldErrors := validator.ValidateStruct(&req); fieldErrors != nil {
		render.SignIn(w, http.StatusOK, render.AuthPage{Name: req.Name, Errors: fieldErrors})

		return
	}

	userID, err := handler.service.SignIn(ctx, req)
	if err != nil {
		if failure.IsCode(err, http.StatusUnauthorized) {
			render.SignIn(w, http.StatusOK, render.AuthPage{Name: req.Name, Error: failure.GetMessage(err)})

			return
		}

		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sign in")

		response.WithError(w, err)

		return
	}

	if err := handler.sessions.Write(w, handler.sessions.Issue(userID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to write session")

		response.WithError(w, err)

		return
	}

	response.Redirect(w, r, constant.PathTodosIndex)
}

// SignUpPage renders the sign-up form.
func (handler *Handler) SignUpPage(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SignUpPage")
	defer scope.End()

	render.SignUp(w, http.StatusOK, render.AuthPage{})
}

// SignUp creates the account and signs the new user straight in.
func (handler *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SignUp")
	defer scope.End()

	req := dto.NewSignUpRequest(r)

	if fieldErrors := validator.ValidateStruct(&req); fieldErrors != nil {
		render.SignUp(w, http.StatusOK, render.AuthPage{Name: req.Name, Errors: fieldErrors})

		return
	}

	userID, err := handler.service.SignUp(ctx, req)
	if err != nil {
		if failure.IsCode(err, http.StatusConflict) {
			render.SignUp(w, http.StatusOK, render.AuthPage{Name: req.Name, Error: failure.GetMessage(err)})

			return
		}

		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sign up")

		response.WithError(w, err)

		return
	}

	if err := handler.sessions.Write(w, handler.sessions.Issue(userID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to write session")

		response.WithError(w, err)

		return
	}

	response.Redirect(w, r, constant.PathTodosIndex)
}

// Logout ends the session.
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	handler.sessions.Clear(w)

	response.Redirect(w, r, constant.PathSignIn)
}
