package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jmcelreavey/todo-li-app/internal/handlers/auth"
	"github.com/jmcelreavey/todo-li-app/internal/handlers/bookmark"
	"github.com/jmcelreavey/todo-li-app/internal/handlers/todo"
	"github.com/jmcelreavey/todo-li-app/shared/constant"
	"github.com/jmcelreavey/todo-li-app/transport/http/render"
)

type DomainHandlers struct {
	Auth     auth.Handler
	Todo     todo.Handler
	Bookmark bookmark.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, constant.PathTodosIndex, http.StatusFound)
	})

	r.DomainHandlers.Auth.Router(router)
	r.DomainHandlers.Todo.Router(router)
	r.DomainHandlers.Bookmark.Router(router)

	router.NotFound(func(w http.ResponseWriter, req *http.Request) {
		render.NotFound(w)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
