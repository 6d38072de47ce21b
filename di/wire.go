//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/jmcelreavey/todo-li-app/config"
	"github.com/jmcelreavey/todo-li-app/infras/otel"
	"github.com/jmcelreavey/todo-li-app/infras/postgres"
	"github.com/jmcelreavey/todo-li-app/infras/redis"
	"github.com/jmcelreavey/todo-li-app/infras/session"
	"github.com/jmcelreavey/todo-li-app/shared/cache"
	"github.com/jmcelreavey/todo-li-app/transport/http"
	"github.com/jmcelreavey/todo-li-app/transport/http/middleware"
	"github.com/jmcelreavey/todo-li-app/transport/http/router"

	todoRepository "github.com/jmcelreavey/todo-li-app/internal/domains/todo/repository"
	todoService "github.com/jmcelreavey/todo-li-app/internal/domains/todo/service"

	authService "github.com/jmcelreavey/todo-li-app/internal/domains/auth/service"
	userRepository "github.com/jmcelreavey/todo-li-app/internal/domains/user/repository"

	authHandler "github.com/jmcelreavey/todo-li-app/internal/handlers/auth"
	bookmarkHandler "github.com/jmcelreavey/todo-li-app/internal/handlers/bookmark"
	todoHandler "github.com/jmcelreavey/todo-li-app/internal/handlers/todo"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	session.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	todoDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	todoHandler.New,
	bookmarkHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
