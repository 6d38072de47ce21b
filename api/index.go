package handler

import (
	"net/http"

	"github.com/jmcelreavey/todo-li-app/config"
	"github.com/jmcelreavey/todo-li-app/di"
	"github.com/jmcelreavey/todo-li-app/shared/logger"
)

// Handler is the serverless entrypoint. Each invocation builds the full
// dependency graph and serves a single request.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	di.InitializeService().Handler().ServeHTTP(w, r)
}
