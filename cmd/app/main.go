package main

import (
	"github.com/jmcelreavey/todo-li-app/config"
	"github.com/jmcelreavey/todo-li-app/di"
	"github.com/jmcelreavey/todo-li-app/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
