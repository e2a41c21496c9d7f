package handler

import (
	"net/http"
	"sync"

	"rentacar/config"
	"rentacar/di"
	"rentacar/shared/logger"
)

var (
	once    sync.Once
	handler http.Handler
)

// Handler is the serverless entrypoint. The dependency graph is built on the first request
// and reused by the following ones.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		logger.InitLogger()

		cfg := config.Get()

		logger.SetOutput(cfg)
		logger.SetLogLevel(cfg)

		handler = di.InitializeService().Handler()
	})

	handler.ServeHTTP(w, r)
}
