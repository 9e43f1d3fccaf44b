package main

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"godsendjoseph.dev/package-uploader/internal/docs"
	"godsendjoseph.dev/package-uploader/internal/metrics"
)

func (app *application) registerRoutes(router *chi.Mux) {
	router.Get("/", app.rootHandler)
	router.Get("/health", app.healthCheckHandler)
	router.Post("/upload", app.uploadPackageHandler)
	router.Method("GET", "/metrics", metrics.Handler())

	docs.SwaggerInfo.Title = app.config.appName
	docs.SwaggerInfo.Version = version
	router.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))
}
