package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ExoTV1102/Ticketsystem/internal/config"
	pkgInfra "github.com/ExoTV1102/Ticketsystem/pkg/infrastructure"
)

type routeRegistrar interface {
	RegisterRoutes(router chi.Router)
}

// newRouter monta o router com os middlewares na ordem: request id,
// IP real, recuperação de panic e CORS (o preflight responde antes das rotas).
func newRouter(settings config.HTTPSettings, slices ...routeRegistrar) *chi.Mux {
	router := chi.NewRouter()
	router.Use(pkgInfra.RequestID(pkgInfra.GenerateUUID))
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: settings.AllowedOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", pkgInfra.RequestIDHeader},
		ExposedHeaders: []string{pkgInfra.RequestIDHeader},
		MaxAge:         300,
	}))

	for _, slice := range slices {
		slice.RegisterRoutes(router)
	}
	return router
}
