package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type AccountRouteRegistrar interface {
	RegisterRoutes(r chi.Router)
}

type TransferRouteRegistrar interface {
	RegisterRoutes(r chi.Router)
}

func New(
	accountController AccountRouteRegistrar,
	transferController TransferRouteRegistrar,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	registerSwaggerRoutes(r)

	if accountController != nil {
		accountController.RegisterRoutes(r)
	}
	if transferController != nil {
		transferController.RegisterRoutes(r)
	}

	return r
}
