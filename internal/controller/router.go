package controller

import (
	"time"

	"github.com/cassiomorais/credits/internal/infrastructure/config"
	"github.com/cassiomorais/credits/internal/infrastructure/observability"
	customMW "github.com/cassiomorais/credits/internal/middleware"
	"github.com/cassiomorais/credits/internal/service"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterDeps struct {
	Pool            *pgxpool.Pool
	CustomerService *service.CustomerService
	CreditService   *service.CreditService
	Metrics         *observability.Metrics
	CORSConfig      config.CORSConfig
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(customMW.Tracing())
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.CORSConfig.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: deps.CORSConfig.AllowCredentials,
		MaxAge:           300,
	}))
	r.Use(customMW.Metrics(deps.Metrics))

	healthH := NewHealthController(deps.Pool)
	customerH := NewCustomerController(deps.CustomerService, deps.Metrics)
	creditH := NewCreditController(deps.CreditService, deps.Metrics)

	r.Get("/health", healthH.Health)
	r.Get("/health/live", healthH.Liveness)
	r.Get("/health/ready", healthH.Readiness)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// Customers
		r.Post("/customers", customerH.Create)
		r.Get("/customers/{id}", customerH.Get)
		r.Patch("/customers", customerH.Update)
		r.Delete("/customers/{id}", customerH.Delete)

		// Credits
		r.Post("/credits", creditH.Create)
		r.Get("/credits", creditH.List)
		r.Get("/credits/{creditCode}", creditH.Get)
	})

	return r
}
