package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"servicebook/internal/domain/auth"
	"servicebook/internal/domain/employee"
	"servicebook/internal/domain/masters"
	"servicebook/internal/domain/records"
	"servicebook/internal/domain/reports"
	"servicebook/internal/platform/config"
	"servicebook/internal/platform/db"
	"servicebook/internal/platform/storage"
	authhandler "servicebook/internal/transport/http/handlers/auth"
	employeehandler "servicebook/internal/transport/http/handlers/employees"
	mastershandler "servicebook/internal/transport/http/handlers/masters"
	portalhandler "servicebook/internal/transport/http/handlers/portal"
	recordhandler "servicebook/internal/transport/http/handlers/records"
	"servicebook/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config invalid: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	authStore := auth.NewStore(pool)
	authService := auth.NewService(authStore)
	photoStore := storage.NewPhotoStore(cfg.PhotoDir)
	employeeStore := employee.NewStore(pool)
	employeeService := employee.NewService(employeeStore, authService, photoStore)
	importer := employee.NewImporter(employeeService)
	recordStore := records.NewStore(pool)
	registry := records.NewRegistry(recordStore)
	recordService := records.NewService(recordStore, registry)
	selfService := records.NewSelfService(recordStore, registry)
	mastersStore := masters.NewStore(pool)
	reportsService := reports.NewService(employeeStore)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(authService, cfg.JWTSecret, cfg.TokenTTL).RegisterRoutes(r)
		portalhandler.NewHandler(employeeService, recordStore, selfService).RegisterRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireStaff)
			employeehandler.NewHandler(employeeService, importer, recordStore, reportsService, photoStore).RegisterRoutes(r)
			recordhandler.NewHandler(recordService).RegisterRoutes(r)
			mastershandler.NewHandler(mastersStore).RegisterRoutes(r)
		})
	})

	log.Printf("service book server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
