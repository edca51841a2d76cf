package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Arkhalisal/kevin-work/internal/actions"
	"github.com/Arkhalisal/kevin-work/internal/app"
	"github.com/Arkhalisal/kevin-work/internal/catalog"
	"github.com/Arkhalisal/kevin-work/internal/clock"
	"github.com/Arkhalisal/kevin-work/internal/config"
	"github.com/Arkhalisal/kevin-work/internal/discovery"
	"github.com/Arkhalisal/kevin-work/internal/geo"
	"github.com/Arkhalisal/kevin-work/internal/storage/postgres"
	transporthttp "github.com/Arkhalisal/kevin-work/internal/transport/http"
	"github.com/Arkhalisal/kevin-work/internal/web"
	"github.com/Arkhalisal/kevin-work/migrations"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := log.Default()

	cfg, err := config.Load(logger)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(startupCtx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect to db: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(startupCtx); err != nil {
		log.Fatalf("db ping: %v", err)
	}
	if err := migrations.Apply(startupCtx, pool); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	store := catalog.NewStore()
	loader := catalog.NewLoader(store, cfg.CatalogURL, cfg.CatalogFile, logger)
	if err := loader.Load(startupCtx); err != nil {
		logger.Printf("WARN: initial catalog load failed: %v", err)
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go loader.Run(runCtx, cfg.CatalogRefresh)

	sysClock := clock.NewSystem()
	bookingSvc := app.NewBookingService(postgres.NewBookingRepository(pool), store, sysClock)
	favoriteSvc := app.NewFavoriteService(postgres.NewFavoriteRepository(pool), store, sysClock)
	discoverySvc := app.NewDiscoveryService(store, discovery.NewPipeline(geo.Point{Lat: cfg.HomeLat, Lng: cfg.HomeLng}))

	actionsBase := cfg.ActionsBaseURL
	if actionsBase == "" {
		actionsBase = "http://localhost:" + cfg.Port
	}
	dispatcher := actions.NewDispatcher(actionsBase)

	pages, err := web.NewPages(discoverySvc, store, dispatcher, sysClock, logger)
	if err != nil {
		log.Fatalf("build pages: %v", err)
	}

	router := chi.NewRouter()
	router.Get("/health", transporthttp.HealthHandler)
	router.Post("/booking", transporthttp.HandleBooking(bookingSvc))
	router.Post("/favorite", transporthttp.HandleFavorite(favoriteSvc))
	router.Get("/venues", transporthttp.HandleVenues(discoverySvc))
	router.Get("/events/{id}", transporthttp.HandleEvent(store))
	pages.Register(router)
	router.NotFound(transporthttp.NotFoundHandler().ServeHTTP)

	handler := transporthttp.RequestLogger(transporthttp.CORS(cfg.CORSOrigins, router), logger)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	log.Printf("api listening on :%s", cfg.Port)

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("server error: %v", err)
		}
	case <-runCtx.Done():
		log.Printf("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("server shutdown error: %v", err)
	}
	log.Printf("server stopped")
}
