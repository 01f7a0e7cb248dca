package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"carmatch-service/internal/auth"
	"carmatch-service/internal/catalog"
	"carmatch-service/internal/config"
	"carmatch-service/internal/database"
	"carmatch-service/internal/handler"
	"carmatch-service/internal/listings"
	"carmatch-service/internal/middleware"
	"carmatch-service/internal/ranking"
	"carmatch-service/internal/repository"
	"carmatch-service/internal/service"
	"carmatch-service/internal/session"
)

func main() {
	// Structured logging
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL (optional)
	var db *sql.DB
	if cfg.DB.Enabled {
		db, err = database.NewPostgres(cfg.DB)
		if err != nil {
			slog.Warn("PostgreSQL unavailable, running without interaction history", "error", err)
			db = nil
		} else {
			defer db.Close()
		}
	}

	// Connect to Redis (non-fatal if unavailable)
	rdb, err := database.NewRedis(cfg.Redis)
	if err != nil {
		slog.Warn("Redis unavailable, running without cache and rate limiting", "error", err)
		rdb = nil
	}

	// Catalog
	fileSeed, err := catalog.LoadSeedFile(cfg.Catalog.SeedFile)
	if err != nil {
		slog.Error("failed to load catalog seed", "path", cfg.Catalog.SeedFile, "error", err)
		os.Exit(1)
	}
	var carRepo *repository.CarRepository
	if cfg.Catalog.Source == "postgres" {
		if db == nil {
			slog.Error("CATALOG_SOURCE=postgres needs a database connection")
			os.Exit(1)
		}
		carRepo = repository.NewCarRepository(db)
	}
	seed, err := service.LoadCatalogSeed(context.Background(), carRepo, fileSeed)
	if err != nil {
		slog.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}
	cat := catalog.New(seed)
	slog.Info("catalog loaded", "source", cfg.Catalog.Source, "cars", cat.Len())

	// Ranking
	var scorer ranking.Scorer = ranking.StaticScorer{}
	if cfg.Match.Mode == "weighted" {
		scorer = ranking.WeightedScorer{}
	}
	ranker := ranking.NewRanker(scorer)

	// Listings
	var source listings.Source = listings.NewFixtureSource()
	if cfg.Listings.Source == "http" {
		source = listings.NewHTTPSource(cfg.Listings.APIURL, cfg.Listings.APIKey)
	}
	cached := listings.NewCachedSource(source, rdb, cfg.Listings.CacheTTL, cfg.Listings.Source)
	// Entries written by a previous run may come from a different source.
	cached.Invalidate(context.Background())
	source = cached

	// Initialize layers
	var interactions service.InteractionStore
	if db != nil {
		interactions = repository.NewInteractionRepository(db)
	}
	sessions := session.NewManager(cat, ranker, source)
	authSvc := auth.NewService(rdb, cfg.Auth.LoginDelay, cfg.Auth.SessionTTL)

	handlers := handler.Handlers{
		Auth:        handler.NewAuthHandler(authSvc, sessions),
		Cars:        handler.NewCarHandler(service.NewCatalogService(cat)),
		Deals:       handler.NewDealsHandler(service.NewDealsService(cat, listings.NewFixtureDeals())),
		Preferences: handler.NewPreferenceHandler(service.NewPreferenceService(sessions)),
		Swipe:       handler.NewSwipeHandler(service.NewSwipeService(sessions, cat, ranker, interactions)),
		Listings:    handler.NewListingsHandler(service.NewListingsService(source, sessions)),
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "CarMatch Service",
		ServerHeader: "CarMatch-Service",
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(handler.ErrorResponse{Error: err.Error()})
		},
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	opts := handler.RouteOptions{Resolver: authSvc}
	if rdb != nil {
		opts.RateLimit = middleware.NewRateLimiter(rdb, cfg.RateLimit.Max, cfg.RateLimit.WindowSeconds).Handler()
	}
	swaggerYAML, err := os.ReadFile("docs/swagger.yaml")
	if err != nil {
		slog.Warn("swagger.yaml not found", "error", err)
	} else {
		opts.SwaggerYAML = swaggerYAML
	}
	handler.Register(app, handlers, opts)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		slog.Info("shutting down carmatch service...")
		_ = app.Shutdown()
	}()

	addr := ":" + cfg.Port
	slog.Info("starting carmatch service", "addr", addr, "match_mode", cfg.Match.Mode)
	if err := app.Listen(addr); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
