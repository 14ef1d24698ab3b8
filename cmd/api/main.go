package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"tasktrack/configs"
	"tasktrack/internal/accounts"
	v1 "tasktrack/internal/api/v1"
	"tasktrack/internal/api/v1/handlers"
	"tasktrack/internal/auth"
	"tasktrack/internal/cache"
	"tasktrack/internal/events"
	"tasktrack/internal/middleware"
	"tasktrack/internal/store"
	"tasktrack/pkg/database"
	"tasktrack/pkg/logger"
)

func main() {
	logger.InitLoggers()
	defer logger.SyncLoggers()
	logger.SystemLogger.Info("Starting application", zap.String("time", time.Now().Format(time.RFC3339)))

	cfg := configs.LoadConfig()
	ctx := context.Background()

	db, err := database.ConnectDB(ctx, cfg)
	if err != nil {
		logger.ErrorLogger.Fatal("Database connection failed", zap.Error(err))
	}
	defer db.Close()
	logger.SystemLogger.Info("Database connected")

	if err := store.CreateTables(ctx, db); err != nil {
		logger.ErrorLogger.Fatal("Schema bootstrap failed", zap.Error(err))
	}

	passwords := auth.NewPasswords(cfg.BcryptCost)
	tokens, err := auth.NewTokens(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.TokenTTL)
	if err != nil {
		logger.ErrorLogger.Fatal("Token configuration invalid", zap.Error(err))
	}

	st := store.New(db)
	accountsSvc := accounts.NewService(st, passwords, tokens)

	if cfg.SeedSampleData {
		if err := store.Seed(ctx, st, passwords); err != nil {
			logger.ErrorLogger.Fatal("Seeding failed", zap.Error(err))
		}
		logger.SystemLogger.Info("Sample data seeded")
	}

	opts := []handlers.Option{
		handlers.WithPolicy(handlers.OwnershipPolicy{Scoped: cfg.TaskOwnerScoped}),
	}

	if cfg.RedisHost != "" {
		redisClient, err := database.ConnectRedis(ctx, cfg)
		if err != nil {
			logger.ErrorLogger.Fatal("Redis connection failed", zap.Error(err))
		}
		defer redisClient.Close()
		opts = append(opts, handlers.WithCache(cache.NewTaskCache(redisClient, time.Hour)))
		logger.SystemLogger.Info("Redis connected, task cache enabled")
	}

	hub := events.NewHub()
	go hub.Run()
	opts = append(opts, handlers.WithEvents(hub))

	h := handlers.New(accountsSvc, st, opts...)

	app := fiber.New()
	app.Use(middleware.ErrorHandler())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
	}))

	v1.RegisterRoutes(app, h, tokens)

	// Task event feed.
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		client := &events.Client{Conn: c}
		hub.Register <- client
		defer func() {
			hub.Unregister <- client
		}()
		for {
			// The feed is write-only; reads only detect disconnects.
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	logger.SystemLogger.Info("Application ready", zap.String("addr", cfg.ListenAddr))
	if err := app.Listen(cfg.ListenAddr); err != nil {
		logger.ErrorLogger.Error("Application failed to start", zap.Error(err))
	}
}
