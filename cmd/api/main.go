package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/influencer-marketplace/backend/internal/config"
	"github.com/influencer-marketplace/backend/internal/db"
	"github.com/influencer-marketplace/backend/internal/events"
	apphttp "github.com/influencer-marketplace/backend/internal/http"
	"github.com/influencer-marketplace/backend/internal/http/handlers"
	"github.com/influencer-marketplace/backend/internal/repositories"
	"github.com/influencer-marketplace/backend/internal/services"
	"github.com/influencer-marketplace/backend/internal/socialstats"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	// Run migrations
	if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repositories
	userRepo := repositories.NewUserRepo(pool)
	brandRepo := repositories.NewBrandRepo(pool)
	influencerRepo := repositories.NewInfluencerRepo(pool)
	campaignRepo := repositories.NewCampaignRepo(pool)
	applicationRepo := repositories.NewApplicationRepo(pool)
	notificationRepo := repositories.NewNotificationRepo(pool)
	favoriteRepo := repositories.NewFavoriteRepo(pool)
	messageRepo := repositories.NewMessageRepo(pool)
	auditRepo := repositories.NewAuditRepo(pool)

	// Events
	publisher := events.NewRedisPublisher(rdb, log)
	subscriber := events.NewRedisSubscriber(rdb, log)

	// Social metrics
	parser := socialstats.NewParser(cfg.SocialProfileURLTemplate, cfg.SocialFetchTimeoutMS, cfg.SocialFetchMaxRetries, log)
	statsCache := socialstats.NewCache(rdb, parser, cfg.MetricsCacheTTL, log)

	// Services
	notifier := services.NewNotifier(notificationRepo, publisher, log)
	applicationService := services.NewApplicationService(applicationRepo, campaignRepo, brandRepo, influencerRepo, auditRepo, notifier, log)
	campaignService := services.NewCampaignService(campaignRepo, brandRepo, auditRepo, log)
	messageService := services.NewMessageService(messageRepo, userRepo, notifier, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(userRepo, cfg, log)
	profileHandler := handlers.NewProfileHandler(userRepo, brandRepo, influencerRepo, statsCache, log)
	campaignHandler := handlers.NewCampaignHandler(campaignService, log)
	applicationHandler := handlers.NewApplicationHandler(applicationService, log)
	notificationHandler := handlers.NewNotificationHandler(notificationRepo, log)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteRepo, campaignRepo, log)
	messageHandler := handlers.NewMessageHandler(messageService, log)
	wsHub := handlers.NewWSHub(cfg, subscriber, log)

	// Start WS hub
	wsHub.Start(ctx)

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	apphttp.SetupRouter(app, cfg, log, rdb,
		authHandler, profileHandler, campaignHandler, applicationHandler,
		notificationHandler, favoriteHandler, messageHandler, wsHub)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
