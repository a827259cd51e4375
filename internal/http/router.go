package http

import (
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/influencer-marketplace/backend/internal/config"
	"github.com/influencer-marketplace/backend/internal/http/handlers"
	"github.com/influencer-marketplace/backend/internal/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	campaignHandler *handlers.CampaignHandler,
	applicationHandler *handlers.ApplicationHandler,
	notificationHandler *handlers.NotificationHandler,
	favoriteHandler *handlers.FavoriteHandler,
	messageHandler *handlers.MessageHandler,
	wsHub *handlers.WSHub,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Auth (public)
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)

	// Rate-limited public endpoints
	api.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimitPerMinute, time.Minute))

	// Meta (public, no auth required)
	metaHandler := handlers.NewMetaHandler()
	api.Get("/meta/categories", metaHandler.GetCategories)

	// Protected endpoints
	protected := api.Group("", middleware.AuthMiddleware(cfg, log))

	// Account and profiles
	protected.Get("/me", profileHandler.GetMe)
	protected.Post("/me/brand", profileHandler.CreateBrand)
	protected.Put("/me/brand", profileHandler.UpdateBrand)
	protected.Post("/me/influencer", profileHandler.CreateInfluencer)
	protected.Put("/me/influencer", profileHandler.UpdateInfluencer)

	// Influencer directory
	protected.Get("/influencers", profileHandler.ListInfluencers)
	protected.Get("/influencers/:id", profileHandler.GetInfluencer)
	protected.Get("/influencers/:id/metrics", profileHandler.GetInfluencerMetrics)

	// Campaigns
	protected.Post("/campaigns", campaignHandler.Create)
	protected.Get("/campaigns", campaignHandler.Browse)
	protected.Get("/campaigns/my", campaignHandler.ListMine)
	protected.Get("/campaigns/:id", campaignHandler.Get)
	protected.Put("/campaigns/:id", campaignHandler.Update)
	protected.Post("/campaigns/:id/status", campaignHandler.ChangeStatus)
	protected.Delete("/campaigns/:id", campaignHandler.Delete)
	protected.Get("/campaigns/:id/applications", applicationHandler.ListForCampaign)

	// Applications
	protected.Post("/applications", applicationHandler.Submit)
	protected.Get("/applications/my", applicationHandler.ListMine)
	protected.Get("/applications/:id", applicationHandler.Get)
	protected.Post("/applications/:id/decision", applicationHandler.Decide)
	protected.Post("/applications/:id/view", applicationHandler.MarkViewed)

	// Notifications
	protected.Get("/notifications", notificationHandler.List)
	protected.Get("/notifications/unread-count", notificationHandler.UnreadCount)
	protected.Post("/notifications/read-all", notificationHandler.MarkAllRead)
	protected.Post("/notifications/:id/read", notificationHandler.MarkRead)

	// Favorites
	protected.Post("/favorites/campaigns/:id", favoriteHandler.Toggle)
	protected.Get("/favorites/campaigns", favoriteHandler.List)

	// Messages
	protected.Post("/messages", messageHandler.Send)
	protected.Get("/messages/:peer_id", messageHandler.Conversation)

	// WebSocket
	app.Use("/ws", handlers.WSUpgradeMiddleware())
	app.Get("/ws", websocket.New(wsHub.HandleWS))
}
