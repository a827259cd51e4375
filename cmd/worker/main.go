package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/influencer-marketplace/backend/internal/config"
	"github.com/influencer-marketplace/backend/internal/db"
	"github.com/influencer-marketplace/backend/internal/models"
	"github.com/influencer-marketplace/backend/internal/repositories"
	"github.com/influencer-marketplace/backend/internal/socialstats"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	influencerRepo := repositories.NewInfluencerRepo(pool)
	campaignRepo := repositories.NewCampaignRepo(pool)
	auditRepo := repositories.NewAuditRepo(pool)

	parser := socialstats.NewParser(cfg.SocialProfileURLTemplate, cfg.SocialFetchTimeoutMS, cfg.SocialFetchMaxRetries, log)
	statsCache := socialstats.NewCache(rdb, parser, cfg.MetricsCacheTTL, log)

	log.Info("worker started")

	metricsTicker := time.NewTicker(cfg.MetricsRefreshInterval)
	expiryTicker := time.NewTicker(10 * time.Minute)
	defer metricsTicker.Stop()
	defer expiryTicker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-metricsTicker.C:
			runMetricsRefresh(ctx, influencerRepo, statsCache, log)
		case <-expiryTicker.C:
			runCampaignExpiry(ctx, campaignRepo, auditRepo, log)
		case <-sigCh:
			log.Info("shutting down worker")
			cancel()
			return
		case <-ctx.Done():
			return
		}
	}
}

// runMetricsRefresh walks the influencer directory page by page, refreshing
// each handle's cached profile snapshot and the stored follower count.
func runMetricsRefresh(ctx context.Context, influencerRepo *repositories.InfluencerRepo, statsCache *socialstats.Cache, log *zap.Logger) {
	const pageSize = 100

	for offset := 0; ; offset += pageSize {
		influencers, err := influencerRepo.List(ctx, repositories.InfluencerFilter{
			Limit:  pageSize,
			Offset: offset,
		})
		if err != nil {
			log.Error("failed to list influencers", zap.Error(err))
			return
		}
		if len(influencers) == 0 {
			return
		}

		for _, inf := range influencers {
			if ctx.Err() != nil {
				return
			}

			_ = statsCache.Invalidate(ctx, inf.Handle)
			stats, err := statsCache.Get(ctx, inf.Handle)
			if err != nil {
				log.Warn("failed to refresh profile stats",
					zap.String("handle", inf.Handle), zap.Error(err))
				continue
			}
			if stats.Followers != nil && *stats.Followers > 0 {
				if err := influencerRepo.UpdateFollowerCount(ctx, inf.ID, *stats.Followers); err != nil {
					log.Error("failed to store follower count",
						zap.String("handle", inf.Handle), zap.Error(err))
				}
			}

			time.Sleep(1 * time.Second) // rate limiting
		}
	}
}

// runCampaignExpiry closes active campaigns whose end date has passed.
func runCampaignExpiry(ctx context.Context, campaignRepo *repositories.CampaignRepo, auditRepo *repositories.AuditRepo, log *zap.Logger) {
	ids, err := campaignRepo.CloseExpired(ctx)
	if err != nil {
		log.Error("failed to close expired campaigns", zap.Error(err))
		return
	}

	for _, id := range ids {
		campaignID := id
		log.Info("closed expired campaign", zap.String("campaign_id", campaignID.String()))
		_ = auditRepo.Log(ctx, models.AuditLog{
			ActorType:  "system",
			Action:     "campaign_active_to_closed",
			EntityType: "campaign",
			EntityID:   &campaignID,
			Meta:       map[string]any{"reason": "end_date_passed"},
		})
	}
}
