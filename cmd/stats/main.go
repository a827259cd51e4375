package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/influencer-marketplace/backend/internal/config"
	"github.com/influencer-marketplace/backend/internal/socialstats"
	"go.uber.org/zap"
)

// One-off fetch of a public profile, bypassing the cache. Handy for checking
// what the parser extracts for a given handle.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: stats <handle>")
		os.Exit(1)
	}
	handle := os.Args[1]

	log, _ := zap.NewDevelopment()
	defer log.Sync()

	cfg := config.Load()
	parser := socialstats.NewParser(cfg.SocialProfileURLTemplate, cfg.SocialFetchTimeoutMS, cfg.SocialFetchMaxRetries, log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stats, err := parser.FetchProfile(ctx, handle)
	if err != nil {
		log.Fatal("fetch failed", zap.String("handle", handle), zap.Error(err))
	}

	out, _ := json.MarshalIndent(stats, "", "  ")
	fmt.Println(string(out))
}
