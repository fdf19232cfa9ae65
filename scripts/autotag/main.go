// Manual trigger for the course auto-tagging sweep.
//
// The sweep also runs inside the server as a daily background task. This
// binary exists for first deployments and after bulk course imports.
//
// Usage: go run ./scripts/autotag
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"nura_backend/internal/config"
	"nura_backend/internal/repository"
	"nura_backend/internal/service"
	"nura_backend/pkg/database"
	"nura_backend/pkg/logger"
)

func main() {
	limit := flag.Int("limit", 500, "maximum number of courses to tag in one run")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	aiService := service.NewAIService(cfg.AI)
	tagService := service.NewTagService(
		repository.NewTagRepository(db),
		repository.NewCourseRepository(db),
		aiService,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	log.Printf("Tagging up to %d untagged courses...", *limit)
	tagService.BackfillUntagged(ctx, *limit)
	log.Println("Done")
}
