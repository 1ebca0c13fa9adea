// Manual candidate analysis backfill.
//
// The analyze endpoint scores candidates on demand; this script runs the
// same analysis over every stored candidate and writes the match score and
// summary back, for first deployment or after a bulk import.
//
// Usage: go run scripts/candidate_backfill.go

package main

import (
	"context"
	"log"
	"os"

	"edubridge_backend/internal/config"
	"edubridge_backend/internal/repository"
	"edubridge_backend/internal/service"
	"edubridge_backend/pkg/database"
	"edubridge_backend/pkg/logger"

	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("Failed to parse config file: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	candidates := repository.NewCandidateRepository(db)
	ai := service.NewAIService(cfg.AI)
	svc := service.NewCandidateService(candidates, ai)

	rows, err := candidates.FindAll()
	if err != nil {
		log.Fatalf("Failed to load candidates: %v", err)
	}

	log.Printf("Analyzing %d candidates...", len(rows))
	ctx := context.Background()
	for _, c := range rows {
		analysis, err := svc.Analyze(ctx, c.ID)
		if err != nil {
			log.Printf("candidate %d (%s): %v", c.ID, c.Name, err)
			continue
		}
		err = db.Model(&c).Updates(map[string]interface{}{
			"match_score": analysis.MatchScore,
			"summary":     analysis.ProfessionalSummary,
		}).Error
		if err != nil {
			log.Printf("candidate %d (%s): update failed: %v", c.ID, c.Name, err)
			continue
		}
		log.Printf("candidate %d (%s): score %d", c.ID, c.Name, analysis.MatchScore)
	}
	log.Println("Done!")
}
