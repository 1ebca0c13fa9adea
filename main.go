// @title eduBridge AI Backend API
// @version 1.0
// @description Backend server for the eduBridge AI learning platform.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"edubridge_backend/internal/app"
	"edubridge_backend/internal/config"
	"edubridge_backend/pkg/configwatcher"
	"edubridge_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migrations and exit")
	migrate := flag.Bool("migrate", false, "force migrations on startup even in release mode")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Database migration finished, exiting")
		return
	}

	// Hot-reload of rate limits and CORS origins; server/db settings need a
	// restart to take effect.
	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		application.Config.CORS = newCfg.CORS
		application.Config.RateLimit = newCfg.RateLimit
	})

	application.Run()
}
