package main

import (
	"os"

	"github.com/joho/godotenv"

	"retailpulse.com/retailpulse/config"
	"retailpulse.com/retailpulse/session"
	"retailpulse.com/retailpulse/storage"
	"retailpulse.com/retailpulse/web"
)

func main() {
	_ = godotenv.Load(".env")

	logger := config.GetLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(err)
	}

	store := storage.NewMemStorage(logger, cfg.Location())

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}
	if err := storage.Seed(store, adminPassword); err != nil {
		logger.Fatal(err)
	}

	sessions := session.NewManager([]byte(cfg.SessionSecret), cfg.SessionTTL)

	r := web.NewRouter(cfg, store, sessions, logger)
	logger.Infof("listening on :%s", cfg.Port)
	if err := r.Run("0.0.0.0:" + cfg.Port); err != nil {
		logger.Fatal(err)
	}
}
