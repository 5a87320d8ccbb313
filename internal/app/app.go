package app

import (
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-hena-store/internal/notify"
	"go-hena-store/internal/supabase"
)

func BuildApp(router *gin.Engine, logger *zap.Logger) error {
	// 1. Setup Infrastructure
	db, err := ConnectDBWithRetry(os.Getenv("DB_URL"), 5)
	if err != nil {
		return err
	}

	redisClient, err := ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	// 2. Setup Third Party Services
	notifier, err := notify.NewClientFromEnv()
	if err != nil {
		// Orders cannot be confirmed without the notification
		// service; run with a no-op client for local development.
		logger.Warn("order notification disabled", zap.Error(err))
		notifier = notify.NewNoopClient()
	}

	gateway, err := supabase.NewClientFromEnv()
	if err != nil {
		return err
	}

	// 3. Register Modules & Routes
	registerModules(router, moduleDeps{
		DB:       db,
		Redis:    redisClient,
		Notifier: notifier,
		Gateway:  gateway,
		Logger:   logger,
	})

	return nil
}
