package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"crmtrack-backend/archive"
	"crmtrack-backend/config"
	"crmtrack-backend/routes"
	"crmtrack-backend/services"
	"crmtrack-backend/store"
)

func main() {
	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	logger := config.NewLogger(cfg.GinMode)
	defer logger.Sync()

	stores := store.New()
	if cfg.SeedSampleData {
		store.SeedSampleData(stores)
		logger.Info("sample data loaded",
			zap.Int("customers", stores.Customers.Count()),
			zap.Int("leads", stores.Leads.Count()),
		)
	}

	archiver, err := archive.Open(cfg, logger)
	if err != nil {
		logger.Fatal("archive setup failed", zap.Error(err))
	}

	notifier := services.NewNotifierService(cfg, logger)

	digest := services.NewDigestService(stores, logger)
	if cfg.DigestEnabled {
		if err := digest.Start(cfg.DigestSchedule); err != nil {
			logger.Fatal("digest scheduler failed", zap.Error(err))
		}
		defer digest.Stop()
	}

	r := routes.SetupRouter(cfg, logger, stores, notifier, archiver)
	printRoutes(r)

	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
