package main

import (
	"log"

	_ "moving_pricing/docs"
	"moving_pricing/internal/adapter/http/routes"
	"moving_pricing/internal/config"
	"moving_pricing/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Moving Pricing API
// @version         1.0
// @description     Deterministic moving price estimates backed by a versioned rule catalog.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zl, err := logger.New(cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := routes.Run(cfg, zl); err != nil {
		zl.Fatal("[api][main] failed to startup the application", zap.Error(err))
	}
}
