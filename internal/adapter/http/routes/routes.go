package routes

import (
	"context"
	"net/http"
	"strconv"

	_ "moving_pricing/docs" // swag generated
	"moving_pricing/internal/adapter/http/handlers"
	"moving_pricing/internal/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups everything the router serves.
type Handlers struct {
	Estimates *handlers.EstimateHandler
	Catalog   *handlers.CatalogHandler
	Metrics   http.Handler
}

// Run wires the service from cfg and serves until the listener fails.
func Run(cfg config.Config, log *zap.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h, cleanup, err := buildHandlers(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	router := NewRouter(h, log)
	log.Info("[api][routes] listening", zap.Int("port", cfg.HTTP.Port))
	return router.Run(":" + strconv.Itoa(cfg.HTTP.Port))
}

func NewRouter(h Handlers, log *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if h.Metrics != nil {
		router.GET("/metrics", gin.WrapH(h.Metrics))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimateRoutes(v1, h.Estimates)
	addCatalogRoutes(v1, h.Estimates, h.Catalog)
	return router
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("[api][routes] recovered from panic",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
