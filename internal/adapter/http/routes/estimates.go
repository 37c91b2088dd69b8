package routes

import (
	"moving_pricing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathCatalog   = "/catalog"
)

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.POST("/validate", estimateHandler.ValidateEstimate)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.PATCH("/:id/status", estimateHandler.UpdateEstimateStatus)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, catalogHandler *handlers.CatalogHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("", estimateHandler.GetActiveCatalog)
		catalog.POST("/reload", catalogHandler.ReloadCatalog)
	}
}
