package handlers

import (
	"errors"
	"net/http"

	response "moving_pricing/internal/adapter/http/dto/response"
	"moving_pricing/internal/domain/pricing"
	"moving_pricing/internal/usecase"
	"moving_pricing/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
	log     *zap.Logger
}

func NewCatalogHandler(uc usecase.ICatalogUseCase, log *zap.Logger) *CatalogHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &CatalogHandler{usecase: uc, log: log}
}

// ReloadCatalog godoc
// @Summary      Reload the rule catalog
// @Description  Loads the catalog from its configured source and makes it active. A rejected catalog leaves the current one in place.
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.CatalogResponse
// @Failure      422  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /v1/catalog/reload [post]
func (h *CatalogHandler) ReloadCatalog(c *gin.Context) {
	summary, err := h.usecase.Reload(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		h.log.Warn("[catalog][handler] reload failed", zap.Error(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogSummary(summary))
}

func mapCatalogError(err error) *pkg.AppError {
	var cerr *pricing.ConfigurationError
	if errors.As(err, &cerr) {
		return pkg.NewDomainError("CATALOG_REJECTED", "Catalog failed validation", err, http.StatusUnprocessableEntity).
			WithDetails(gin.H{"reason": err.Error()})
	}
	return pkg.NewDomainError("CATALOG_RELOAD_FAILED", "Catalog could not be loaded", err, http.StatusInternalServerError)
}
