package handlers

import (
	"errors"
	"net/http"

	request "moving_pricing/internal/adapter/http/dto/request"
	response "moving_pricing/internal/adapter/http/dto/response"
	"moving_pricing/internal/domain/entities"
	"moving_pricing/internal/domain/pricing"
	"moving_pricing/internal/usecase"
	"moving_pricing/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
	errInvalidStatusPayload   = pkg.NewDomainErrorSimple("INVALID_STATUS_PAYLOAD", "Invalid status payload", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for moving estimates and their
// quote lifecycle.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
	log     *zap.Logger
}

func NewEstimateHandler(uc usecase.IEstimateUseCase, log *zap.Logger) *EstimateHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &EstimateHandler{usecase: uc, log: log}
}

// CreateEstimate godoc
// @Summary      Calculate a moving estimate
// @Description  Prices the move against the active rule catalog and stores the result as a draft quote.
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        X-Actor-ID  header    string                   false  "Actor requesting the calculation"
// @Param        payload     body      request.EstimateRequest  true   "Estimate request"
// @Success      201         {object}  response.EstimateResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      422         {object}  pkg.HTTPError
// @Failure      500         {object}  pkg.HTTPError
// @Failure      503         {object}  pkg.HTTPError
// @Router       /v1/estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	actorID := payload.ResolveActorID(c.GetHeader("X-Actor-ID"))
	if actorID == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing actor id", http.StatusBadRequest).ToHTTPError())
		return
	}

	estimate, err := h.usecase.CalculateEstimate(c.Request.Context(), *payload.Input, actorID)
	if err != nil {
		h.fail(c, "create", err)
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimateRecord(estimate))
}

// ValidateEstimate godoc
// @Summary      Validate estimate input
// @Description  Runs input validation only; never prices or stores anything.
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        input  body      entities.EstimateInput  true  "Move characteristics"
// @Success      200    {object}  response.ValidationResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /v1/estimates/validate [post]
func (h *EstimateHandler) ValidateEstimate(c *gin.Context) {
	var input entities.EstimateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromValidationOutcome(h.usecase.ValidateInput(c.Request.Context(), input)))
}

// GetEstimate godoc
// @Summary  Get a stored estimate
// @Tags     estimates
// @Produce  json
// @Param    id   path      string  true  "Estimate ID"
// @Success  200  {object}  response.EstimateResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /v1/estimates/{id} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateRecord(estimate))
}

// UpdateEstimateStatus godoc
// @Summary  Move a quote along its lifecycle
// @Tags     estimates
// @Accept   json
// @Produce  json
// @Param    id       path      string                 true  "Estimate ID"
// @Param    payload  body      request.StatusRequest  true  "Target status"
// @Success  200      {object}  response.EstimateResponse
// @Failure  400      {object}  pkg.HTTPError
// @Failure  404      {object}  pkg.HTTPError
// @Failure  409      {object}  pkg.HTTPError
// @Router   /v1/estimates/{id}/status [patch]
func (h *EstimateHandler) UpdateEstimateStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.ResolveStatus())
	if err != nil {
		h.fail(c, "update-status", err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateRecord(estimate))
}

// GetActiveCatalog godoc
// @Summary  Active rule catalog
// @Tags     catalog
// @Produce  json
// @Success  200  {object}  response.CatalogResponse
// @Failure  503  {object}  pkg.HTTPError
// @Router   /v1/catalog [get]
func (h *EstimateHandler) GetActiveCatalog(c *gin.Context) {
	summary, err := h.usecase.ActiveCatalog(c.Request.Context())
	if err != nil {
		h.fail(c, "catalog", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogSummary(summary))
}

func (h *EstimateHandler) fail(c *gin.Context, op string, err error) {
	appErr := mapEstimateError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.log.Error("[estimate][handler] request failed", zap.String("op", op), zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapEstimateError(err error) *pkg.AppError {
	var verr *pricing.ValidationError
	var cerr *pricing.ConfigurationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainError("ESTIMATE_VALIDATION_FAILED", "Estimate input is invalid", err, http.StatusUnprocessableEntity).
			WithDetails(response.FromValidationOutcome(verr.Outcome))
	case errors.As(err, &cerr):
		return pkg.NewDomainError("PRICING_CONFIGURATION_ERROR", "The active rule catalog could not price this move", err, http.StatusInternalServerError).
			WithDetails(gin.H{"rule_id": cerr.RuleID, "stage": cerr.Stage})
	case errors.Is(err, usecase.ErrInvalidActorID), errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainError("INVALID_STATUS_TRANSITION", "Quote cannot move to the requested status", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrStatusConflict):
		return pkg.NewDomainErrorSimple("STATUS_CONFLICT", "Quote status changed concurrently", http.StatusConflict)
	case errors.Is(err, usecase.ErrCatalogUnavailable):
		return pkg.NewDomainError("CATALOG_UNAVAILABLE", "No rule catalog is active", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
