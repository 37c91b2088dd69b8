package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"moving_pricing/internal/domain/entities"
	"moving_pricing/internal/domain/pricing"
	"moving_pricing/internal/usecase/interfaces"
)

var (
	ErrEstimateNotFound        = errors.New("estimate not found")
	ErrInvalidEstimateID       = errors.New("invalid estimate id")
	ErrInvalidActorID          = errors.New("invalid actor id")
	ErrInvalidStatus           = errors.New("invalid quote status")
	ErrInvalidStatusTransition = errors.New("invalid quote status transition")
	ErrStatusConflict          = errors.New("quote status changed concurrently")
	ErrCatalogUnavailable      = errors.New("no active rule catalog")
)

// IEstimateUseCase exposes moving estimate operations.
//
//   - POST /estimates          => CalculateEstimate()
//   - POST /estimates/validate => ValidateInput()
//   - PATCH /estimates/{id}/status (quote lifecycle) => UpdateStatus()
type IEstimateUseCase interface {
	CalculateEstimate(ctx context.Context, input entities.EstimateInput, actorID string) (entities.EstimateRecord, error)
	ValidateInput(ctx context.Context, input entities.EstimateInput) entities.ValidationOutcome
	GetByID(ctx context.Context, id string) (entities.EstimateRecord, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.EstimateRecord, error)
	ActiveCatalog(ctx context.Context) (entities.CatalogSummary, error)
}

type EstimateUseCase struct {
	repo      interfaces.IEstimateRepository
	catalogs  interfaces.ICatalogProvider
	estimator *pricing.Estimator
	audit     interfaces.IAuditPublisher
	metrics   interfaces.IEstimateMetrics
	log       *zap.Logger
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

// NewEstimateUseCase wires the estimate flow. audit and metrics are optional.
func NewEstimateUseCase(
	repo interfaces.IEstimateRepository,
	catalogs interfaces.ICatalogProvider,
	estimator *pricing.Estimator,
	audit interfaces.IAuditPublisher,
	metrics interfaces.IEstimateMetrics,
	log *zap.Logger,
) *EstimateUseCase {
	if estimator == nil {
		estimator = pricing.NewEstimator()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &EstimateUseCase{
		repo:      repo,
		catalogs:  catalogs,
		estimator: estimator,
		audit:     audit,
		metrics:   metrics,
		log:       log,
	}
}

func (u *EstimateUseCase) CalculateEstimate(ctx context.Context, input entities.EstimateInput, actorID string) (entities.EstimateRecord, error) {
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return entities.EstimateRecord{}, ErrInvalidActorID
	}

	start := time.Now()
	service := serviceLabel(input.Service)

	// The snapshot pinned here serves the whole calculation even if a reload
	// swaps the store meanwhile.
	catalog, err := u.catalogs.ActiveCatalog(ctx)
	if err != nil {
		u.observe(service, interfaces.OutcomeError, start)
		return entities.EstimateRecord{}, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	result, err := u.estimator.Calculate(input, catalog, actorID)
	if err != nil {
		var verr *pricing.ValidationError
		var cerr *pricing.ConfigurationError
		switch {
		case errors.As(err, &verr):
			u.log.Info("[estimate][usecase] input rejected",
				zap.String("customer_id", input.CustomerID),
				zap.Strings("errors", verr.Outcome.Errors))
			u.observe(service, interfaces.OutcomeRejected, start)
		case errors.As(err, &cerr):
			u.log.Error("[estimate][usecase] catalog configuration error",
				zap.String("rules_version", catalog.RulesVersion),
				zap.String("rule_id", cerr.RuleID),
				zap.String("stage", string(cerr.Stage)),
				zap.String("reason", cerr.Reason))
			u.observe(service, interfaces.OutcomeConfigError, start)
		default:
			u.observe(service, interfaces.OutcomeError, start)
		}
		return entities.EstimateRecord{}, err
	}

	record := entities.EstimateRecord{
		ID:           result.EstimateID,
		CustomerID:   strings.TrimSpace(input.CustomerID),
		Service:      pricing.Normalize(input).Service,
		Status:       entities.QuoteStatusDraft,
		FinalPrice:   result.Calculations.FinalPrice,
		RulesVersion: result.Metadata.RulesVersion,
		InputHash:    result.Metadata.InputHash,
		ResultHash:   result.Metadata.ResultHash,
		Result:       result,
		CreatedAt:    result.Metadata.CalculatedAt,
		UpdatedAt:    result.Metadata.CalculatedAt,
	}

	created, err := u.repo.Create(ctx, record)
	if err != nil {
		u.log.Error("[estimate][usecase] persist failed", zap.String("estimate_id", record.ID), zap.Error(err))
		u.observe(service, interfaces.OutcomeError, start)
		return entities.EstimateRecord{}, err
	}

	if u.audit != nil {
		if err := u.audit.Publish(ctx, entities.NewAuditEvent(created.CustomerID, result)); err != nil {
			// Audit export failures never fail a stored estimate.
			u.log.Warn("[estimate][usecase] audit publish failed", zap.String("estimate_id", created.ID), zap.Error(err))
			if u.metrics != nil {
				u.metrics.ObserveAuditFailure()
			}
		}
	}

	u.log.Info("[estimate][usecase] calculated",
		zap.String("estimate_id", created.ID),
		zap.String("service", string(created.Service)),
		zap.Float64("final_price", created.FinalPrice),
		zap.String("rules_version", created.RulesVersion),
		zap.String("result_hash", created.ResultHash))
	u.observe(service, interfaces.OutcomeCompleted, start)
	return created, nil
}

func (u *EstimateUseCase) ValidateInput(_ context.Context, input entities.EstimateInput) entities.ValidationOutcome {
	return u.estimator.ValidateInput(input)
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.EstimateRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EstimateRecord{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	if e.ID == "" {
		return entities.EstimateRecord{}, ErrEstimateNotFound
	}
	return e, nil
}

// UpdateStatus moves a quote along its lifecycle. The write is conditional
// on the status read, so a concurrent change yields ErrStatusConflict.
func (u *EstimateUseCase) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.EstimateRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EstimateRecord{}, ErrInvalidEstimateID
	}
	if !status.IsValid() {
		return entities.EstimateRecord{}, ErrInvalidStatus
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	if !current.Status.CanTransitionTo(status) {
		return entities.EstimateRecord{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, current.Status, status)
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, current.Status, status)
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	if updated.ID == "" {
		return entities.EstimateRecord{}, ErrStatusConflict
	}
	u.log.Info("[estimate][usecase] status updated",
		zap.String("estimate_id", id),
		zap.String("from", string(current.Status)),
		zap.String("to", string(updated.Status)))
	return updated, nil
}

func (u *EstimateUseCase) ActiveCatalog(ctx context.Context) (entities.CatalogSummary, error) {
	c, err := u.catalogs.ActiveCatalog(ctx)
	if err != nil {
		return entities.CatalogSummary{}, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}
	return c.Summary(), nil
}

func (u *EstimateUseCase) observe(service entities.ServiceType, outcome string, start time.Time) {
	if u.metrics != nil {
		u.metrics.ObserveCalculation(service, outcome, time.Since(start))
	}
}

// serviceLabel keeps metric label values inside the closed service set.
func serviceLabel(s entities.ServiceType) entities.ServiceType {
	n := entities.ServiceType(strings.ToLower(strings.TrimSpace(string(s))))
	if n.IsValid() {
		return n
	}
	return "unknown"
}
