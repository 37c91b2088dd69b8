package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"moving_pricing/internal/domain/entities"
	"moving_pricing/internal/usecase/interfaces"
)

// ICatalogUseCase publishes new rule catalog snapshots.
type ICatalogUseCase interface {
	Reload(ctx context.Context) (entities.CatalogSummary, error)
}

type CatalogUseCase struct {
	source  interfaces.ICatalogSource
	store   interfaces.ICatalogStore
	metrics interfaces.IEstimateMetrics
	log     *zap.Logger
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(source interfaces.ICatalogSource, store interfaces.ICatalogStore, metrics interfaces.IEstimateMetrics, log *zap.Logger) *CatalogUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &CatalogUseCase{source: source, store: store, metrics: metrics, log: log}
}

// Reload loads the catalog from its source and swaps it in. On failure the
// previous snapshot stays active.
func (u *CatalogUseCase) Reload(ctx context.Context) (entities.CatalogSummary, error) {
	c, err := u.source.Load(ctx)
	if err != nil {
		u.failed(err)
		return entities.CatalogSummary{}, fmt.Errorf("load catalog: %w", err)
	}
	if err := u.store.Publish(c); err != nil {
		u.failed(err)
		return entities.CatalogSummary{}, fmt.Errorf("publish catalog %s: %w", c.RulesVersion, err)
	}

	summary := c.Summary()
	u.log.Info("[catalog][usecase] published",
		zap.String("rules_version", summary.RulesVersion),
		zap.Int("pricing_rules", summary.PricingRules),
		zap.Int("location_handicaps", summary.LocationHandicaps))
	if u.metrics != nil {
		u.metrics.ObserveCatalogPublished(summary.RulesVersion)
	}
	return summary, nil
}

func (u *CatalogUseCase) failed(err error) {
	u.log.Error("[catalog][usecase] reload failed", zap.Error(err))
	if u.metrics != nil {
		u.metrics.ObserveCatalogReloadFailed()
	}
}
