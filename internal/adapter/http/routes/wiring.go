package routes

import (
	"context"
	"errors"
	"fmt"

	"moving_pricing/internal/adapter/http/handlers"
	"moving_pricing/internal/adapter/persistence/repository"
	"moving_pricing/internal/config"
	"moving_pricing/internal/domain/pricing"
	"moving_pricing/internal/infrastructure/audit"
	"moving_pricing/internal/infrastructure/catalog"
	"moving_pricing/internal/infrastructure/database"
	"moving_pricing/internal/infrastructure/metrics"
	"moving_pricing/internal/usecase"
	"moving_pricing/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// buildHandlers connects every backing service named in cfg. The returned
// cleanup releases them in reverse order.
func buildHandlers(ctx context.Context, cfg config.Config, log *zap.Logger) (Handlers, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	fail := func(err error) (Handlers, func(), error) {
		cleanup()
		return Handlers{}, func() {}, err
	}

	registry := metrics.NewRegistry()
	store := catalog.NewSnapshotStore()

	source, closeSource, err := newCatalogSource(ctx, cfg)
	if err != nil {
		return fail(err)
	}
	closers = append(closers, closeSource)

	catalogUseCase := usecase.NewCatalogUseCase(source, store, registry, log)
	if _, err := catalogUseCase.Reload(ctx); err != nil {
		return fail(fmt.Errorf("initial catalog: %w", err))
	}

	if cfg.Catalog.RedisAddr != "" {
		rdb := database.NewRedis(cfg.Catalog.RedisAddr)
		closers = append(closers, func() { _ = rdb.Close() })
		watcher := catalog.NewWatcher(rdb, cfg.Catalog.UpdatesChannel, catalogUseCase, log)
		go func() {
			if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("[catalog][watcher] stopped", zap.Error(err))
			}
		}()
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB.Region, cfg.DynamoDB.Endpoint)
	if err != nil {
		return fail(fmt.Errorf("dynamodb: %w", err))
	}
	estimateRepo := repository.NewEstimateDynamoRepository(ddb, cfg.DynamoDB.EstimatesTable)

	var auditPublisher interfaces.IAuditPublisher
	if len(cfg.Audit.Brokers) > 0 {
		kp := audit.NewKafkaPublisher(cfg.Audit.Brokers, cfg.Audit.Topic)
		closers = append(closers, func() { _ = kp.Close() })
		auditPublisher = kp
	} else {
		log.Info("[estimate][audit] no kafka brokers configured, audit records go to the log")
		auditPublisher = audit.NewLogPublisher(log)
	}

	estimator := pricing.NewEstimator(pricing.WithEngine(cfg.Engine.Name, cfg.Engine.Version))
	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, store, estimator, auditPublisher, registry, log)

	return Handlers{
		Estimates: handlers.NewEstimateHandler(estimateUseCase, log),
		Catalog:   handlers.NewCatalogHandler(catalogUseCase, log),
		Metrics:   registry.Handler(),
	}, cleanup, nil
}

func newCatalogSource(ctx context.Context, cfg config.Config) (interfaces.ICatalogSource, func(), error) {
	if cfg.Catalog.DatabaseURL == "" {
		return catalog.NewFileSource(cfg.Catalog.File), func() {}, nil
	}
	pool, err := database.NewPostgresPool(ctx, cfg.Catalog.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("catalog database: %w", err)
	}
	return catalog.NewPostgresSource(pool, cfg.Catalog.Table), pool.Close, nil
}
