package interfaces

import (
	"time"

	"moving_pricing/internal/domain/entities"
)

type IEstimateMetrics interface {
	ObserveCalculation(service entities.ServiceType, outcome string, elapsed time.Duration)
	ObserveCatalogPublished(rulesVersion string)
	ObserveCatalogReloadFailed()
	ObserveAuditFailure()
}

// Calculation outcomes reported to ObserveCalculation.
const (
	OutcomeCompleted   = "completed"
	OutcomeRejected    = "rejected"
	OutcomeConfigError = "configuration_error"
	OutcomeError       = "error"
)
