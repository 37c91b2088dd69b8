package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"moving_pricing/internal/domain/entities"
	"moving_pricing/internal/usecase/interfaces"
)

type Registry struct {
	reg            *prometheus.Registry
	Estimates      *prometheus.CounterVec
	CalcLatencySec prometheus.Histogram
	CatalogReloads *prometheus.CounterVec
	ActiveRules    *prometheus.GaugeVec
	AuditFailures  prometheus.Counter

	mu               sync.Mutex
	activeRulesLabel string
}

var _ interfaces.IEstimateMetrics = (*Registry)(nil)

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	estimates := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pricing_estimates_total",
		Help: "Estimate calculations by service and outcome.",
	}, []string{"service", "outcome"})
	latency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "pricing_calculation_seconds",
		Help:    "Time spent calculating one estimate.",
		Buckets: prometheus.DefBuckets,
	})
	reloads := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pricing_catalog_reloads_total",
		Help: "Rule catalog reloads by result.",
	}, []string{"result"})
	active := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "pricing_catalog_active",
		Help: "1 for the rules version currently serving calculations.",
	}, []string{"rules_version"})
	auditFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pricing_audit_publish_failures_total",
		Help: "Audit records that could not be published.",
	})

	r.MustRegister(estimates, latency, reloads, active, auditFailures)
	return &Registry{
		reg:            r,
		Estimates:      estimates,
		CalcLatencySec: latency,
		CatalogReloads: reloads,
		ActiveRules:    active,
		AuditFailures:  auditFailures,
	}
}

func (r *Registry) ObserveCalculation(service entities.ServiceType, outcome string, elapsed time.Duration) {
	r.Estimates.WithLabelValues(string(service), outcome).Inc()
	r.CalcLatencySec.Observe(elapsed.Seconds())
}

func (r *Registry) ObserveCatalogPublished(rulesVersion string) {
	r.CatalogReloads.WithLabelValues("ok").Inc()
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.activeRulesLabel != "" && r.activeRulesLabel != rulesVersion {
		r.ActiveRules.DeleteLabelValues(r.activeRulesLabel)
	}
	r.activeRulesLabel = rulesVersion
	r.ActiveRules.WithLabelValues(rulesVersion).Set(1)
}

func (r *Registry) ObserveCatalogReloadFailed() {
	r.CatalogReloads.WithLabelValues("error").Inc()
}

func (r *Registry) ObserveAuditFailure() {
	r.AuditFailures.Inc()
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
