// Package metrics exposes a Prometheus sync.Once singleton registry for
// TokenCore operations: operation counters and revert counters labeled by
// entry point and error code.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// TokenMetrics tracks entry-point invocations, reverts, and the two
// sticky contract-level gauges (paused, total supply).
type TokenMetrics struct {
	operationsTotal *prometheus.CounterVec
	revertsTotal    *prometheus.CounterVec
	pausedGauge     prometheus.Gauge
	totalSupply     prometheus.Gauge
}

var (
	tokenOnce     sync.Once
	tokenRegistry *TokenMetrics
)

// Token returns the process-wide TokenMetrics singleton, registering its
// collectors with the default Prometheus registry on first use.
func Token() *TokenMetrics {
	tokenOnce.Do(func() {
		tokenRegistry = &TokenMetrics{
			operationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "tokencore_operations_total",
				Help: "Count of TokenCore entry-point invocations by operation.",
			}, []string{"operation"}),
			revertsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "tokencore_reverts_total",
				Help: "Count of reverted TokenCore invocations by operation and error code.",
			}, []string{"operation", "code"}),
			pausedGauge: prometheus.NewGauge(prometheus.GaugeOpts{
				Name: "tokencore_paused",
				Help: "1 when the contract is paused, 0 otherwise.",
			}),
			totalSupply: prometheus.NewGauge(prometheus.GaugeOpts{
				Name: "tokencore_total_supply",
				Help: "Current total outstanding supply, as a float64 approximation.",
			}),
		}
		prometheus.MustRegister(
			tokenRegistry.operationsTotal,
			tokenRegistry.revertsTotal,
			tokenRegistry.pausedGauge,
			tokenRegistry.totalSupply,
		)
	})
	return tokenRegistry
}

// ObserveOperation records one invocation of operation.
func (m *TokenMetrics) ObserveOperation(operation string) {
	if m == nil {
		return
	}
	m.operationsTotal.WithLabelValues(operation).Inc()
}

// ObserveRevert records one reverted invocation of operation under code.
func (m *TokenMetrics) ObserveRevert(operation, code string) {
	if m == nil {
		return
	}
	m.revertsTotal.WithLabelValues(operation, code).Inc()
}

// SetPaused reflects the current pause flag.
func (m *TokenMetrics) SetPaused(paused bool) {
	if m == nil {
		return
	}
	if paused {
		m.pausedGauge.Set(1)
		return
	}
	m.pausedGauge.Set(0)
}

// SetTotalSupply reflects the current total supply.
func (m *TokenMetrics) SetTotalSupply(supply float64) {
	if m == nil {
		return
	}
	m.totalSupply.Set(supply)
}
