package health

import (
	"context"
	"sync"
	"time"

	"github.com/tair/wastesmart-storefront/pkg/logger"
)

const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// CheckFunc probes one dependency; nil means healthy
type CheckFunc func(ctx context.Context) error

// DependencyHealth represents the health status of a dependency
type DependencyHealth struct {
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	LatencyMS int64     `json:"latency_ms"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// StorefrontHealth represents the overall storefront health
type StorefrontHealth struct {
	Service      string                      `json:"service"`
	Status       string                      `json:"status"`
	Dependencies map[string]DependencyHealth `json:"dependencies"`
	Uptime       float64                     `json:"uptime_seconds"`
}

// HealthChecker checks the storefront's dependencies
type HealthChecker struct {
	service   string
	checks    map[string]CheckFunc
	timeout   time.Duration
	startTime time.Time
}

func NewHealthChecker(service string, checks map[string]CheckFunc) *HealthChecker {
	return &HealthChecker{
		service:   service,
		checks:    checks,
		timeout:   5 * time.Second,
		startTime: time.Now(),
	}
}

// Check runs a single named probe
func (h *HealthChecker) Check(ctx context.Context, name string, check CheckFunc) DependencyHealth {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	start := time.Now()
	err := check(ctx)

	result := DependencyHealth{
		Name:      name,
		Status:    StatusHealthy,
		LatencyMS: time.Since(start).Milliseconds(),
		Timestamp: time.Now(),
	}
	if err != nil {
		result.Status = StatusUnhealthy
		result.Error = err.Error()
	}
	return result
}

// CheckAll probes every dependency concurrently
func (h *HealthChecker) CheckAll(ctx context.Context) StorefrontHealth {
	deps := make(map[string]DependencyHealth, len(h.checks))
	var wg sync.WaitGroup
	var mu sync.Mutex

	for name, check := range h.checks {
		wg.Add(1)
		go func(n string, c CheckFunc) {
			defer wg.Done()
			health := h.Check(ctx, n, c)

			mu.Lock()
			deps[n] = health
			mu.Unlock()

			if health.Status == StatusHealthy {
				logger.Debug(ctx).
					Str("dependency", n).
					Int64("latency_ms", health.LatencyMS).
					Msg("Dependency health check")
			} else {
				logger.Warn(ctx).
					Str("dependency", n).
					Str("error", health.Error).
					Msg("Dependency health check failed")
			}
		}(name, check)
	}
	wg.Wait()

	return StorefrontHealth{
		Service:      h.service,
		Status:       overallStatus(deps),
		Dependencies: deps,
		Uptime:       time.Since(h.startTime).Seconds(),
	}
}

func overallStatus(deps map[string]DependencyHealth) string {
	healthy := 0
	for _, d := range deps {
		if d.Status == StatusHealthy {
			healthy++
		}
	}

	switch {
	case healthy == len(deps):
		return StatusHealthy
	case healthy > 0:
		return StatusDegraded
	default:
		return StatusUnhealthy
	}
}

// QuickCheck reports the storefront process itself
func (h *HealthChecker) QuickCheck() map[string]interface{} {
	return map[string]interface{}{
		"status":    StatusHealthy,
		"service":   h.service,
		"uptime":    time.Since(h.startTime).Seconds(),
		"timestamp": time.Now(),
	}
}
