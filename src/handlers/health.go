package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

// HealthCheck checks one backing service
type HealthCheck func(ctx context.Context) error

// HealthHandler handles health check requests
type HealthHandler struct {
	checks  map[string]HealthCheck
	version string
	storage string
}

// NewHealthHandler creates a new health handler; checks may be empty for the memory driver
func NewHealthHandler(checks map[string]HealthCheck, storage, version string) *HealthHandler {
	return &HealthHandler{
		checks:  checks,
		version: version,
		storage: storage,
	}
}

type checkResult struct {
	name    string
	err     error
	latency time.Duration
}

func (hh *HealthHandler) run(ctx context.Context) []checkResult {
	names := make([]string, 0, len(hh.checks))
	for name := range hh.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make([]checkResult, 0, len(names))
	for _, name := range names {
		start := time.Now()
		err := hh.checks[name](ctx)
		results = append(results, checkResult{name: name, err: err, latency: time.Since(start)})
	}
	return results
}

// HandleHealth returns health status with dependency checks
func (hh *HealthHandler) HandleHealth(c *gin.Context) {
	status := http.StatusOK
	components := gin.H{}
	for _, r := range hh.run(c.Request.Context()) {
		if r.err != nil {
			status = http.StatusServiceUnavailable
			components[r.name] = gin.H{"status": "disconnected"}
			continue
		}
		components[r.name] = gin.H{"status": "connected", "latency": r.latency.String()}
	}

	overall := "ok"
	if status != http.StatusOK {
		overall = "unhealthy"
	}
	c.JSON(status, gin.H{
		"status":     overall,
		"storage":    hh.storage,
		"components": components,
		"uptime":     time.Since(startTime).String(),
	})
}

// HandleInfo returns service information
func (hh *HealthHandler) HandleInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "flabef-storefront",
		"version": hh.version,
		"status":  "running",
		"uptime":  time.Since(startTime).String(),
	})
}

// HandleReady returns readiness status (for load balancers)
func (hh *HealthHandler) HandleReady(c *gin.Context) {
	for _, r := range hh.run(c.Request.Context()) {
		if r.err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ready": false})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"ready": true})
}
