package common

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

var startedAt = time.Now()

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// HealthResponse is the body of the liveness and readiness probes
type HealthResponse struct {
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Version string            `json:"version"`
	Uptime  string            `json:"uptime"`
	Checks  map[string]string `json:"checks,omitempty"`
}

func newHealthResponse(serviceName, version string) HealthResponse {
	return HealthResponse{
		Status:  statusHealthy,
		Service: serviceName,
		Version: version,
		Uptime:  time.Since(startedAt).Truncate(time.Second).String(),
	}
}

// HealthCheck returns a liveness handler that never touches dependencies
func HealthCheck(serviceName, version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, newHealthResponse(serviceName, version))
	}
}

// HealthCheckWithDeps returns a readiness handler. Checks run concurrently;
// any failure turns the response into a 503.
func HealthCheckWithDeps(serviceName, version string, checks map[string]func() error) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := newHealthResponse(serviceName, version)
		resp.Checks = make(map[string]string, len(checks))

		var (
			mu sync.Mutex
			wg sync.WaitGroup
		)
		for name, check := range checks {
			wg.Add(1)
			go func(name string, check func() error) {
				defer wg.Done()
				result := statusHealthy
				if err := check(); err != nil {
					result = statusUnhealthy + ": " + err.Error()
				}
				mu.Lock()
				defer mu.Unlock()
				resp.Checks[name] = result
				if result != statusHealthy {
					resp.Status = statusUnhealthy
				}
			}(name, check)
		}
		wg.Wait()

		code := http.StatusOK
		if resp.Status != statusHealthy {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, resp)
	}
}
