package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	goredis "github.com/redis/go-redis/v9"

	"nestodo/internal/adapter/http/middleware"
)

const (
	StatusOk     = "ok"
	StatusDown   = "down"
	probeTimeout = 2 * time.Second
)

type BuildInfo struct {
	Name    string
	Version string
}

type healthSummary struct {
	AppName    string    `json:"app_name"`
	AppVersion string    `json:"app_version"`
	CheckedAt  time.Time `json:"checked_at"`
	Message    string    `json:"message"`
}

type healthReport struct {
	healthSummary
	Language string            `json:"language"`
	Services map[string]string `json:"services"`
}

type probe struct {
	name  string
	check func(ctx context.Context) error
}

type HealthHandler struct {
	build  BuildInfo
	probes []probe
	now    func() time.Time
}

func NewHealthHandler(build BuildInfo, db *sqlx.DB, redis goredis.Cmdable) *HealthHandler {
	if build.Version == "" {
		build.Version = "dev"
	}
	return &HealthHandler{
		build: build,
		probes: []probe{
			{name: "mysql", check: func(ctx context.Context) error { return db.PingContext(ctx) }},
			{name: "redis", check: func(ctx context.Context) error { return redis.Ping(ctx).Err() }},
		},
		now: time.Now,
	}
}

// CheckHealth answers 503 as soon as one backing store fails its probe.
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	services := h.run(c.Request.Context())

	summary := h.summary(services)
	status := http.StatusOK
	if summary.Message != StatusOk {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, summary)
}

// CheckHealthReport always answers 200 and lists every probe.
func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	services := h.run(c.Request.Context())

	c.JSON(http.StatusOK, healthReport{
		healthSummary: h.summary(services),
		Language:      middleware.GetLang(c),
		Services:      services,
	})
}

func (h *HealthHandler) run(ctx context.Context) map[string]string {
	services := make(map[string]string, len(h.probes))
	for _, p := range h.probes {
		probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
		services[p.name] = StatusOk
		if err := p.check(probeCtx); err != nil {
			services[p.name] = StatusDown
		}
		cancel()
	}
	return services
}

func (h *HealthHandler) summary(services map[string]string) healthSummary {
	message := StatusOk
	for _, state := range services {
		if state != StatusOk {
			message = StatusDown
			break
		}
	}
	return healthSummary{
		AppName:    h.build.Name,
		AppVersion: h.build.Version,
		CheckedAt:  h.now().UTC(),
		Message:    message,
	}
}
