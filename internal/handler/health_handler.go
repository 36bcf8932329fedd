package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	db *sqlx.DB
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz. Beyond pinging Postgres it reports the
// applied schema migration version, so a deploy can verify the rollout ran
// db/migrations before taking traffic.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.db.PingContext(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"checks": gin.H{"postgres": "down"},
		})
		return
	}

	checks := gin.H{"postgres": "up"}
	var migration struct {
		Version int64 `db:"version"`
		Dirty   bool  `db:"dirty"`
	}
	if err := h.db.GetContext(ctx, &migration,
		"SELECT version, dirty FROM schema_migrations"); err == nil {
		checks["migration_version"] = migration.Version
		if migration.Dirty {
			checks["migration_state"] = "dirty"
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "checks": checks})
}
