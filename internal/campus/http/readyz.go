package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/aussiebroadwan/campus/pkg/campussdk"
	"github.com/aussiebroadwan/campus/pkg/httpx"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness check endpoint returning service health status and checks for critical dependencies
//	@Description	The moderation check is informational only since comment screening fails open
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	campussdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	campussdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	moderationState func() string,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &campussdk.HealthChecks{
			Database:   "ok",
			Moderation: "disabled",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			slogx.FromContext(r.Context()).Error("readiness database ping failed", "error", err)
			checks.Database = "error"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if moderationState != nil {
			checks.Moderation = moderationState()
		}

		response := campussdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
