package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/aussiebroadwan/campus/internal/campus/service"
	"github.com/aussiebroadwan/campus/pkg/campussdk"
	"github.com/aussiebroadwan/campus/pkg/cryptox"
	"github.com/aussiebroadwan/campus/pkg/httpx"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

// CleanupHandler runs the retention sweep on demand, typically from a cron.
type CleanupHandler struct {
	RetentionService *service.RetentionService

	// Secret, when set, must be presented as the bearer token.
	Secret string
}

// ServeHTTP handles POST /cleanup
//
//	@Summary		Run retention sweep
//	@Description	Deletes every query older than the retention window (7 days by default) along with its comments.
//	@Description	When CRON_SECRET is configured the request must carry it as a bearer token.
//	@Tags			Maintenance
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	campussdk.CleanupResponse	"success, deleted_count, message"
//	@Failure		401	{object}	campussdk.ErrorResponse		"missing or wrong cron secret"
//	@Failure		500	{object}	campussdk.ErrorResponse		"error, error_description"
//	@Router			/cleanup [post].
func (h *CleanupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if h.Secret != "" {
		token, _ := httpx.BearerToken(r)
		if !cryptox.EqualSecrets(token, h.Secret) {
			log.Warn("cleanup rejected, bad cron secret")
			httpx.WriteUnauthorized(w)
			return
		}
	}

	n, err := h.RetentionService.Sweep(ctx)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info("cleanup completed", "deleted", n)
	httpx.WriteJSON(w, http.StatusOK, campussdk.CleanupResponse{
		Success:      true,
		DeletedCount: n,
		Message:      fmt.Sprintf("Deleted %d queries older than %s", n, humanWindow(h.RetentionService.EffectiveWindow())),
	})
}

// humanWindow renders whole-day windows as "N days".
func humanWindow(d time.Duration) string {
	const day = 24 * time.Hour
	switch {
	case d == day:
		return "1 day"
	case d%day == 0:
		return fmt.Sprintf("%d days", d/day)
	default:
		return d.String()
	}
}
