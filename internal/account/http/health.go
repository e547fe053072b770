package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/roster/internal/account/store"
	"github.com/aussiebroadwan/roster/pkg/httpx"
	"github.com/aussiebroadwan/roster/pkg/rostersdk"
	"github.com/aussiebroadwan/roster/pkg/slogx"
)

const readyTimeout = 2 * time.Second

// LivezHandler godoc
//
//	@Summary		Liveness Probe
//	@Description	Always returns 200 while the process is serving requests.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	rostersdk.HealthResponse	"status"
//	@Router			/livez [get].
func LivezHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, rostersdk.HealthResponse{Status: "ok"})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Probe
//	@Description	Returns 200 when the database answers a ping, 503 otherwise.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	rostersdk.HealthResponse	"status"
//	@Failure		503	{object}	rostersdk.HealthResponse	"status"
//	@Router			/readyz [get].
func ReadyzHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		if err := st.Ping(ctx); err != nil {
			slogx.FromContext(ctx).Warn("readiness check failed", slog.Any("error", err))
			httpx.WriteJSON(w, http.StatusServiceUnavailable, rostersdk.HealthResponse{Status: "unavailable"})
			return
		}
		httpx.WriteJSON(w, http.StatusOK, rostersdk.HealthResponse{Status: "ok"})
	}
}
