package http

import (
	"net/http"
	"time"

	"github.com/lockboxhq/lockbox/internal/vault/store"
	"github.com/lockboxhq/lockbox/pkg/httpx"
	"github.com/lockboxhq/lockbox/pkg/slogx"
	"github.com/lockboxhq/lockbox/pkg/vaultsdk"
)

// LivezHandler godoc
//
//	@Summary		Liveness probe
//	@Description	Returns ok whenever the process is up. No dependency checks.
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	vaultsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, buildVersion string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.NoCache(w)
		httpx.WriteJSON(w, http.StatusOK, vaultsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Version: buildVersion,
		})
	})
}

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	Returns ok when the database responds to a ping, 503 otherwise.
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	vaultsdk.HealthResponse	"all checks passing"
//	@Failure		503	{object}	vaultsdk.HealthResponse	"database unreachable"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, buildVersion string, st store.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		checks := vaultsdk.HealthChecks{Database: "ok"}
		status := "ok"
		code := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			slogx.FromContext(r.Context()).Error("readiness ping failed", "err", err)
			checks.Database = "unreachable"
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.NoCache(w)
		httpx.WriteJSON(w, code, vaultsdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Version: buildVersion,
			Checks:  &checks,
		})
	})
}
