package health

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// HealthCheck handles GET /api/health. The endpoint stays 200 even when the
// database is unreachable; the body reports the degraded state.
func (hrm *HealthRoutesManager) HealthCheck(w http.ResponseWriter, r *http.Request) {
	server := hrm.healthService.GetServerHealthStatus()
	db, err := hrm.healthService.GetDatabaseHealthStatus()

	status := "ok"
	if err != nil {
		status = "degraded"
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"status":   status,
			"server":   server,
			"database": db,
		}),
		gecho.Send(),
	)
}
