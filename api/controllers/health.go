package controllers

import (
	"net/http"
	"time"

	"github.com/angelmondragon/quotation-service/api/responses"
	"github.com/angelmondragon/quotation-service/pkg/config"
	"github.com/angelmondragon/quotation-service/pkg/types"
)

// Index reports that the service is up.
func Index(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Service-Version", cfg.App.Version)
		responses.WriteSuccess(w, types.StatusMessage{Message: cfg.App.Name, Status: "running"})
	}
}

func Health(clock func() time.Time) http.HandlerFunc {
	if clock == nil {
		clock = time.Now
	}
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, types.HealthStatus{
			Status:    "healthy",
			Timestamp: clock().Format(time.RFC3339Nano),
		})
	}
}
