package health

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"portfolio-backend/mailer"
)

type HealthHandler struct {
	DB     *sql.DB
	Mailer *mailer.Mailer
}

type healthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// GetHealth always answers 200; degraded collaborators only change the
// services map.
func (h HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	database := "connected"
	if err := h.DB.PingContext(r.Context()); err != nil {
		database = "disconnected"
	}

	emailService := "not_configured"
	if h.Mailer.IsConfigured() {
		emailService = "configured"
	}

	render.JSON(w, r, healthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Services: map[string]string{
			"database":      database,
			"github_api":    "available",
			"email_service": emailService,
		},
	})
}
