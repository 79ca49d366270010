package health

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"portfolio-backend/mailer"
)

func HealthRouter(db *sql.DB, m *mailer.Mailer) chi.Router {
	r := chi.NewRouter()

	h := HealthHandler{DB: db, Mailer: m}

	r.Get("/", h.GetHealth)

	return r
}
