package contact

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"portfolio-backend/mailer"
)

func ContactRouter(store *Store, m *mailer.Mailer) chi.Router {
	r := chi.NewRouter()

	c := ContactHandler{
		Store:    store,
		Mailer:   m,
		Validate: validator.New(),
	}

	r.Post("/", c.SubmitContactForm)

	return r
}
