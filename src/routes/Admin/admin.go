package admin

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	contact "portfolio-backend/src/routes/Contact"
)

// AdminRouter serves the contact-submission listing. With a nil tokenAuth
// the route is open, matching the source contract; wiring a *jwtauth.JWTAuth
// gates it behind a bearer token.
func AdminRouter(store *contact.Store, tokenAuth *jwtauth.JWTAuth) chi.Router {
	r := chi.NewRouter()

	a := AdminHandler{Store: store}

	if tokenAuth != nil {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(tokenAuth))
			r.Use(jwtauth.Authenticator(tokenAuth))

			r.Get("/contacts", a.ListContactSubmissions)
		})
	} else {
		r.Get("/contacts", a.ListContactSubmissions)
	}

	return r
}
