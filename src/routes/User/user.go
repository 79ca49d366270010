package user

import (
	"github.com/go-chi/chi/v5"
)

func UserRouter() chi.Router {
	r := chi.NewRouter()

	u := UserHandler{}

	r.Get("/", u.GetProfile)

	return r
}
