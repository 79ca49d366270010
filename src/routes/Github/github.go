package github

import (
	"github.com/go-chi/chi/v5"
)

func GithubRouter(fetcher *Fetcher) chi.Router {
	r := chi.NewRouter()

	gHandler := GithubHandler{Fetcher: fetcher}

	r.Get("/projects", gHandler.GetTopProjects)

	return r
}
