package github

import (
	"net/http"

	"github.com/go-chi/render"
)

func (gHandler GithubHandler) GetTopProjects(w http.ResponseWriter, r *http.Request) {
	result := gHandler.Fetcher.FetchTopProjects(r.Context())

	render.JSON(w, r, result)
}
