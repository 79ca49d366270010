package resume

import (
	"github.com/go-chi/chi/v5"
)

func ResumeRouter(renderer *Renderer) chi.Router {
	r := chi.NewRouter()

	rh := ResumeHandler{Renderer: renderer}

	r.Get("/download", rh.DownloadResume)

	return r
}
