package src

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/jwtauth/v5"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"portfolio-backend/mailer"
	"portfolio-backend/metrics"
	admin "portfolio-backend/src/routes/Admin"
	contact "portfolio-backend/src/routes/Contact"
	github "portfolio-backend/src/routes/Github"
	health "portfolio-backend/src/routes/Health"
	resume "portfolio-backend/src/routes/Resume"
	user "portfolio-backend/src/routes/User"
	"portfolio-backend/utils"
)

// Dependencies carries every collaborator the API layer needs. All of them
// are constructed once in main and passed in here; no package-level
// service instances.
type Dependencies struct {
	DB        *sql.DB
	Store     *contact.Store
	Mailer    *mailer.Mailer
	Fetcher   *github.Fetcher
	Renderer  *resume.Renderer
	AdminAuth *jwtauth.JWTAuth
}

func Service(deps Dependencies) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.RealIP)
	router.Use(metrics.Middleware)
	router.Use(render.SetContentType(render.ContentTypeJSON))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	router.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			render.JSON(w, r, map[string]string{"message": "Portfolio API is running!"})
		})

		r.Mount("/health", health.HealthRouter(deps.DB, deps.Mailer))
		r.Mount("/user", user.UserRouter())
		r.Mount("/github", github.GithubRouter(deps.Fetcher))
		r.Mount("/contact", contact.ContactRouter(deps.Store, deps.Mailer))
		r.Mount("/resume", resume.ResumeRouter(deps.Renderer))
		r.Mount("/admin", admin.AdminRouter(deps.Store, deps.AdminAuth))
	})

	router.Handle("/metrics", promhttp.Handler())

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.HandleError(utils.ErrNotFound, nil, w, nil)
	})

	return router
}
