package main

import (
	"net/http"
	"os"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"portfolio-backend/config"
	"portfolio-backend/mailer"
	"portfolio-backend/src"
	contact "portfolio-backend/src/routes/Contact"
	github "portfolio-backend/src/routes/Github"
	resume "portfolio-backend/src/routes/Resume"
	user "portfolio-backend/src/routes/User"
)

const defaultUsername = "Dineshh-007"

func init() {
	if err := godotenv.Load(); err != nil {
		logrus.Warnln("[SERVER] No .env file found, using process environment")
	}
}

func main() {
	db, err := config.OpenDatabase()
	if err != nil {
		logrus.Fatalln(err)
	}
	defer db.Close()

	store := contact.NewStore(db)
	if err := store.EnsureSchema(); err != nil {
		logrus.Fatalln("[DATABASE] Could not ensure schema: ", err)
	}

	username := os.Getenv("GITHUB_USERNAME")
	if username == "" {
		username = defaultUsername
	}

	fetcher := github.NewFetcher(
		os.Getenv("GITHUB_API_URL"),
		username,
		os.Getenv("GITHUB_TOKEN"),
		&http.Client{Timeout: 10 * time.Second},
	)

	renderer, err := resume.NewRenderer(user.DefaultProfile)
	if err != nil {
		logrus.Fatalln("[RESUME] Could not parse resume template: ", err)
	}

	// Admin listing stays open unless a secret opts into the JWT gate.
	var adminAuth *jwtauth.JWTAuth
	if secret := os.Getenv("ADMIN_JWT_SECRET"); secret != "" {
		adminAuth = jwtauth.New("HS256", []byte(secret), nil)
	} else {
		logrus.Warnln("[SERVER] ADMIN_JWT_SECRET not set, /api/admin/contacts is unprotected")
	}

	handler := src.Service(src.Dependencies{
		DB:        db,
		Store:     store,
		Mailer:    mailer.NewFromEnv(),
		Fetcher:   fetcher,
		Renderer:  renderer,
		AdminAuth: adminAuth,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	logrus.Infof("[SERVER] Listening on :%s", port)
	logrus.Fatalln(http.ListenAndServe(":"+port, handler))
}
