package contact

import (
	"time"

	"github.com/go-playground/validator/v10"

	"portfolio-backend/mailer"
)

type ContactHandler struct {
	Store    *Store
	Mailer   *mailer.Mailer
	Validate *validator.Validate
}

const (
	StatusPending = "pending"
	StatusSent    = "sent"
	StatusFailed  = "failed"
)

// Submission is one accepted contact message. The status is mutated once,
// after the notification attempt, and the row is never deleted.
type Submission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
}

type SubmissionPayload struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=10,max=2000"`
}

type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
