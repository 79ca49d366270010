package contact

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"portfolio-backend/utils"
)

// SubmitContactForm validates, persists and best-effort mails one contact
// message. The response is a success whenever the message was stored; the
// email outcome only changes the wording and the stored status.
func (c ContactHandler) SubmitContactForm(w http.ResponseWriter, r *http.Request) {
	var payload SubmissionPayload

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.HandleError(utils.ErrInvalid, err, w, nil)
		return
	}

	if err := c.Validate.Struct(payload); err != nil {
		utils.HandleValidationError(w, fieldErrors(err))
		return
	}

	submission := Submission{
		ID:        uuid.NewString(),
		Name:      payload.Name,
		Email:     payload.Email,
		Message:   payload.Message,
		Timestamp: time.Now().UTC(),
		Status:    StatusPending,
	}

	if err := c.Store.Insert(submission); err != nil {
		errMsg := "Failed to process contact form"
		utils.HandleError(utils.ErrInternal, err, w, &errMsg)
		return
	}

	emailSent := false
	if c.Mailer.IsConfigured() {
		status := StatusFailed
		if err := c.Mailer.SendContactEmail(submission.Name, submission.Email, submission.Message, submission.Timestamp); err == nil {
			emailSent = true
			status = StatusSent
		}

		if err := c.Store.UpdateStatus(submission.ID, status); err != nil {
			logrus.Errorf("[CONTACT] Error updating submission %s status: %v", submission.ID, err)
		}
	}

	message := "Message received and stored successfully!"
	if emailSent {
		message = "Message received successfully!"
	}

	render.JSON(w, r, ContactResponse{Success: true, Message: message})
}

// fieldErrors maps each failed constraint to its payload field name.
func fieldErrors(err error) map[string]string {
	out := map[string]string{}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		out["payload"] = "invalid payload"
		return out
	}

	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required":
			out[field] = "is required"
		case "email":
			out[field] = "must be a valid email address"
		case "min":
			out[field] = fmt.Sprintf("must be at least %s characters", fe.Param())
		case "max":
			out[field] = fmt.Sprintf("must be at most %s characters", fe.Param())
		default:
			out[field] = "is invalid"
		}
	}

	return out
}
