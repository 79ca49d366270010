package utils

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

type ErrorType struct {
	Code        int
	Description string
}

var (
	ErrInvalid    = ErrorType{http.StatusBadRequest, "Invalid request"}
	ErrNotFound   = ErrorType{http.StatusNotFound, "Not found"}
	ErrValidation = ErrorType{http.StatusUnprocessableEntity, "Validation failed"}
	ErrInternal   = ErrorType{http.StatusInternalServerError, "Internal Server Error"}
)

type errorBody struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// HandleError writes a JSON error response. Internal details go to the log,
// never to the client.
func HandleError(errType ErrorType, err error, w http.ResponseWriter, msg *string) {
	errMsg := errType.Description
	if msg != nil {
		errMsg = *msg
	}

	if err != nil {
		logrus.Errorln(err.Error())
	}

	writeJSON(w, errType.Code, errorBody{Success: false, Message: errMsg})
}

// HandleValidationError reports which field constraint failed, keyed by
// payload field name.
func HandleValidationError(w http.ResponseWriter, fieldErrors map[string]string) {
	writeJSON(w, ErrValidation.Code, errorBody{
		Success: false,
		Message: ErrValidation.Description,
		Errors:  fieldErrors,
	})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.Errorln("[RESPONSE] ", err.Error())
	}
}
