package httpadapter

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	api "esgtracker/internal/api"
	"esgtracker/internal/domain"
)

const invalidCredentials = "Invalid email or password"

// statusFor maps the domain error taxonomy to one status code and a message
// that is safe to show a client.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, validationMessage(err)
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusBadRequest, "Email already registered. Please login instead."
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, invalidCredentials
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "Authentication required"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Not found"
	}
	return http.StatusInternalServerError, "Internal server error"
}

// validationMessage drops the sentinel prefix; the remainder is authored by
// the service layer.
func validationMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), domain.ErrValidation.Error()+": ")
	if msg == "" {
		return "Invalid request"
	}
	return msg
}

func errorBody(err error) api.Error {
	_, msg := statusFor(err)
	return api.Error{Success: false, Message: msg}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Success: false, Message: msg})
}

// requestError handles undecodable bodies and malformed parameters.
func requestError(w http.ResponseWriter, r *http.Request, err error) {
	var param *api.InvalidParamFormatError
	if errors.As(err, &param) {
		writeError(w, http.StatusBadRequest, "Invalid "+param.ParamName)
		return
	}
	writeError(w, http.StatusBadRequest, "Malformed JSON body")
}

// responseError handles errors returned by strict handlers.
func responseError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
	}
	writeError(w, status, msg)
}
