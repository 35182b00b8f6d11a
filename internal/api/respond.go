package api

import (
	"encoding/json"
	"net/http"
	"time"

	"rentacar/internal/apperr"
	"rentacar/internal/auth"

	"github.com/sirupsen/logrus"
)

type envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errorBody struct {
	Success bool      `json:"success"`
	Error   errorInfo `json:"error"`
}

type errorInfo struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, status int, message string, data interface{}) {
	writeJSON(w, status, envelope{Success: true, Message: message, Data: data})
}

// writeError maps the error kind to its HTTP status. Internal errors are
// logged with their cause and surface as a generic message only.
func writeError(w http.ResponseWriter, log *logrus.Logger, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.KindInternal {
		log.WithError(err).Error("request failed")
	}
	writeJSON(w, apperr.HTTPStatus(kind), errorBody{
		Error: errorInfo{Kind: string(kind), Message: apperr.ClientMessage(err)},
	})
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.New(apperr.KindInvalidArgument, "invalid request body")
	}
	return nil
}

func identity(r *http.Request) (auth.Identity, error) {
	ident, ok := auth.FromContext(r.Context())
	if !ok {
		return auth.Identity{}, apperr.New(apperr.KindUnauthorized, "authentication required")
	}
	return ident, nil
}

func parseDate(value, field string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperr.New(apperr.KindInvalidRange, field+" must be a date in YYYY-MM-DD format")
	}
	return t, nil
}
