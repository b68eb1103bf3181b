// Package respond centraliza la escritura de JSON y el mapeo error -> status.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"shelter-api/internal/errs"

	"github.com/rs/zerolog/hlog"
)

type Message struct {
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Text(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, Message{Message: msg})
}

// StatusFor traduce la taxonomía de errs a un status HTTP.
func StatusFor(err error) int {
	var v *errs.ValidationError
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &v):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error escribe {"message": ...}. Los 5xx se loguean con el logger del request.
// notFoundMsg reemplaza el texto de ErrNotFound si no está vacío.
func Error(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	status := StatusFor(err)
	msg := err.Error()

	switch status {
	case http.StatusNotFound:
		if notFoundMsg != "" {
			msg = notFoundMsg
		}
	case http.StatusInternalServerError:
		hlog.FromRequest(r).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}

	Text(w, status, msg)
}
