package middleware

import (
	"net/http"
	"runtime/debug"

	"shelter-api/internal/platform/respond"

	"github.com/rs/zerolog/hlog"
)

// Recover convierte un panic en 500 y lo loguea con el stack.
// http.ErrAbortHandler se re-lanza: net/http lo usa para cortar la respuesta.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			hlog.FromRequest(r).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("panic recovered")

			respond.Text(w, http.StatusInternalServerError, "internal server error")
		}()

		next.ServeHTTP(w, r)
	})
}
