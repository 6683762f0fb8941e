package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/edusense-api/internal/api/shared"
	"github.com/phrazzld/edusense-api/internal/platform/logger"
)

// NewRecoverer converts a panic in a downstream handler into the standard 500
// error envelope. When exposeDetail is set the panic value is returned as the
// detail; otherwise a generic message is sent.
func NewRecoverer(exposeDetail bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.FromContextOrDefault(r.Context(), nil).Error("panic recovered",
					"panic", fmt.Sprint(rec),
					"stack", string(debug.Stack()))

				detail := "An unexpected error occurred"
				if exposeDetail {
					detail = fmt.Sprint(rec)
				}
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal Server Error", detail)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
