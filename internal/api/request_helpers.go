package api

import (
	"net/http"
	"time"

	"github.com/phrazzld/edusense-api/internal/api/shared"
)

// now is the clock used for response timestamps.
var now = time.Now

// decodeAndValidate reads the JSON body into req and validates it. It writes
// the error envelope and returns false when either step fails.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}, debug bool) bool {
	if err := shared.DecodeJSON(r, req); err != nil {
		HandleAPIError(w, r, decodeError(err), debug)
		return false
	}
	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, SanitizeValidationError(err), debug)
		return false
	}
	return true
}
