package gemini

import (
	"errors"
	"net/http"

	"google.golang.org/genai"
)

// isTransient reports whether a failed API call is worth retrying.
// Rate limiting, server-side errors and transport failures are transient;
// any other status reported by the API is not.
func isTransient(err error) bool {
	code, ok := apiStatus(err)
	if !ok {
		return true
	}
	return code == http.StatusTooManyRequests ||
		code == http.StatusRequestTimeout ||
		code >= http.StatusInternalServerError
}

func apiStatus(err error) (int, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code, true
	}
	return 0, false
}
