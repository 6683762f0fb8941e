package service

import (
	"errors"
	"log/slog"

	"github.com/phrazzld/edusense-api/internal/extract"
	"github.com/phrazzld/edusense-api/internal/redact"
)

// maxLoggedReply bounds how much of an unparseable model reply is logged.
const maxLoggedReply = 2000

// logGenerationFailure logs err at ERROR level. When the model replied with
// text that could not be turned into a result, that text is logged as well.
func logGenerationFailure(log *slog.Logger, msg string, err error) {
	attrs := []any{"error", redact.Error(err)}

	var outErr *extract.OutputError
	if errors.As(err, &outErr) {
		attrs = append(attrs, "response", redact.Truncate(redact.String(outErr.Text), maxLoggedReply))
	}

	log.Error(msg, attrs...)
}
