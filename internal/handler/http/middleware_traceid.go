package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader carries the request correlation ID in both directions: the
// client may supply one, and the reply always echoes the effective value.
const traceIDHeader = "X-Trace-ID"

// withTraceID assigns each request a trace ID (the client's own if the
// header is present, a fresh UUID otherwise), stamps it on a child logger
// stored in the request context, and echoes it in the response so that a
// browser session and the server log can be correlated.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		log := h.logger.GetChildLogger()
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(log.WithContext(r.Context())))
	})
}
