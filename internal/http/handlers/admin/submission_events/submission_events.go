package submissionevents

import (
	"net/http"

	e "schoolops/internal/core/domain/errors"
	"schoolops/internal/core/domain/logging"
	submissionevents "schoolops/internal/implementations/submission_events"

	"github.com/r3labs/sse/v2"
)

// Handler streams newly filed form submissions to the admin dashboard.
type Handler struct {
	log       logging.Logger
	sseServer *sse.Server
}

func New(log logging.Logger, sseServer *sse.Server) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	sseServer.CreateStream(submissionevents.StreamID)
	return &Handler{log: log, sseServer: sseServer}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	q.Set("stream", submissionevents.StreamID)
	r.URL.RawQuery = q.Encode()

	go func() {
		// Received browser disconnection
		<-r.Context().Done()
		h.log.Info(r.Context(), "Unsubscribed from submission events.")
	}()

	h.log.Info(r.Context(), "Subscribed to submission events.")
	h.sseServer.ServeHTTP(rw, r)
}
