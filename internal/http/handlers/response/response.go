package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the body shape shared by the auth and admin endpoints.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func RenderSuccess(rw http.ResponseWriter, msg string, status int) {
	Render(rw, Envelope{Success: true, Message: msg}, status)
}

func RenderFailure(rw http.ResponseWriter, msg string, status int) {
	Render(rw, Envelope{Success: false, Message: msg}, status)
}

func RenderInternalError(rw http.ResponseWriter) {
	RenderFailure(rw, "Internal server error", http.StatusInternalServerError)
}

func Render(rw http.ResponseWriter, res interface{}, status int) {
	rw.Header().Set("Content-Type", "application/json")

	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.WriteHeader(status)
	rw.Write(content)
}
