package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Arkhalisal/kevin-work/internal/app"
	"github.com/Arkhalisal/kevin-work/internal/domain"
)

// EventBooker is the minimal interface needed to book an event.
type EventBooker interface {
	BookEvent(ctx context.Context, in app.BookEventInput) (string, error)
}

// HandleBooking returns an HTTP handler for the booking action. The
// request body matches the browser client: {"id": ..., "username": ...}
// where username may be null or absent.
func HandleBooking(svc EventBooker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var req actionRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}
		if req.ID == "" {
			writeError(w, http.StatusBadRequest, codeIDRequired, domain.ErrIDRequired.Error())
			return
		}

		msg, err := svc.BookEvent(r.Context(), app.BookEventInput{
			EventID:  req.ID,
			Username: req.username(),
		})
		if err != nil {
			switch err {
			case domain.ErrIDRequired:
				writeError(w, http.StatusBadRequest, codeIDRequired, err.Error())
			case domain.ErrEventNotFound:
				writeError(w, http.StatusNotFound, codeEventNotFound, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(messageResponse{Message: msg})
	}
}

// actionRequest is shared by the booking and favorite endpoints.
type actionRequest struct {
	ID       string  `json:"id"`
	Username *string `json:"username"`
}

// username collapses an absent or null username to the empty string.
func (r actionRequest) username() string {
	if r.Username == nil {
		return ""
	}
	return *r.Username
}

type messageResponse struct {
	Message string `json:"message"`
}
