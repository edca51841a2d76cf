package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Arkhalisal/kevin-work/internal/app"
	"github.com/Arkhalisal/kevin-work/internal/domain"
)

// VenueFavoriter is the minimal interface needed to favorite a venue.
type VenueFavoriter interface {
	FavoriteVenue(ctx context.Context, in app.FavoriteVenueInput) (string, error)
}

// HandleFavorite returns an HTTP handler for the favorite action.
func HandleFavorite(svc VenueFavoriter) http.HandlerFunc {
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

		msg, err := svc.FavoriteVenue(r.Context(), app.FavoriteVenueInput{
			VenueID:  req.ID,
			Username: req.username(),
		})
		if err != nil {
			switch err {
			case domain.ErrIDRequired:
				writeError(w, http.StatusBadRequest, codeIDRequired, err.Error())
			case domain.ErrVenueNotFound:
				writeError(w, http.StatusNotFound, codeVenueNotFound, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(messageResponse{Message: msg})
	}
}
