package http

import (
	"encoding/json"
	"net/http"

	"github.com/Arkhalisal/kevin-work/internal/domain"
	"github.com/go-chi/chi/v5"
)

// EventReader resolves an event id in the current catalog snapshot.
type EventReader interface {
	EventByID(id string) (domain.Event, bool)
}

// HandleEvent returns an HTTP handler serving a single event by id.
func HandleEvent(events EventReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		event, ok := events.EventByID(id)
		if !ok {
			writeError(w, http.StatusNotFound, codeEventNotFound, domain.ErrEventNotFound.Error())
			return
		}

		resp := eventResponse{
			ID:          event.ID,
			Title:       event.Title,
			DateTime:    event.DateTime,
			ProgramTime: event.ProgramTime,
			VenueID:     event.VenueID,
			Venue:       event.VenueName,
			Presenter:   event.Presenter,
			Description: event.Description,
			AgeLimit:    event.AgeLimit,
			Price:       event.Price,
			Remarks:     event.Remarks,
			SaleDate:    event.SaleDate,
			SubmitDate:  event.SubmitDate,
			TagentURL:   event.TicketURL,
			URL:         event.DetailURL,
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// eventResponse uses the upstream feed's field names so existing clients
// can consume it unchanged.
type eventResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	DateTime    string `json:"dateTime"`
	ProgramTime string `json:"programTime"`
	VenueID     string `json:"venueId"`
	Venue       string `json:"venue"`
	Presenter   string `json:"presenter"`
	Description string `json:"description"`
	AgeLimit    string `json:"ageLimit"`
	Price       string `json:"price"`
	Remarks     string `json:"remarks"`
	SaleDate    string `json:"saleDate"`
	SubmitDate  string `json:"submitDate"`
	TagentURL   string `json:"tagentUrl"`
	URL         string `json:"url"`
}
