package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Arkhalisal/kevin-work/internal/app"
	"github.com/Arkhalisal/kevin-work/internal/domain"
)

// VenueDiscovery is the minimal interface needed for the venue browser
// read side.
type VenueDiscovery interface {
	DiscoverVenues(state domain.FilterState) []app.DiscoveredVenue
	Categories() []string
}

// HandleVenues returns an HTTP handler running the discovery pipeline.
// Query parameters: search, max_distance (km, default 4), category.
func HandleVenues(svc VenueDiscovery) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		state, err := filterStateFromQuery(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidDistance, "invalid max_distance")
			return
		}

		venues := svc.DiscoverVenues(state)
		resp := venuesResponse{
			Venues:     make([]venueResponse, 0, len(venues)),
			Categories: svc.Categories(),
		}
		for _, v := range venues {
			resp.Venues = append(resp.Venues, venueResponse{
				ID:         v.ID,
				Name:       v.Name,
				Count:      v.Count,
				Latitude:   v.Latitude,
				Longitude:  v.Longitude,
				DistanceKm: v.DistanceKm,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func filterStateFromQuery(r *http.Request) (domain.FilterState, error) {
	state := domain.FilterState{
		SearchTerm:    r.URL.Query().Get("search"),
		MaxDistanceKm: domain.DefaultDistanceKm,
		Category:      r.URL.Query().Get("category"),
	}

	if raw := r.URL.Query().Get("max_distance"); raw != "" {
		maxKm, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.FilterState{}, err
		}
		state.MaxDistanceKm = maxKm
	}
	return state.Clamped(), nil
}

type venuesResponse struct {
	Venues     []venueResponse `json:"venues"`
	Categories []string        `json:"categories"`
}

type venueResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Count      int      `json:"count"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	DistanceKm float64  `json:"distance_km"`
}
