package catalog

import "github.com/Arkhalisal/kevin-work/internal/domain"

// catalogDocument mirrors the upstream feed's JSON shape. Field names
// follow the feed, not Go conventions.
type catalogDocument struct {
	Events    []eventRecord `json:"events"`
	Venues    []venueRecord `json:"venues"`
	LightMode bool          `json:"lightMode"`
}

type eventRecord struct {
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

type venueRecord struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Count     int      `json:"count"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (d catalogDocument) toSnapshot() Snapshot {
	events := make([]domain.Event, 0, len(d.Events))
	for _, e := range d.Events {
		events = append(events, domain.Event{
			ID:          e.ID,
			Title:       e.Title,
			DateTime:    e.DateTime,
			ProgramTime: e.ProgramTime,
			VenueID:     e.VenueID,
			VenueName:   e.Venue,
			Presenter:   e.Presenter,
			Description: e.Description,
			AgeLimit:    e.AgeLimit,
			Price:       e.Price,
			Remarks:     e.Remarks,
			SaleDate:    e.SaleDate,
			SubmitDate:  e.SubmitDate,
			TicketURL:   e.TagentURL,
			DetailURL:   e.URL,
		})
	}

	venues := make([]domain.Venue, 0, len(d.Venues))
	for _, v := range d.Venues {
		venues = append(venues, domain.Venue{
			ID:        v.ID,
			Name:      v.Name,
			Count:     v.Count,
			Latitude:  v.Latitude,
			Longitude: v.Longitude,
		})
	}

	return Snapshot{Events: events, Venues: venues, LightMode: d.LightMode}
}
