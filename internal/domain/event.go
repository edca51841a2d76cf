package domain

// Event represents a scheduled programme from the catalog. All fields are
// display strings supplied by the upstream feed; the service never derives
// anything from them beyond rendering.
type Event struct {
	ID          string
	Title       string
	DateTime    string
	ProgramTime string
	VenueID     string
	VenueName   string
	Presenter   string
	Description string
	AgeLimit    string
	Price       string
	Remarks     string
	SaleDate    string
	SubmitDate  string
	TicketURL   string
	DetailURL   string
}
