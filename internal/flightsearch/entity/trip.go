package entity

type SortMode string

const (
	SortCost     SortMode = "cost"
	SortDuration SortMode = "duration"
	SortPath     SortMode = "path"
)

func (s SortMode) Valid() bool {
	switch s {
	case SortCost, SortDuration, SortPath:
		return true
	}
	return false
}

type WindowMode string

const (
	WindowBefore WindowMode = "BEFORE"
	WindowAfter  WindowMode = "AFTER"
)

// FlightTime restricts the first leg's departure to before or after Hour
// (1-24) on the departure date, in the origin airport's zone. Hour 0 applies
// no restriction.
type FlightTime struct {
	Hour int        `json:"hour" validate:"min=0,max=24"`
	Mode WindowMode `json:"mode" validate:"oneof=BEFORE AFTER"`
}

// TripRequest json names double as the field names reported in validation
// errors.
type TripRequest struct {
	Origin        string   `json:"from" validate:"required"`
	Destination   string   `json:"to" validate:"required"`
	DepartureDate string   `json:"departureDate" validate:"required,datetime=2006-01-02"`
	ReturnDate    string   `json:"returnDate" validate:"omitempty,datetime=2006-01-02"`
	Sort          SortMode `json:"sort" validate:"omitempty,oneof=cost duration path"`
	// ResultsCount nil or negative means unbounded, 0 means 1.
	ResultsCount *int `json:"resultsCount"`
	// PartialTrips allows itineraries whose ticketed destination is not
	// where the traveler gets off (hidden-city fares).
	PartialTrips bool        `json:"partialTrips"`
	FlightTime   *FlightTime `json:"flightTime"`
}
