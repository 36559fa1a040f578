package inbound

type SearchResponse struct {
	SearchID          string              `json:"search_id"`
	Criteria          CriteriaResponse    `json:"criteria"`
	Metadata          MetadataResponse    `json:"metadata"`
	Itineraries       []ItineraryResponse `json:"itineraries"`
	ReturnItineraries []ItineraryResponse `json:"return_itineraries,omitempty"`
}

type CriteriaResponse struct {
	Variant       string              `json:"variant"`
	From          string              `json:"from"`
	To            string              `json:"to"`
	DepartureDate string              `json:"departureDate"`
	ReturnDate    string              `json:"returnDate,omitempty"`
	Sort          string              `json:"sort"`
	ResultsCount  *int                `json:"resultsCount,omitempty"`
	PartialTrips  bool                `json:"partialTrips"`
	FlightTime    *FlightTimeResponse `json:"flightTime,omitempty"`
}

type FlightTimeResponse struct {
	Hour          int    `json:"hour"`
	BeforeOrAfter string `json:"beforeOrAfter"`
}

type MetadataResponse struct {
	Provider     string `json:"provider"`
	TotalResults int    `json:"total_results"`
	Scanned      int    `json:"scanned"`
	Discarded    int    `json:"discarded"`
	SearchTimeMs int64  `json:"search_time_ms"`
}

type ItineraryResponse struct {
	Price           string        `json:"price"`
	PricePennies    int64         `json:"price_pennies"`
	Duration        string        `json:"duration"`
	DurationSeconds int64         `json:"durationSeconds"`
	DepartureTime   string        `json:"departureTime"`
	ArrivalTime     string        `json:"arrivalTime"`
	Legs            []LegResponse `json:"legs"`
	FlightKey       string        `json:"flight_key"`
	FlightKeyLong   string        `json:"flight_key_long"`
}

type LegResponse struct {
	Airline         string `json:"airline"`
	FlightCode      string `json:"flightCode"`
	Duration        string `json:"duration"`
	DurationSeconds int64  `json:"durationSeconds"`
	DepartingFrom   string `json:"departingFrom"`
	DepartureTime   string `json:"departureTime"`
	ArrivingAt      string `json:"arrivingAt"`
	ArrivalTime     string `json:"arrivalTime"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
