package entity

type Leg struct {
	Airline         string
	FlightCode      string
	Duration        string
	DurationSeconds int64
	DepartingFrom   string
	DepartureTime   string
	ArrivingAt      string
	ArrivalTime     string
}

type Itinerary struct {
	Price           string
	PricePennies    int64
	Duration        string
	DurationSeconds int64
	DepartureTime   string
	ArrivalTime     string
	Legs            []Leg
	FlightKey       string
	FlightKeyLong   string
}
