package entity

type Airport struct {
	IATA     string
	Name     string
	City     string
	Country  string
	Timezone string
}

// Describe renders "<name>, <IATA>, <city>, <country>".
func (a Airport) Describe() string {
	return a.Name + ", " + a.IATA + ", " + a.City + ", " + a.Country
}
