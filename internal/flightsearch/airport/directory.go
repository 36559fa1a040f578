package airport

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shandysiswandi/goskiplagged/internal/flightsearch/entity"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

//go:embed airports.json
var embeddedAirports []byte

type Directory interface {
	Lookup(code string) (entity.Airport, error)
}

// StaticDirectory is a read-only IATA code index loaded once at startup.
type StaticDirectory struct {
	airports map[string]entity.Airport
}

// NewStaticDirectory loads the airport list at path, or the bundled list when
// path is empty. A file may be either the bundled row layout or an ICAO-keyed
// object such as the mwgg airports.json, whose ISO country codes are expanded
// to English names. Entries without an IATA code are skipped.
func NewStaticDirectory(path string) (*StaticDirectory, error) {
	data := embeddedAirports
	if path != "" {
		raw, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("airport read file: %w", err)
		}
		data = raw
	}

	var rows []airportRow
	switch trimmed := bytes.TrimSpace(data); {
	case bytes.HasPrefix(trimmed, []byte("{")):
		keyed := map[string]airportRow{}
		if err := json.Unmarshal(trimmed, &keyed); err != nil {
			return nil, fmt.Errorf("airport decode: %w", err)
		}
		rows = make([]airportRow, 0, len(keyed))
		for _, r := range keyed {
			rows = append(rows, r)
		}
	default:
		if err := json.Unmarshal(trimmed, &rows); err != nil {
			return nil, fmt.Errorf("airport decode: %w", err)
		}
	}

	airports := make([]entity.Airport, 0, len(rows))
	for _, r := range rows {
		if strings.TrimSpace(r.IATA) == "" {
			continue
		}
		airports = append(airports, entity.Airport{
			IATA:     r.IATA,
			Name:     r.Name,
			City:     r.City,
			Country:  countryName(r.Country),
			Timezone: r.Timezone,
		})
	}

	return NewDirectory(airports), nil
}

type airportRow struct {
	IATA     string `json:"iata"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Timezone string `json:"tz"`
}

// countryName expands two-letter region codes ("US") and leaves full names
// untouched.
func countryName(country string) string {
	if len(country) != 2 {
		return country
	}
	region, err := language.ParseRegion(country)
	if err != nil {
		return country
	}
	if name := display.English.Regions().Name(region); name != "" {
		return name
	}
	return country
}

func NewDirectory(airports []entity.Airport) *StaticDirectory {
	index := make(map[string]entity.Airport, len(airports))
	for _, a := range airports {
		a.IATA = strings.ToUpper(strings.TrimSpace(a.IATA))
		index[a.IATA] = a
	}
	return &StaticDirectory{airports: index}
}

// Lookup matches the code exactly, ignoring case and surrounding space.
func (d *StaticDirectory) Lookup(code string) (entity.Airport, error) {
	a, ok := d.airports[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return entity.Airport{}, &entity.LookupError{Code: code}
	}
	return a, nil
}

func (d *StaticDirectory) Len() int {
	return len(d.airports)
}
