package provider

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/shandysiswandi/goskiplagged/internal/flightsearch/entity"
)

// Payload is the decoded search response. Depart and Return keep provider
// order; every Offer.Key is guaranteed to be present in Flights.
type Payload struct {
	Depart   []Offer
	Return   []Offer
	Flights  map[string]Flight
	Airlines map[string]string
}

type Offer struct {
	PricePennies  int64
	FlightKeyLong string
	Key           string
}

type Flight struct {
	Legs            []RawLeg
	DurationSeconds int64
}

// RawLeg times are provider strings, usually naive local wall clock.
type RawLeg struct {
	FlightCode    string
	DepartAirport string
	DepartAt      string
	ArriveAirport string
	ArriveAt      string
}

// Airline resolves the carrier name from the first two characters of a
// flight code. Unknown carriers yield "".
func (p *Payload) Airline(flightCode string) string {
	code := flightCode
	if len(code) > 2 {
		code = code[:2]
	}
	return p.Airlines[code]
}

func malformed(reason string, err error) error {
	return &entity.MalformedResponseError{Reason: reason, Err: err}
}

// Decode parses a search.php body. Any deviation from the expected shape is
// reported as *entity.MalformedResponseError.
func Decode(data []byte) (*Payload, error) {
	var resp struct {
		Depart   *[]json.RawMessage         `json:"depart"`
		Return   []json.RawMessage          `json:"return"`
		Flights  map[string]json.RawMessage `json:"flights"`
		Airlines map[string]string          `json:"airlines"`
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&resp); err != nil {
		return nil, malformed("decode body", err)
	}
	if resp.Depart == nil {
		return nil, malformed(`missing "depart"`, nil)
	}
	if resp.Flights == nil {
		return nil, malformed(`missing "flights"`, nil)
	}

	payload := &Payload{
		Flights:  make(map[string]Flight, len(resp.Flights)),
		Airlines: resp.Airlines,
	}
	if payload.Airlines == nil {
		payload.Airlines = map[string]string{}
	}

	for key, raw := range resp.Flights {
		flight, err := decodeFlight(raw)
		if err != nil {
			return nil, malformed(fmt.Sprintf("flight %q", key), err)
		}
		payload.Flights[key] = flight
	}

	var err error
	if payload.Depart, err = decodeOffers(*resp.Depart, payload.Flights); err != nil {
		return nil, malformed("depart", err)
	}
	if payload.Return, err = decodeOffers(resp.Return, payload.Flights); err != nil {
		return nil, malformed("return", err)
	}

	return payload, nil
}

func decodeOffers(raws []json.RawMessage, flights map[string]Flight) ([]Offer, error) {
	offers := make([]Offer, 0, len(raws))
	for i, raw := range raws {
		offer, err := decodeOffer(raw)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		if _, ok := flights[offer.Key]; !ok {
			return nil, fmt.Errorf("item %d: flight %q not in flights table", i, offer.Key)
		}
		offers = append(offers, offer)
	}
	return offers, nil
}

// decodeOffer reads [[pennies, ...], _, flight_key_long, key].
func decodeOffer(raw json.RawMessage) (Offer, error) {
	var tuple []json.RawMessage
	if err := json.Unmarshal(raw, &tuple); err != nil {
		return Offer{}, err
	}
	if len(tuple) < 4 {
		return Offer{}, fmt.Errorf("expected 4 elements, got %d", len(tuple))
	}

	var price []json.RawMessage
	if err := json.Unmarshal(tuple[0], &price); err != nil {
		return Offer{}, fmt.Errorf("price: %w", err)
	}
	if len(price) == 0 {
		return Offer{}, fmt.Errorf("price: empty")
	}
	var amount json.Number
	if err := json.Unmarshal(price[0], &amount); err != nil {
		return Offer{}, fmt.Errorf("price: %w", err)
	}
	pennies, err := parseInt(amount)
	if err != nil {
		return Offer{}, fmt.Errorf("price: %w", err)
	}

	var key string
	if err := json.Unmarshal(tuple[3], &key); err != nil {
		return Offer{}, fmt.Errorf("key: %w", err)
	}

	return Offer{
		PricePennies:  pennies,
		FlightKeyLong: rawString(tuple[2]),
		Key:           key,
	}, nil
}

// decodeFlight reads [legs, totalDurationSeconds].
func decodeFlight(raw json.RawMessage) (Flight, error) {
	var tuple []json.RawMessage
	if err := json.Unmarshal(raw, &tuple); err != nil {
		return Flight{}, err
	}
	if len(tuple) < 2 {
		return Flight{}, fmt.Errorf("expected 2 elements, got %d", len(tuple))
	}

	var legs [][]json.RawMessage
	if err := json.Unmarshal(tuple[0], &legs); err != nil {
		return Flight{}, fmt.Errorf("legs: %w", err)
	}
	if len(legs) == 0 {
		return Flight{}, fmt.Errorf("legs: empty")
	}

	var seconds json.Number
	if err := json.Unmarshal(tuple[1], &seconds); err != nil {
		return Flight{}, fmt.Errorf("duration: %w", err)
	}
	duration, err := parseInt(seconds)
	if err != nil {
		return Flight{}, fmt.Errorf("duration: %w", err)
	}

	flight := Flight{Legs: make([]RawLeg, 0, len(legs)), DurationSeconds: duration}
	for i, leg := range legs {
		if len(leg) < 5 {
			return Flight{}, fmt.Errorf("leg %d: expected 5 elements, got %d", i, len(leg))
		}
		flight.Legs = append(flight.Legs, RawLeg{
			FlightCode:    rawString(leg[0]),
			DepartAirport: rawString(leg[1]),
			DepartAt:      rawString(leg[2]),
			ArriveAirport: rawString(leg[3]),
			ArriveAt:      rawString(leg[4]),
		})
	}
	return flight, nil
}

func parseInt(n json.Number) (int64, error) {
	if v, err := n.Int64(); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil {
		return 0, err
	}
	return int64(math.Round(f)), nil
}

func rawString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(raw))
}
