package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shandysiswandi/goskiplagged/internal/flightsearch/airport"
	"github.com/shandysiswandi/goskiplagged/internal/flightsearch/entity"
	"github.com/shandysiswandi/goskiplagged/internal/flightsearch/provider"
	"github.com/shandysiswandi/goskiplagged/internal/pkg/pkguid"
)

type fakeProvider struct {
	payload *provider.Payload
	err     error
	calls   int
	last    provider.SearchRequest
}

func (f *fakeProvider) Name() string { return "Fake" }

func (f *fakeProvider) Search(_ context.Context, req provider.SearchRequest) (*provider.Payload, error) {
	f.calls++
	f.last = req
	return f.payload, f.err
}

func rawLeg(code, from, departAt, to, arriveAt string) provider.RawLeg {
	return provider.RawLeg{FlightCode: code, DepartAirport: from, DepartAt: departAt, ArriveAirport: to, ArriveAt: arriveAt}
}

// jfkLaxPayload holds one JFK-ORD-LAX itinerary (k1) and one hidden-city
// itinerary JFK-LAX-SFO (k2).
func jfkLaxPayload() *provider.Payload {
	return &provider.Payload{
		Depart: []provider.Offer{
			{PricePennies: 23456, FlightKeyLong: "JFK-ORD-LAX", Key: "k1"},
			{PricePennies: 19999, FlightKeyLong: "JFK-LAX-SFO", Key: "k2"},
		},
		Flights: map[string]provider.Flight{
			"k1": {DurationSeconds: 30600, Legs: []provider.RawLeg{
				rawLeg("AA100", "JFK", "2024-06-01T08:00:00", "ORD", "2024-06-01T09:45:00"),
				rawLeg("AA200", "ORD", "2024-06-01T11:00:00", "LAX", "2024-06-01T13:30:00"),
			}},
			"k2": {DurationSeconds: 34200, Legs: []provider.RawLeg{
				rawLeg("DL1", "JFK", "2024-06-01T07:00:00", "LAX", "2024-06-01T10:05:00"),
				rawLeg("DL2", "LAX", "2024-06-01T12:00:00", "SFO", "2024-06-01T13:30:00"),
			}},
		},
		Airlines: map[string]string{"AA": "American Airlines", "DL": "Delta Air Lines"},
	}
}

// directPayload holds n nonstop JFK-LAX itineraries priced 100, 200, ...
func directPayload(n int) *provider.Payload {
	p := &provider.Payload{Flights: map[string]provider.Flight{}, Airlines: map[string]string{"B6": "JetBlue Airways"}}
	for i := 0; i < n; i++ {
		key := fmt.Sprintf("d%d", i)
		p.Depart = append(p.Depart, provider.Offer{PricePennies: int64(100 * (i + 1)), Key: key})
		p.Flights[key] = provider.Flight{DurationSeconds: int64(21600 - 60*i), Legs: []provider.RawLeg{
			rawLeg(fmt.Sprintf("B6%d", i), "JFK", "2024-06-01T08:00:00", "LAX", "2024-06-01T11:00:00"),
		}}
	}
	return p
}

func newTestUsecase(t *testing.T, p provider.Provider, mutate func(*Dependency)) *Usecase {
	t.Helper()
	dir, err := airport.NewStaticDirectory("")
	if err != nil {
		t.Fatalf("NewStaticDirectory() error = %v", err)
	}
	dep := Dependency{Provider: p, Airports: dir, UID: pkguid.Static("search-1")}
	if mutate != nil {
		mutate(&dep)
	}
	uc, err := New(dep)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return uc
}

func trip() entity.TripRequest {
	return entity.TripRequest{Origin: "JFK", Destination: "LAX", DepartureDate: "2024-06-01"}
}

func TestSearch_Scenario(t *testing.T) {
	payload := jfkLaxPayload()
	payload.Depart = payload.Depart[:1]
	fake := &fakeProvider{payload: payload}
	uc := newTestUsecase(t, fake, nil)

	out, err := uc.Search(context.Background(), trip())
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if fake.calls != 1 {
		t.Errorf("provider calls = %d, want 1", fake.calls)
	}
	if fake.last.Query().Encode() != "depart=2024-06-01&from=JFK&sort=cost&to=LAX" {
		t.Errorf("query = %q", fake.last.Query().Encode())
	}
	if len(out.Itineraries) != 1 {
		t.Fatalf("len(Itineraries) = %d, want 1", len(out.Itineraries))
	}

	it := out.Itineraries[0]
	if len(it.Legs) != 2 {
		t.Fatalf("len(Legs) = %d, want 2", len(it.Legs))
	}
	if it.Price != "$234.56" || it.PricePennies != 23456 {
		t.Errorf("price = %q / %d", it.Price, it.PricePennies)
	}
	if it.Duration != "8 Hours 30 Minutes" {
		t.Errorf("Duration = %q", it.Duration)
	}
	if it.DepartureTime != "Saturday, June 1st 2024, 08:00am" {
		t.Errorf("DepartureTime = %q", it.DepartureTime)
	}
	if it.ArrivalTime != "Saturday, June 1st 2024, 01:30pm" {
		t.Errorf("ArrivalTime = %q", it.ArrivalTime)
	}
	if it.FlightKey != "k1" || it.FlightKeyLong != "JFK-ORD-LAX" {
		t.Errorf("keys = %q / %q", it.FlightKey, it.FlightKeyLong)
	}

	first := it.Legs[0]
	want := entity.Leg{
		Airline:         "American Airlines",
		FlightCode:      "AA100",
		Duration:        "2 Hours 45 Minutes",
		DurationSeconds: 9900,
		DepartingFrom:   "John F Kennedy Intl, JFK, New York, United States",
		DepartureTime:   "Saturday, June 1st 2024, 08:00am",
		ArrivingAt:      "Chicago Ohare Intl, ORD, Chicago, United States",
		ArrivalTime:     "Saturday, June 1st 2024, 09:45am",
	}
	if first != want {
		t.Errorf("Legs[0] = %+v\nwant %+v", first, want)
	}
	if it.Legs[1].DurationSeconds != 16200 || it.Legs[1].Duration != "4 Hours 30 Minutes" {
		t.Errorf("Legs[1] duration = %d / %q", it.Legs[1].DurationSeconds, it.Legs[1].Duration)
	}

	if out.SearchID != "search-1" || out.Criteria.Variant != VariantSearch || out.Criteria.ResultsCount != unlimited {
		t.Errorf("criteria = %+v (id %q)", out.Criteria, out.SearchID)
	}
	if out.Metadata.TotalResults != 1 || out.Metadata.Scanned != 1 || out.Metadata.Provider != "Fake" {
		t.Errorf("metadata = %+v", out.Metadata)
	}
}

func TestSearch_MissingFieldsSkipNetwork(t *testing.T) {
	fake := &fakeProvider{payload: jfkLaxPayload()}
	uc := newTestUsecase(t, fake, nil)

	for _, in := range []entity.TripRequest{
		{Destination: "LAX", DepartureDate: "2024-06-01"},
		{Origin: "JFK", DepartureDate: "2024-06-01"},
		{Origin: "JFK", Destination: "LAX"},
	} {
		for _, search := range []func(context.Context, entity.TripRequest) (*SearchOutput, error){uc.Search, uc.FilteredSearch} {
			_, err := search(context.Background(), in)
			var missing *entity.MissingFieldError
			if !errors.As(err, &missing) {
				t.Errorf("error = %v, want *entity.MissingFieldError", err)
			}
		}
	}
	if fake.calls != 0 {
		t.Errorf("provider calls = %d, want 0", fake.calls)
	}
}

func TestSearch_PartialTrips(t *testing.T) {
	uc := newTestUsecase(t, &fakeProvider{payload: jfkLaxPayload()}, nil)

	out, err := uc.Search(context.Background(), trip())
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(out.Itineraries) != 1 || out.Itineraries[0].FlightKey != "k1" {
		t.Fatalf("Itineraries = %+v, want only k1", out.Itineraries)
	}
	if out.Metadata.Discarded != 1 {
		t.Errorf("Discarded = %d, want 1", out.Metadata.Discarded)
	}

	in := trip()
	in.PartialTrips = true
	out, err = uc.Search(context.Background(), in)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(out.Itineraries) != 2 {
		t.Fatalf("len(Itineraries) = %d, want 2", len(out.Itineraries))
	}
	if out.Itineraries[0].FlightKey != "k1" || out.Itineraries[1].FlightKey != "k2" {
		t.Error("provider order not preserved")
	}
}

func TestSearch_SameCityOtherAirport(t *testing.T) {
	payload := &provider.Payload{
		Depart: []provider.Offer{{PricePennies: 5000, Key: "a"}},
		Flights: map[string]provider.Flight{"a": {DurationSeconds: 4500, Legs: []provider.RawLeg{
			rawLeg("B6100", "BOS", "2024-06-01T06:00:00", "LGA", "2024-06-01T07:15:00"),
		}}},
	}
	uc := newTestUsecase(t, &fakeProvider{payload: payload}, nil)

	in := entity.TripRequest{Origin: "BOS", Destination: "JFK", DepartureDate: "2024-06-01"}
	out, err := uc.Search(context.Background(), in)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(out.Itineraries) != 1 {
		t.Fatalf("len(Itineraries) = %d, want 1", len(out.Itineraries))
	}
	it := out.Itineraries[0]
	if it.ArrivalTime != "Saturday, June 1st 2024, 07:15am" || it.DepartureTime == "" {
		t.Errorf("single leg times = %q / %q", it.DepartureTime, it.ArrivalTime)
	}

	out, err = uc.FilteredSearch(context.Background(), in)
	if err != nil {
		t.Fatalf("FilteredSearch() error = %v", err)
	}
	if len(out.Itineraries) != 1 {
		t.Errorf("FilteredSearch len(Itineraries) = %d, want 1", len(out.Itineraries))
	}
}

func TestFilteredSearch_PartialTrips(t *testing.T) {
	fake := &fakeProvider{payload: jfkLaxPayload()}
	uc := newTestUsecase(t, fake, nil)

	out, err := uc.FilteredSearch(context.Background(), trip())
	if err != nil {
		t.Fatalf("FilteredSearch() error = %v", err)
	}
	if len(out.Itineraries) != 1 || out.Itineraries[0].FlightKey != "k1" {
		t.Fatalf("Itineraries = %+v, want only k1", out.Itineraries)
	}
	if out.Criteria.Variant != VariantFiltered {
		t.Errorf("Variant = %q", out.Criteria.Variant)
	}

	in := trip()
	in.PartialTrips = true
	out, err = uc.FilteredSearch(context.Background(), in)
	if err != nil {
		t.Fatalf("FilteredSearch() error = %v", err)
	}
	if len(out.Itineraries) != 2 {
		t.Errorf("len(Itineraries) = %d, want 2", len(out.Itineraries))
	}
}

func TestFilteredSearch_FlightTime(t *testing.T) {
	tests := []struct {
		name string
		ft   entity.FlightTime
		want []string
	}{
		{"before 8", entity.FlightTime{Hour: 8, Mode: entity.WindowBefore}, []string{"k1", "k2"}},
		{"before 7", entity.FlightTime{Hour: 7, Mode: entity.WindowBefore}, []string{"k2"}},
		{"after 8", entity.FlightTime{Hour: 8, Mode: entity.WindowAfter}, []string{"k1"}},
		{"after 9", entity.FlightTime{Hour: 9, Mode: entity.WindowAfter}, []string{}},
		{"before 24", entity.FlightTime{Hour: 24, Mode: entity.WindowBefore}, []string{"k1", "k2"}},
		{"before 0 is unrestricted", entity.FlightTime{Hour: 0, Mode: entity.WindowBefore}, []string{"k1", "k2"}},
		{"after 0 is unrestricted", entity.FlightTime{Hour: 0, Mode: entity.WindowAfter}, []string{"k1", "k2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUsecase(t, &fakeProvider{payload: jfkLaxPayload()}, nil)
			in := trip()
			in.PartialTrips = true
			ft := tt.ft
			in.FlightTime = &ft

			out, err := uc.FilteredSearch(context.Background(), in)
			if err != nil {
				t.Fatalf("FilteredSearch() error = %v", err)
			}
			got := make([]string, 0, len(out.Itineraries))
			for _, it := range out.Itineraries {
				got = append(got, it.FlightKey)
			}
			if fmt.Sprint(got) != fmt.Sprint(tt.want) {
				t.Errorf("keys = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSearch_FlightTimeIgnored(t *testing.T) {
	uc := newTestUsecase(t, &fakeProvider{payload: jfkLaxPayload()}, nil)
	in := trip()
	in.FlightTime = &entity.FlightTime{Hour: 1, Mode: entity.WindowBefore}

	out, err := uc.Search(context.Background(), in)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(out.Itineraries) != 1 {
		t.Errorf("len(Itineraries) = %d, want 1", len(out.Itineraries))
	}
	if out.Criteria.FlightTime != nil {
		t.Error("search variant reported a flight time filter")
	}
}

func TestSearch_ResultsCount(t *testing.T) {
	tests := []struct {
		name        string
		count       *int
		wantLen     int
		wantScanned int
	}{
		{"unbounded", nil, 5, 5},
		{"negative", intPtr(-1), 5, 5},
		{"zero means one", intPtr(0), 1, 1},
		{"fewer than available", intPtr(3), 3, 3},
		{"more than available", intPtr(10), 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUsecase(t, &fakeProvider{payload: directPayload(5)}, nil)
			in := trip()
			in.ResultsCount = tt.count

			out, err := uc.Search(context.Background(), in)
			if err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			if len(out.Itineraries) != tt.wantLen {
				t.Errorf("len(Itineraries) = %d, want %d", len(out.Itineraries), tt.wantLen)
			}
			if out.Metadata.Scanned != tt.wantScanned {
				t.Errorf("Scanned = %d, want %d", out.Metadata.Scanned, tt.wantScanned)
			}
			for i, it := range out.Itineraries {
				if it.FlightKey != fmt.Sprintf("d%d", i) {
					t.Errorf("Itineraries[%d] = %s, provider order not kept", i, it.FlightKey)
				}
			}
		})
	}
}

func TestSearch_ResultsCountKeepsScanningPastDiscards(t *testing.T) {
	payload := jfkLaxPayload()
	payload.Depart = []provider.Offer{payload.Depart[1], payload.Depart[0]}
	uc := newTestUsecase(t, &fakeProvider{payload: payload}, nil)

	in := trip()
	in.ResultsCount = intPtr(1)
	out, err := uc.Search(context.Background(), in)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(out.Itineraries) != 1 || out.Itineraries[0].FlightKey != "k1" {
		t.Errorf("Itineraries = %+v, want k1", out.Itineraries)
	}
	if out.Metadata.Scanned != 2 || out.Metadata.Discarded != 1 {
		t.Errorf("metadata = %+v", out.Metadata)
	}
}

func TestSearch_RoundTripFormatting(t *testing.T) {
	payload := jfkLaxPayload()
	for k, v := range directPayload(4).Flights {
		payload.Flights[k] = v
	}
	payload.Depart = append(payload.Depart, directPayload(4).Depart...)
	uc := newTestUsecase(t, &fakeProvider{payload: payload}, nil)

	in := trip()
	in.PartialTrips = true
	out, err := uc.Search(context.Background(), in)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(out.Itineraries) != 6 {
		t.Fatalf("len(Itineraries) = %d, want 6", len(out.Itineraries))
	}
	for _, it := range out.Itineraries {
		if FormatPrice(it.PricePennies) != it.Price {
			t.Errorf("%s: price %q does not round-trip", it.FlightKey, it.Price)
		}
		if FormatDuration(it.DurationSeconds) != it.Duration {
			t.Errorf("%s: duration %q does not round-trip", it.FlightKey, it.Duration)
		}
		for _, leg := range it.Legs {
			if FormatDuration(leg.DurationSeconds) != leg.Duration {
				t.Errorf("%s/%s: leg duration %q does not round-trip", it.FlightKey, leg.FlightCode, leg.Duration)
			}
		}
	}
}

func TestSearch_LookupErrors(t *testing.T) {
	t.Run("unknown destination fails before fetch", func(t *testing.T) {
		fake := &fakeProvider{payload: jfkLaxPayload()}
		uc := newTestUsecase(t, fake, nil)
		in := trip()
		in.Destination = "QQQ"

		_, err := uc.Search(context.Background(), in)
		var lookupErr *entity.LookupError
		if !errors.As(err, &lookupErr) || lookupErr.Code != "QQQ" {
			t.Fatalf("Search() error = %v, want LookupError QQQ", err)
		}
		if fake.calls != 0 {
			t.Errorf("provider calls = %d, want 0", fake.calls)
		}
	})

	payload := jfkLaxPayload()
	payload.Depart = append(payload.Depart, provider.Offer{PricePennies: 999, Key: "odd"})
	payload.Flights["odd"] = provider.Flight{DurationSeconds: 1000, Legs: []provider.RawLeg{
		rawLeg("ZZ1", "JFK", "2024-06-01T08:00:00", "QQQ", "2024-06-01T09:00:00"),
	}}

	t.Run("unknown leg airport aborts the batch", func(t *testing.T) {
		uc := newTestUsecase(t, &fakeProvider{payload: payload}, nil)
		out, err := uc.Search(context.Background(), trip())
		var lookupErr *entity.LookupError
		if !errors.As(err, &lookupErr) {
			t.Fatalf("Search() error = %v, want LookupError", err)
		}
		if out != nil {
			t.Error("partial output returned with error")
		}
	})

	t.Run("unknown leg airport skipped", func(t *testing.T) {
		uc := newTestUsecase(t, &fakeProvider{payload: payload}, func(d *Dependency) { d.SkipUnknownAirports = true })
		out, err := uc.Search(context.Background(), trip())
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(out.Itineraries) != 1 || out.Metadata.Discarded != 2 {
			t.Errorf("itineraries = %d, discarded = %d", len(out.Itineraries), out.Metadata.Discarded)
		}
	})
}

func TestSearch_ProviderErrors(t *testing.T) {
	malformed := &entity.MalformedResponseError{Reason: `missing "depart"`}
	uc := newTestUsecase(t, &fakeProvider{err: malformed}, nil)

	out, err := uc.Search(context.Background(), trip())
	var malformedErr *entity.MalformedResponseError
	if !errors.As(err, &malformedErr) {
		t.Fatalf("Search() error = %v, want MalformedResponseError", err)
	}
	if out != nil {
		t.Error("output returned with error")
	}

	payload := jfkLaxPayload()
	payload.Flights["k1"].Legs[0].DepartAt = "yesterday"
	uc = newTestUsecase(t, &fakeProvider{payload: payload}, nil)
	if _, err := uc.Search(context.Background(), trip()); !errors.As(err, &malformedErr) {
		t.Errorf("bad timestamp error = %v, want MalformedResponseError", err)
	}
}

func TestSearch_FlightWithoutLegsIsMalformed(t *testing.T) {
	tests := map[string]func(p *provider.Payload){
		"empty legs": func(p *provider.Payload) {
			p.Depart = append(p.Depart, provider.Offer{PricePennies: 1, Key: "empty"})
			p.Flights["empty"] = provider.Flight{DurationSeconds: 60}
		},
		"unknown key": func(p *provider.Payload) {
			p.Depart = append(p.Depart, provider.Offer{PricePennies: 1, Key: "ghost"})
		},
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			payload := jfkLaxPayload()
			mutate(payload)
			uc := newTestUsecase(t, &fakeProvider{payload: payload}, nil)

			in := trip()
			in.PartialTrips = true
			out, err := uc.Search(context.Background(), in)
			var malformedErr *entity.MalformedResponseError
			if !errors.As(err, &malformedErr) {
				t.Fatalf("Search() = %+v, %v, want MalformedResponseError", out, err)
			}
			if out != nil {
				t.Error("output returned with error")
			}
		})
	}
}

func TestSearch_DurationModes(t *testing.T) {
	tests := []struct {
		mode    DurationMode
		seconds int64
		text    string
	}{
		{DurationZoned, 21600, "6 Hours"},
		{DurationFixedZone, 10800, "3 Hours"},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			uc := newTestUsecase(t, &fakeProvider{payload: directPayload(1)}, func(d *Dependency) { d.DurationMode = tt.mode })
			out, err := uc.Search(context.Background(), trip())
			if err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			leg := out.Itineraries[0].Legs[0]
			if leg.DurationSeconds != tt.seconds || leg.Duration != tt.text {
				t.Errorf("leg duration = %d / %q, want %d / %q", leg.DurationSeconds, leg.Duration, tt.seconds, tt.text)
			}
			if leg.ArrivalTime != "Saturday, June 1st 2024, 11:00am" {
				t.Errorf("ArrivalTime = %q", leg.ArrivalTime)
			}
		})
	}

	t.Run("offset stamps", func(t *testing.T) {
		payload := directPayload(1)
		payload.Flights["d0"].Legs[0] = rawLeg("B60", "JFK", "2024-06-01T08:00:00-04:00", "LAX", "2024-06-01T11:00:00-07:00")
		uc := newTestUsecase(t, &fakeProvider{payload: payload}, func(d *Dependency) { d.DurationMode = DurationFixedZone })
		out, err := uc.Search(context.Background(), trip())
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if got := out.Itineraries[0].Legs[0].DurationSeconds; got != 21600 {
			t.Errorf("DurationSeconds = %d, want 21600", got)
		}
	})
}

func TestNew_Errors(t *testing.T) {
	dir := airport.NewDirectory(nil)
	if _, err := New(Dependency{Provider: &fakeProvider{}, Airports: dir, DurationMode: "guess"}); err == nil {
		t.Error("expected error for unknown duration mode")
	}
	if _, err := New(Dependency{Provider: &fakeProvider{}, Airports: dir, FixedZone: "Nowhere/Land"}); err == nil {
		t.Error("expected error for unknown fixed zone")
	}
}

func TestSearch_LocalSort(t *testing.T) {
	tests := []struct {
		sort entity.SortMode
		want string
	}{
		{entity.SortCost, "[k2 k1]"},
		{entity.SortDuration, "[k1 k2]"},
		{entity.SortPath, "[k2 k1]"},
	}
	for _, tt := range tests {
		t.Run(string(tt.sort), func(t *testing.T) {
			uc := newTestUsecase(t, &fakeProvider{payload: jfkLaxPayload()}, func(d *Dependency) { d.LocalSort = true })
			in := trip()
			in.PartialTrips = true
			in.Sort = tt.sort

			out, err := uc.Search(context.Background(), in)
			if err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			got := []string{}
			for _, it := range out.Itineraries {
				got = append(got, it.FlightKey)
			}
			if fmt.Sprint(got) != tt.want {
				t.Errorf("order = %v, want %s", got, tt.want)
			}
		})
	}

	t.Run("truncates after sorting", func(t *testing.T) {
		uc := newTestUsecase(t, &fakeProvider{payload: directPayload(5)}, func(d *Dependency) { d.LocalSort = true })
		in := trip()
		in.Sort = entity.SortDuration
		in.ResultsCount = intPtr(2)

		out, err := uc.Search(context.Background(), in)
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(out.Itineraries) != 2 || out.Itineraries[0].FlightKey != "d4" || out.Itineraries[1].FlightKey != "d3" {
			t.Errorf("Itineraries = %+v", out.Itineraries)
		}
		if out.Metadata.Scanned != 5 {
			t.Errorf("Scanned = %d, want 5", out.Metadata.Scanned)
		}
	})
}

func TestSearch_ReturnItineraries(t *testing.T) {
	payload := jfkLaxPayload()
	payload.Return = []provider.Offer{{PricePennies: 15000, Key: "r1"}, {PricePennies: 9000, Key: "r2"}}
	payload.Flights["r1"] = provider.Flight{DurationSeconds: 19800, Legs: []provider.RawLeg{
		rawLeg("AA300", "LAX", "2024-06-08T09:00:00", "JFK", "2024-06-08T17:30:00"),
	}}
	payload.Flights["r2"] = provider.Flight{DurationSeconds: 30000, Legs: []provider.RawLeg{
		rawLeg("AA301", "LAX", "2024-06-08T06:00:00", "JFK", "2024-06-08T14:30:00"),
		rawLeg("AA302", "JFK", "2024-06-08T16:00:00", "BOS", "2024-06-08T17:20:00"),
	}}

	fake := &fakeProvider{payload: payload}
	uc := newTestUsecase(t, fake, nil)
	in := trip()
	in.ReturnDate = "2024-06-08"

	for name, search := range map[string]func(context.Context, entity.TripRequest) (*SearchOutput, error){
		"search":   uc.Search,
		"filtered": uc.FilteredSearch,
	} {
		out, err := search(context.Background(), in)
		if err != nil {
			t.Fatalf("%s error = %v", name, err)
		}
		if fake.last.Return != "2024-06-08" {
			t.Errorf("%s: return not forwarded", name)
		}
		if len(out.ReturnItineraries) != 1 || out.ReturnItineraries[0].FlightKey != "r1" {
			t.Errorf("%s: ReturnItineraries = %+v, want only r1", name, out.ReturnItineraries)
		}
		if out.Metadata.TotalResults != len(out.Itineraries)+1 {
			t.Errorf("%s: TotalResults = %d", name, out.Metadata.TotalResults)
		}
	}
}
