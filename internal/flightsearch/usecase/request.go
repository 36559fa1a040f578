package usecase

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shandysiswandi/goskiplagged/internal/flightsearch/entity"
	"github.com/shandysiswandi/goskiplagged/internal/flightsearch/provider"
)

const unlimited = -1

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// searchPlan is a validated TripRequest ready to be sent.
type searchPlan struct {
	request    provider.SearchRequest
	trip       entity.TripRequest
	limit      int
	departDate time.Time
}

// buildRequest validates in and normalizes it into the provider query.
// Missing required fields are reported as *entity.MissingFieldError in
// declaration order (from, to, departureDate).
func buildRequest(in entity.TripRequest) (searchPlan, error) {
	in.Origin = strings.ToUpper(strings.TrimSpace(in.Origin))
	in.Destination = strings.ToUpper(strings.TrimSpace(in.Destination))
	in.DepartureDate = strings.TrimSpace(in.DepartureDate)
	in.ReturnDate = strings.TrimSpace(in.ReturnDate)
	if in.Sort == "" {
		in.Sort = entity.SortCost
	}

	if err := validate.Struct(in); err != nil {
		return searchPlan{}, mapValidationError(err)
	}

	departDate, err := time.Parse(time.DateOnly, in.DepartureDate)
	if err != nil {
		return searchPlan{}, &entity.InvalidFieldError{Field: "departureDate", Value: in.DepartureDate}
	}

	return searchPlan{
		request: provider.SearchRequest{
			From:   in.Origin,
			To:     in.Destination,
			Depart: in.DepartureDate,
			Return: in.ReturnDate,
			Sort:   string(in.Sort),
		},
		trip:       in,
		limit:      normalizeResultsCount(in.ResultsCount),
		departDate: departDate,
	}, nil
}

// normalizeResultsCount maps nil and negative counts to unlimited and 0 to
// the provider default of one result.
func normalizeResultsCount(count *int) int {
	switch {
	case count == nil || *count < 0:
		return unlimited
	case *count == 0:
		return 1
	default:
		return *count
	}
}

func mapValidationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return fmt.Errorf("validate trip request: %w", err)
	}

	fe := errs[0]
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	if fe.Tag() == "required" {
		return &entity.MissingFieldError{Field: field}
	}

	reason := fe.Tag()
	if fe.Param() != "" {
		reason += "=" + fe.Param()
	}
	return &entity.InvalidFieldError{Field: field, Value: fmt.Sprint(fe.Value()), Reason: reason}
}
