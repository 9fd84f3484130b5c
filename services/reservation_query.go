package services

import (
	"fmt"
	"time"

	"github.com/yeremiapane/restaurant-backoffice/repository"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// ValidationError marks input that was rejected before any storage access.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ListParams carries the raw list query parameters as the client sent
// them. Dates use the YYYY-MM-DD form.
type ListParams struct {
	Page     int
	Limit    int
	DateFrom string
	DateTo   string
	Order    string
}

var orderKeys = map[string]repository.OrderKey{
	"date_desc":   repository.OrderDateDesc,
	"date_asc":    repository.OrderDateAsc,
	"people_desc": repository.OrderPeopleDesc,
	"people_asc":  repository.OrderPeopleAsc,
}

// ParseOrderKey maps an order parameter onto the closed OrderKey set.
// Unknown or empty keys fall back to the default order instead of failing.
func ParseOrderKey(order string) repository.OrderKey {
	if key, ok := orderKeys[order]; ok {
		return key
	}
	return repository.OrderDefault
}

// BuildListPlan validates the parameters and resolves them into the plan
// executed by the store. date_from bounds at start of day inclusive,
// date_to at end of day inclusive (the next midnight, exclusive).
func BuildListPlan(params ListParams) (repository.ListPlan, error) {
	if params.Page < 1 {
		return repository.ListPlan{}, &ValidationError{Reason: fmt.Sprintf("page must be >= 1, got %d", params.Page)}
	}
	if params.Limit < 1 {
		return repository.ListPlan{}, &ValidationError{Reason: fmt.Sprintf("limit must be >= 1, got %d", params.Limit)}
	}

	plan := repository.ListPlan{
		Offset: (params.Page - 1) * params.Limit,
		Limit:  params.Limit,
		Order:  ParseOrderKey(params.Order),
	}

	if params.DateFrom != "" {
		day, err := parseDay(params.DateFrom)
		if err != nil {
			return repository.ListPlan{}, &ValidationError{Reason: "date_from must be a YYYY-MM-DD date"}
		}
		plan.DateFrom = &day
	}
	if params.DateTo != "" {
		day, err := parseDay(params.DateTo)
		if err != nil {
			return repository.ListPlan{}, &ValidationError{Reason: "date_to must be a YYYY-MM-DD date"}
		}
		until := day.AddDate(0, 0, 1)
		plan.DateUntil = &until
	}

	return plan, nil
}

// parseDay reads a calendar date in the server's local zone, at midnight.
func parseDay(value string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", value, time.Local)
}
