package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/restaurant-backoffice/repository"
)

func TestBuildListPlanDefaults(t *testing.T) {
	plan, err := BuildListPlan(ListParams{Page: DefaultPage, Limit: DefaultLimit})
	assert.NoError(t, err)
	assert.Equal(t, 0, plan.Offset)
	assert.Equal(t, 10, plan.Limit)
	assert.Nil(t, plan.DateFrom)
	assert.Nil(t, plan.DateUntil)
	assert.Equal(t, repository.OrderDefault, plan.Order)
}

func TestBuildListPlanOffsetArithmetic(t *testing.T) {
	plan, err := BuildListPlan(ListParams{Page: 3, Limit: 25})
	assert.NoError(t, err)
	assert.Equal(t, 50, plan.Offset)
	assert.Equal(t, 25, plan.Limit)
}

func TestBuildListPlanRejectsNonPositivePaging(t *testing.T) {
	cases := []ListParams{
		{Page: 0, Limit: 10},
		{Page: -1, Limit: 10},
		{Page: 1, Limit: 0},
		{Page: 1, Limit: -5},
	}
	for _, params := range cases {
		_, err := BuildListPlan(params)
		var validation *ValidationError
		assert.ErrorAs(t, err, &validation, "page=%d limit=%d", params.Page, params.Limit)
	}
}

func TestBuildListPlanDateBounds(t *testing.T) {
	plan, err := BuildListPlan(ListParams{
		Page:     1,
		Limit:    10,
		DateFrom: "2026-03-10",
		DateTo:   "2026-03-12",
	})
	assert.NoError(t, err)

	wantFrom := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	wantUntil := time.Date(2026, 3, 13, 0, 0, 0, 0, time.Local)
	assert.True(t, plan.DateFrom.Equal(wantFrom), "date_from binds at start of day")
	assert.True(t, plan.DateUntil.Equal(wantUntil), "date_to covers the whole day")
}

func TestBuildListPlanRejectsMalformedDates(t *testing.T) {
	_, err := BuildListPlan(ListParams{Page: 1, Limit: 10, DateFrom: "10/03/2026"})
	var validation *ValidationError
	assert.ErrorAs(t, err, &validation)

	_, err = BuildListPlan(ListParams{Page: 1, Limit: 10, DateTo: "not-a-date"})
	assert.ErrorAs(t, err, &validation)
}

func TestParseOrderKey(t *testing.T) {
	assert.Equal(t, repository.OrderDateDesc, ParseOrderKey("date_desc"))
	assert.Equal(t, repository.OrderDateAsc, ParseOrderKey("date_asc"))
	assert.Equal(t, repository.OrderPeopleDesc, ParseOrderKey("people_desc"))
	assert.Equal(t, repository.OrderPeopleAsc, ParseOrderKey("people_asc"))

	// unknown keys degrade to the default order without erroring
	assert.Equal(t, repository.OrderDefault, ParseOrderKey(""))
	assert.Equal(t, repository.OrderDefault, ParseOrderKey("people"))
	assert.Equal(t, repository.OrderDefault, ParseOrderKey("DATE_DESC"))
}
