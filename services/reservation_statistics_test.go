package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-backoffice/models"
	"github.com/yeremiapane/restaurant-backoffice/repository"
)

// anchor is the injected "today" every window in these tests hangs off.
var anchor = time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)

func setupStatistics(t *testing.T) (*repository.ReservationRepository, *ReservationStatistics) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Reservation{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	repo := repository.NewReservationRepository(db)
	stats := NewReservationStatistics(repo)
	stats.now = func() time.Time { return anchor }
	return repo, stats
}

func seed(t *testing.T, repo *repository.ReservationRepository, date time.Time, people int, served bool) {
	t.Helper()
	err := repo.Create(&models.Reservation{
		DateReservation: date,
		PeopleCount:     people,
		PhoneNumber:     "+1555000111",
		Served:          served,
	})
	assert.NoError(t, err)
}

func TestWeekWindowBoundary(t *testing.T) {
	repo, stats := setupStatistics(t)

	sixDaysAgo := anchor.AddDate(0, 0, -6)
	sevenDaysAgo := anchor.AddDate(0, 0, -7)
	seed(t, repo, sixDaysAgo, 4, false)
	seed(t, repo, sevenDaysAgo, 4, false)

	daily, err := stats.DailyCounts(StatisticWeek)
	assert.NoError(t, err)
	assert.Len(t, daily, 1, "the 7-day-old reservation is outside the week window")
	assert.Equal(t, sixDaysAgo.Format("2006-01-02"), daily[0].Day)

	// the month window still covers both
	daily, err = stats.DailyCounts(StatisticMonth)
	assert.NoError(t, err)
	assert.Len(t, daily, 2)
}

func TestMonthWindowBoundary(t *testing.T) {
	repo, stats := setupStatistics(t)

	seed(t, repo, anchor.AddDate(0, 0, -29), 2, false)
	seed(t, repo, anchor.AddDate(0, 0, -30), 2, false)

	daily, err := stats.DailyCounts(StatisticMonth)
	assert.NoError(t, err)
	assert.Len(t, daily, 1)
}

func TestDailyCountsOmitEmptyDaysAndSplitServed(t *testing.T) {
	repo, stats := setupStatistics(t)

	today := anchor
	twoDaysAgo := anchor.AddDate(0, 0, -2)
	seed(t, repo, today, 4, true)
	seed(t, repo, today, 2, false)
	seed(t, repo, today, 6, true)
	seed(t, repo, twoDaysAgo, 3, false)

	daily, err := stats.DailyCounts(StatisticWeek)
	assert.NoError(t, err)

	// only the two days with data appear, ascending by day
	assert.Len(t, daily, 2)
	assert.Equal(t, twoDaysAgo.Format("2006-01-02"), daily[0].Day)
	assert.EqualValues(t, 1, daily[0].ReservedCount)
	assert.EqualValues(t, 0, daily[0].ServedCount)
	assert.Equal(t, today.Format("2006-01-02"), daily[1].Day)
	assert.EqualValues(t, 3, daily[1].ReservedCount)
	assert.EqualValues(t, 2, daily[1].ServedCount)
}

func TestTodayIsInsideTheWindow(t *testing.T) {
	repo, stats := setupStatistics(t)

	// late on the anchor day, after the anchor instant itself
	seed(t, repo, anchor.Add(5*time.Hour), 4, false)

	daily, err := stats.DailyCounts(StatisticWeek)
	assert.NoError(t, err)
	assert.Len(t, daily, 1, "the window anchors on the calendar date, not the current instant")
}

func TestPeopleCountHistogram(t *testing.T) {
	repo, stats := setupStatistics(t)

	seed(t, repo, anchor, 4, false)
	seed(t, repo, anchor.AddDate(0, 0, -1), 4, true)
	seed(t, repo, anchor.AddDate(0, 0, -2), 2, false)
	seed(t, repo, anchor.AddDate(0, 0, -3), 8, false)
	// outside the week window
	seed(t, repo, anchor.AddDate(0, 0, -10), 4, false)

	people, err := stats.PeopleCounts(StatisticWeek)
	assert.NoError(t, err)

	assert.Len(t, people, 3)
	assert.Equal(t, 2, people[0].PeopleCount)
	assert.EqualValues(t, 1, people[0].ReservationsCount)
	assert.Equal(t, 4, people[1].PeopleCount)
	assert.EqualValues(t, 2, people[1].ReservationsCount)
	assert.Equal(t, 8, people[2].PeopleCount)
	assert.EqualValues(t, 1, people[2].ReservationsCount)
}

func TestEmptyWindowYieldsEmptyListsNotErrors(t *testing.T) {
	_, stats := setupStatistics(t)

	daily, err := stats.DailyCounts(StatisticWeek)
	assert.NoError(t, err)
	assert.Empty(t, daily)

	people, err := stats.PeopleCounts(StatisticMonth)
	assert.NoError(t, err)
	assert.Empty(t, people)
}

func TestParseStatisticType(t *testing.T) {
	assert.Equal(t, StatisticWeek, ParseStatisticType("week"))
	assert.Equal(t, StatisticMonth, ParseStatisticType("month"))
	assert.Equal(t, StatisticWeek, ParseStatisticType(""))
	assert.Equal(t, StatisticWeek, ParseStatisticType("year"))
}
