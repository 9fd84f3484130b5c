package services

import (
	"time"

	"github.com/yeremiapane/restaurant-backoffice/repository"
)

// StatisticType selects the trailing window the aggregates cover.
type StatisticType string

const (
	StatisticWeek  StatisticType = "week"
	StatisticMonth StatisticType = "month"
)

// ParseStatisticType defaults anything that is not "month" to the week
// window, mirroring the behavior clients already rely on.
func ParseStatisticType(value string) StatisticType {
	if value == string(StatisticMonth) {
		return StatisticMonth
	}
	return StatisticWeek
}

// ReservationStatistics computes the two occupancy aggregates over a
// rolling window anchored at today's calendar date. Every call recomputes
// from the store; reservation volume is low and these are read endpoints.
type ReservationStatistics struct {
	repo *repository.ReservationRepository
	now  func() time.Time
}

func NewReservationStatistics(repo *repository.ReservationRepository) *ReservationStatistics {
	return &ReservationStatistics{repo: repo, now: time.Now}
}

// DailyCounts returns per-day reserved/served totals for the window,
// ascending by day. Days without reservations are omitted.
func (s *ReservationStatistics) DailyCounts(statType StatisticType) ([]repository.DailyReservationCount, error) {
	start, end := s.window(statType)
	return s.repo.DailyCounts(start, end)
}

// PeopleCounts returns the party-size histogram for the window, ascending
// by party size.
func (s *ReservationStatistics) PeopleCounts(statType StatisticType) ([]repository.PeopleCountBucket, error) {
	start, end := s.window(statType)
	return s.repo.PeopleCounts(start, end)
}

// window anchors on the calendar date of now: the week window covers the
// 7 days ending today, the month window the 30 days ending today. Both
// bounds are day-inclusive; end is the midnight after today.
func (s *ReservationStatistics) window(statType StatisticType) (time.Time, time.Time) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	days := 6
	if statType == StatisticMonth {
		days = 29
	}
	return today.AddDate(0, 0, -days), today.AddDate(0, 0, 1)
}
