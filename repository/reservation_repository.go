package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-backoffice/models"
)

// OrderKey is the closed set of list orderings a caller may request.
// OrderDefault sorts by id ascending, which is insertion order.
type OrderKey int

const (
	OrderDefault OrderKey = iota
	OrderDateDesc
	OrderDateAsc
	OrderPeopleDesc
	OrderPeopleAsc
)

// ListPlan is the resolved filter+sort+paging query executed by List
// and Count. Count applies the date predicate only and ignores
// paging and order, so list totals and page contents stay consistent.
type ListPlan struct {
	Offset int
	Limit  int
	// DateFrom is an inclusive lower bound, DateUntil an exclusive
	// upper bound (the first instant after the requested range).
	DateFrom  *time.Time
	DateUntil *time.Time
	Order     OrderKey
}

// DailyReservationCount is one row of the daily occupancy aggregate.
type DailyReservationCount struct {
	Day           string `json:"day"`
	ReservedCount int64  `json:"reserved_count"`
	ServedCount   int64  `json:"served_count"`
}

// PeopleCountBucket is one row of the party-size histogram.
type PeopleCountBucket struct {
	PeopleCount       int   `json:"people_count"`
	ReservationsCount int64 `json:"reservations_count"`
}

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// Get returns the reservation with the given id or ErrReservationNotFound.
func (r *ReservationRepository) Get(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := r.db.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return &reservation, nil
}

// List executes the plan and returns at most plan.Limit records. An empty
// result is not an error.
func (r *ReservationRepository) List(plan ListPlan) ([]models.Reservation, error) {
	reservations := make([]models.Reservation, 0, plan.Limit)
	query := applyDateFilter(r.db.Model(&models.Reservation{}), plan).
		Order(orderClause(plan.Order)).
		Offset(plan.Offset).
		Limit(plan.Limit)
	if err := query.Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

// Count returns how many records match the plan's date predicate.
func (r *ReservationRepository) Count(plan ListPlan) (int64, error) {
	var total int64
	err := applyDateFilter(r.db.Model(&models.Reservation{}), plan).Count(&total).Error
	return total, err
}

// Create persists a new reservation and fills in its id and timestamps.
func (r *ReservationRepository) Create(reservation *models.Reservation) error {
	return r.db.Create(reservation).Error
}

// Update applies only the columns present in changes and always refreshes
// updated_at, even when changes is empty. The existence check and the
// write share one transaction so a concurrent delete cannot slip between
// them; an absent id fails with ErrReservationNotFound.
func (r *ReservationRepository) Update(id uint, changes map[string]interface{}) (*models.Reservation, error) {
	if changes == nil {
		changes = map[string]interface{}{}
	}
	var reservation models.Reservation
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reservation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		changes["updated_at"] = time.Now()
		if err := tx.Model(&reservation).Updates(changes).Error; err != nil {
			return err
		}
		return tx.First(&reservation, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// Delete removes the reservation with the given id. Deleting an absent id
// fails with ErrReservationNotFound; ids are never reused.
func (r *ReservationRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := tx.First(&reservation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		return tx.Delete(&reservation).Error
	})
}

// DailyCounts groups reservations inside [start, end) by calendar day and
// counts total and served rows per day, ascending. Days without any
// reservation produce no row.
func (r *ReservationRepository) DailyCounts(start, end time.Time) ([]DailyReservationCount, error) {
	rows := make([]DailyReservationCount, 0)
	err := r.db.Model(&models.Reservation{}).
		Select("DATE(date_reservation) AS day, COUNT(id) AS reserved_count, SUM(CASE WHEN served THEN 1 ELSE 0 END) AS served_count").
		Where("date_reservation >= ? AND date_reservation < ?", start, end).
		Group("DATE(date_reservation)").
		Order("day ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// PeopleCounts groups reservations inside [start, end) by party size,
// ascending by people_count.
func (r *ReservationRepository) PeopleCounts(start, end time.Time) ([]PeopleCountBucket, error) {
	rows := make([]PeopleCountBucket, 0)
	err := r.db.Model(&models.Reservation{}).
		Select("people_count, COUNT(id) AS reservations_count").
		Where("date_reservation >= ? AND date_reservation < ?", start, end).
		Group("people_count").
		Order("people_count ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func applyDateFilter(query *gorm.DB, plan ListPlan) *gorm.DB {
	if plan.DateFrom != nil {
		query = query.Where("date_reservation >= ?", *plan.DateFrom)
	}
	if plan.DateUntil != nil {
		query = query.Where("date_reservation < ?", *plan.DateUntil)
	}
	return query
}

// orderClause appends id ASC to every explicit order so equal rows keep a
// stable position between pages.
func orderClause(key OrderKey) string {
	switch key {
	case OrderDateDesc:
		return "date_reservation DESC, id ASC"
	case OrderDateAsc:
		return "date_reservation ASC, id ASC"
	case OrderPeopleDesc:
		return "people_count DESC, id ASC"
	case OrderPeopleAsc:
		return "people_count ASC, id ASC"
	default:
		return "id ASC"
	}
}
