package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-backoffice/models"
	"github.com/yeremiapane/restaurant-backoffice/repository"
	"github.com/yeremiapane/restaurant-backoffice/utils"
)

// ReservationPatch lists the fields a partial update may touch. Nil
// fields are left unchanged.
type ReservationPatch struct {
	DateReservation *time.Time
	PeopleCount     *int
	PhoneNumber     *string
	Email           *string
	Comment         *string
	AdminComment    *string
	Served          *bool
}

// ReservationService orchestrates the store, the query plan builder and
// the statistics engine behind the reservation endpoints.
type ReservationService struct {
	repo  *repository.ReservationRepository
	stats *ReservationStatistics
}

func NewReservationService(db *gorm.DB) *ReservationService {
	repo := repository.NewReservationRepository(db)
	return &ReservationService{
		repo:  repo,
		stats: NewReservationStatistics(repo),
	}
}

// List resolves the parameters into a single plan and runs both the page
// query and the matching count against it.
func (s *ReservationService) List(params ListParams) ([]models.Reservation, int64, error) {
	plan, err := BuildListPlan(params)
	if err != nil {
		return nil, 0, err
	}
	reservations, err := s.repo.List(plan)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(plan)
	if err != nil {
		return nil, 0, err
	}
	return reservations, total, nil
}

// GetOrFail returns the reservation or repository.ErrReservationNotFound.
func (s *ReservationService) GetOrFail(id uint) (*models.Reservation, error) {
	return s.repo.Get(id)
}

// Create validates the required fields and persists a new record. The
// store assigns id and both timestamps; served defaults to false unless
// the caller set it.
func (s *ReservationService) Create(reservation *models.Reservation) error {
	if reservation.DateReservation.IsZero() {
		return &ValidationError{Reason: "date_reservation is required"}
	}
	if reservation.PeopleCount <= 0 {
		return &ValidationError{Reason: "people_count must be greater than zero"}
	}
	if reservation.PhoneNumber == "" {
		return &ValidationError{Reason: "phone_number is required"}
	}
	if err := s.repo.Create(reservation); err != nil {
		return err
	}
	utils.InfoLogger.Printf("Reservation %d created for %s (people=%d)",
		reservation.ID, reservation.DateReservation.Format("2006-01-02 15:04"), reservation.PeopleCount)
	return nil
}

// Update applies the non-nil patch fields to an existing reservation.
// The existence check and the write run in one storage transaction, so a
// concurrent delete surfaces as NotFound rather than a partial write.
// updated_at advances even when the patch is empty.
func (s *ReservationService) Update(id uint, patch ReservationPatch) (*models.Reservation, error) {
	changes := map[string]interface{}{}
	if patch.DateReservation != nil {
		changes["date_reservation"] = *patch.DateReservation
	}
	if patch.PeopleCount != nil {
		if *patch.PeopleCount <= 0 {
			return nil, &ValidationError{Reason: "people_count must be greater than zero"}
		}
		changes["people_count"] = *patch.PeopleCount
	}
	if patch.PhoneNumber != nil {
		if *patch.PhoneNumber == "" {
			return nil, &ValidationError{Reason: "phone_number must not be empty"}
		}
		changes["phone_number"] = *patch.PhoneNumber
	}
	if patch.Email != nil {
		changes["email"] = *patch.Email
	}
	if patch.Comment != nil {
		changes["comment"] = *patch.Comment
	}
	if patch.AdminComment != nil {
		changes["admin_comment"] = *patch.AdminComment
	}
	if patch.Served != nil {
		changes["served"] = *patch.Served
	}
	return s.repo.Update(id, changes)
}

// Delete removes the reservation; the removal is terminal.
func (s *ReservationService) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	utils.InfoLogger.Printf("Reservation %d deleted", id)
	return nil
}

// DailyStatistics returns the daily occupancy aggregate for the window.
func (s *ReservationService) DailyStatistics(statType StatisticType) ([]repository.DailyReservationCount, error) {
	return s.stats.DailyCounts(statType)
}

// PeopleCountStatistics returns the party-size histogram for the window.
func (s *ReservationService) PeopleCountStatistics(statType StatisticType) ([]repository.PeopleCountBucket, error) {
	return s.stats.PeopleCounts(statType)
}
