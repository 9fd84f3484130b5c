package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-backoffice/models"
	"github.com/yeremiapane/restaurant-backoffice/repository"
	"github.com/yeremiapane/restaurant-backoffice/services"
	"github.com/yeremiapane/restaurant-backoffice/utils"
)

type ReservationController struct {
	Service *services.ReservationService
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{Service: services.NewReservationService(db)}
}

// GetAllReservations -> filtered, ordered, paginated listing plus the
// matching total for pagination metadata.
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	page, err := intQuery(c, "page", services.DefaultPage)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	limit, err := intQuery(c, "limit", services.DefaultLimit)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	params := services.ListParams{
		Page:     page,
		Limit:    limit,
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
		Order:    c.Query("order"),
	}

	reservations, total, err := rc.Service.List(params)
	if err != nil {
		respondReservationError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of reservations", gin.H{
		"results": reservations,
		"total":   total,
	})
}

// GetReservationByID -> detail of one reservation
func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	id, err := reservationID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Service.GetOrFail(id)
	if err != nil {
		respondReservationError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation detail", reservation)
}

// CreateReservation -> registers a new reservation
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req struct {
		DateReservation time.Time `json:"date_reservation" binding:"required"`
		PeopleCount     int       `json:"people_count" binding:"required,gt=0"`
		PhoneNumber     string    `json:"phone_number" binding:"required,max=255"`
		Email           *string   `json:"email" binding:"omitempty,max=255"`
		Comment         *string   `json:"comment" binding:"omitempty,max=1024"`
		AdminComment    *string   `json:"admin_comment" binding:"omitempty,max=1024"`
		Served          bool      `json:"served"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation := models.Reservation{
		DateReservation: req.DateReservation,
		PeopleCount:     req.PeopleCount,
		PhoneNumber:     req.PhoneNumber,
		Email:           req.Email,
		Comment:         req.Comment,
		AdminComment:    req.AdminComment,
		Served:          req.Served,
	}

	if err := rc.Service.Create(&reservation); err != nil {
		respondReservationError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Reservation created successfully", reservation)
}

// UpdateReservation -> partial update, only supplied fields change
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	id, err := reservationID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		DateReservation *time.Time `json:"date_reservation"`
		PeopleCount     *int       `json:"people_count"`
		PhoneNumber     *string    `json:"phone_number" binding:"omitempty,max=255"`
		Email           *string    `json:"email" binding:"omitempty,max=255"`
		Comment         *string    `json:"comment" binding:"omitempty,max=1024"`
		AdminComment    *string    `json:"admin_comment" binding:"omitempty,max=1024"`
		Served          *bool      `json:"served"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Service.Update(id, services.ReservationPatch{
		DateReservation: req.DateReservation,
		PeopleCount:     req.PeopleCount,
		PhoneNumber:     req.PhoneNumber,
		Email:           req.Email,
		Comment:         req.Comment,
		AdminComment:    req.AdminComment,
		Served:          req.Served,
	})
	if err != nil {
		respondReservationError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation updated", reservation)
}

// DeleteReservation -> removes a reservation permanently
func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	id, err := reservationID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := rc.Service.Delete(id); err != nil {
		respondReservationError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation deleted", gin.H{
		"id": id,
	})
}

// GetReservationStatistics -> daily reserved/served counts over the
// trailing week or month window.
func (rc *ReservationController) GetReservationStatistics(c *gin.Context) {
	statType := services.ParseStatisticType(c.DefaultQuery("type", string(services.StatisticWeek)))

	rows, err := rc.Service.DailyStatistics(statType)
	if err != nil {
		respondReservationError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation statistics", rows)
}

// GetPeopleCountStatistics -> party-size histogram over the same windows
func (rc *ReservationController) GetPeopleCountStatistics(c *gin.Context) {
	statType := services.ParseStatisticType(c.DefaultQuery("type", string(services.StatisticWeek)))

	rows, err := rc.Service.PeopleCountStatistics(statType)
	if err != nil {
		respondReservationError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "People count statistics", rows)
}

func reservationID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("reservation_id"), 10, 32)
	if err != nil {
		return 0, errors.New("invalid reservation id")
	}
	return uint(id), nil
}

func respondReservationError(c *gin.Context, err error) {
	var validation *services.ValidationError
	switch {
	case errors.Is(err, repository.ErrReservationNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.As(err, &validation):
		utils.RespondError(c, http.StatusBadRequest, err)
	default:
		utils.ErrorLogger.Printf("reservation storage error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}

func intQuery(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("invalid " + name + " parameter")
	}
	return value, nil
}
