package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-backoffice/models"
	"github.com/yeremiapane/restaurant-backoffice/utils"
)

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

// GetAllEvents -> public listing; published=true only unless all=true
func (ec *EventController) GetAllEvents(c *gin.Context) {
	query := ec.DB.Model(&models.Event{}).Order("id ASC")
	if c.Query("all") != "true" {
		query = query.Where("published = ?", true)
	}

	var events []models.Event
	if err := query.Find(&events).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of events", events)
}

// GetEventByID -> detail of one event
func (ec *EventController) GetEventByID(c *gin.Context) {
	var event models.Event
	if err := ec.DB.First(&event, c.Param("event_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Event detail", event)
}

// CreateEvent
func (ec *EventController) CreateEvent(c *gin.Context) {
	var req struct {
		Name        string  `json:"name" binding:"required,max=255"`
		Description *string `json:"description" binding:"omitempty,max=1024"`
		Published   *bool   `json:"published"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	event := models.Event{
		Name:        req.Name,
		Description: req.Description,
		Published:   true,
	}
	if req.Published != nil {
		event.Published = *req.Published
	}

	if err := ec.DB.Create(&event).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New event created: %s (published=%v)", event.Name, event.Published)
	utils.RespondJSON(c, http.StatusCreated, "Event created successfully", event)
}

// UpdateEvent -> partial update
func (ec *EventController) UpdateEvent(c *gin.Context) {
	var event models.Event
	if err := ec.DB.First(&event, c.Param("event_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		Name        *string `json:"name" binding:"omitempty,max=255"`
		Description *string `json:"description" binding:"omitempty,max=1024"`
		Published   *bool   `json:"published"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Description != nil {
		event.Description = req.Description
	}
	if req.Published != nil {
		event.Published = *req.Published
	}

	if err := ec.DB.Save(&event).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Event updated", event)
}

// DeleteEvent -> removes the event and its image file
func (ec *EventController) DeleteEvent(c *gin.Context) {
	var event models.Event
	if err := ec.DB.First(&event, c.Param("event_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := ec.DB.Delete(&event).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if event.Image != nil {
		removeUpload(*event.Image)
	}

	utils.InfoLogger.Printf("Event %d deleted", event.ID)
	utils.RespondJSON(c, http.StatusOK, "Event deleted", gin.H{
		"id": event.ID,
	})
}

// UploadEventImage -> stores the banner image under /static/events
func (ec *EventController) UploadEventImage(c *gin.Context) {
	var event models.Event
	if err := ec.DB.First(&event, c.Param("event_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("image file is required"))
		return
	}

	url, err := saveUpload(c, file, "events")
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if event.Image != nil {
		removeUpload(*event.Image)
	}

	event.Image = &url
	if err := ec.DB.Save(&event).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Event image uploaded", event)
}
