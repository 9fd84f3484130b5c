package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-backoffice/controllers"
	"github.com/yeremiapane/restaurant-backoffice/models"
	"github.com/yeremiapane/restaurant-backoffice/utils"
)

// setupTestDBForReservations uses in-memory SQLite scoped to this file.
func setupTestDBForReservations(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Reservation{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func setupReservationRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := controllers.NewReservationController(db)
	router.GET("/reservations", ctrl.GetAllReservations)
	router.GET("/reservations/statistics", ctrl.GetReservationStatistics)
	router.GET("/reservations/people_count_statistics", ctrl.GetPeopleCountStatistics)
	router.GET("/reservations/:reservation_id", ctrl.GetReservationByID)
	router.POST("/reservations", ctrl.CreateReservation)
	router.PATCH("/reservations/:reservation_id", ctrl.UpdateReservation)
	router.DELETE("/reservations/:reservation_id", ctrl.DeleteReservation)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req, err := http.NewRequest(method, url, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

// TestReservationLifecycle covers the whole create -> serve -> delete flow.
func TestReservationLifecycle(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForReservations(t)
	router := setupReservationRouter(db)

	// create
	w := doJSON(t, router, "POST", "/reservations", map[string]interface{}{
		"date_reservation": "2024-01-10T19:00:00Z",
		"people_count":     4,
		"phone_number":     "+1555000111",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	response := decodeBody(t, w)
	data := response["data"].(map[string]interface{})
	assert.EqualValues(t, 1, data["id"])
	assert.Equal(t, false, data["served"])
	assert.Equal(t, "+1555000111", data["phone_number"])
	createdUpdatedAt := data["updated_at"].(string)

	// mark served
	time.Sleep(5 * time.Millisecond)
	w = doJSON(t, router, "PATCH", "/reservations/1", map[string]interface{}{
		"served": true,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	data = decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, true, data["served"])
	assert.Equal(t, "+1555000111", data["phone_number"], "untouched fields survive a partial update")

	before, err := time.Parse(time.RFC3339Nano, createdUpdatedAt)
	assert.NoError(t, err)
	after, err := time.Parse(time.RFC3339Nano, data["updated_at"].(string))
	assert.NoError(t, err)
	assert.True(t, after.After(before), "updated_at must advance")

	// delete, then every id-scoped call answers 404
	w = doJSON(t, router, "DELETE", "/reservations/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "GET", "/reservations/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(t, router, "PATCH", "/reservations/1", map[string]interface{}{"served": false})
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(t, router, "DELETE", "/reservations/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateReservationValidation(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForReservations(t)
	router := setupReservationRouter(db)

	// missing phone number
	w := doJSON(t, router, "POST", "/reservations", map[string]interface{}{
		"date_reservation": "2024-01-10T19:00:00Z",
		"people_count":     4,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// non-positive party size
	w = doJSON(t, router, "POST", "/reservations", map[string]interface{}{
		"date_reservation": "2024-01-10T19:00:00Z",
		"people_count":     0,
		"phone_number":     "+1555000111",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Reservation{}).Count(&count)
	assert.EqualValues(t, 0, count, "validation failures must not touch storage")
}

func TestListReservations(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForReservations(t)
	router := setupReservationRouter(db)

	base := time.Date(2026, 3, 1, 18, 0, 0, 0, time.Local)
	for i := 0; i < 15; i++ {
		db.Create(&models.Reservation{
			DateReservation: base.AddDate(0, 0, i),
			PeopleCount:     2 + i%4,
			PhoneNumber:     fmt.Sprintf("+1555000%03d", i),
		})
	}

	// default paging: first 10 of 15
	w := doJSON(t, router, "GET", "/reservations", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.EqualValues(t, 15, data["total"])
	assert.Len(t, data["results"].([]interface{}), 10)

	// second page holds the remainder
	w = doJSON(t, router, "GET", "/reservations?page=2&limit=10", nil)
	data = decodeBody(t, w)["data"].(map[string]interface{})
	assert.Len(t, data["results"].([]interface{}), 5)

	// date filter narrows both results and total
	from := base.AddDate(0, 0, 10).Format("2006-01-02")
	w = doJSON(t, router, "GET", "/reservations?date_from="+from, nil)
	data = decodeBody(t, w)["data"].(map[string]interface{})
	assert.EqualValues(t, 5, data["total"])

	// ordering by party size descending
	w = doJSON(t, router, "GET", "/reservations?order=people_desc&limit=15", nil)
	data = decodeBody(t, w)["data"].(map[string]interface{})
	results := data["results"].([]interface{})
	previous := 1 << 30
	for _, raw := range results {
		people := int(raw.(map[string]interface{})["people_count"].(float64))
		assert.LessOrEqual(t, people, previous)
		previous = people
	}

	// unknown order keys degrade to default instead of failing
	w = doJSON(t, router, "GET", "/reservations?order=bogus", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListReservationsRejectsBadPaging(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForReservations(t)
	router := setupReservationRouter(db)

	for _, query := range []string{"page=0", "limit=0", "page=-3", "limit=-1", "page=abc"} {
		w := doJSON(t, router, "GET", "/reservations?"+query, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, "query %q", query)
	}
}

func TestReservationStatisticsEndpoints(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForReservations(t)
	router := setupReservationRouter(db)

	now := time.Now()
	db.Create(&models.Reservation{DateReservation: now, PeopleCount: 4, PhoneNumber: "+1555000111", Served: true})
	db.Create(&models.Reservation{DateReservation: now, PeopleCount: 4, PhoneNumber: "+1555000222"})
	db.Create(&models.Reservation{DateReservation: now.AddDate(0, 0, -2), PeopleCount: 2, PhoneNumber: "+1555000333"})

	w := doJSON(t, router, "GET", "/reservations/statistics?type=week", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	rows := decodeBody(t, w)["data"].([]interface{})
	assert.Len(t, rows, 2)
	today := rows[1].(map[string]interface{})
	assert.EqualValues(t, 2, today["reserved_count"])
	assert.EqualValues(t, 1, today["served_count"])

	w = doJSON(t, router, "GET", "/reservations/people_count_statistics?type=month", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	rows = decodeBody(t, w)["data"].([]interface{})
	assert.Len(t, rows, 2)
	first := rows[0].(map[string]interface{})
	assert.EqualValues(t, 2, first["people_count"])
	assert.EqualValues(t, 1, first["reservations_count"])
}
