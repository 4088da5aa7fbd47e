package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hallbooking/internal/middleware"
	"hallbooking/internal/modules/booking"
	"hallbooking/internal/modules/catalog"
	"hallbooking/internal/repository"
)

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	roomRepo := repository.NewRoomRepository()
	bookingRepo := repository.NewBookingRepository()

	catalogService := catalog.NewService(roomRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, catalogService)
	bookingHandler := booking.NewHandler(bookingService)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.CORS())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hall Booking App API")
	})

	root := r.Group("/")
	catalogHandler.RegisterRoutes(root)
	bookingHandler.RegisterRoutes(root)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, TestResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp TestResponse
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
	}
	return w, resp
}

func TestRootGreeting(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hall Booking App API", w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodOptions, "/getRooms", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestBookingScenario(t *testing.T) {
	r := setupRouter()

	// create a room; first id must be 1
	w, resp := doJSON(t, r, http.MethodPost, "/createRoom", gin.H{
		"roomName":       "MeetingRoom1",
		"seatsAvailable": 50,
		"amenities":      []string{"Wi-Fi", "Projector"},
		"pricePerHour":   50.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.True(t, resp.Success)
	room := resp.Data["room"].(map[string]interface{})
	assert.Equal(t, float64(1), room["id"])
	assert.Equal(t, "MeetingRoom1", room["roomName"])

	// 14:00-16:00 is free
	w, resp = doJSON(t, r, http.MethodPost, "/bookRoom", gin.H{
		"customerName": "John",
		"date":         "2023-12-31",
		"startTime":    "14:00",
		"endTime":      "16:00",
		"roomId":       1,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	booked := resp.Data["booking"].(map[string]interface{})
	assert.Equal(t, float64(1), booked["id"])

	// 15:00-17:00 overlaps (15:00 < 16:00)
	w, resp = doJSON(t, r, http.MethodPost, "/bookRoom", gin.H{
		"customerName": "Jane",
		"date":         "2023-12-31",
		"startTime":    "15:00",
		"endTime":      "17:00",
		"roomId":       1,
	})
	require.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "BOOKING_CONFLICT", resp.Error.Code)

	// 16:00-18:00 only touches the boundary
	w, _ = doJSON(t, r, http.MethodPost, "/bookRoom", gin.H{
		"customerName": "Jane",
		"date":         "2023-12-31",
		"startTime":    "16:00",
		"endTime":      "18:00",
		"roomId":       1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// both bookings are listed
	w, resp = doJSON(t, r, http.MethodGet, "/getBookings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp.Data["bookings"], 2)
}

func TestBookRoomValidation(t *testing.T) {
	r := setupRouter()

	w, resp := doJSON(t, r, http.MethodPost, "/bookRoom", gin.H{
		"customerName": "John",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
}

func TestBookRoomUnknownRoom(t *testing.T) {
	r := setupRouter()

	w, resp := doJSON(t, r, http.MethodPost, "/bookRoom", gin.H{
		"customerName": "John",
		"date":         "2023-12-31",
		"startTime":    "14:00",
		"endTime":      "16:00",
		"roomId":       42,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "ROOM_NOT_FOUND", resp.Error.Code)

	w, resp = doJSON(t, r, http.MethodGet, "/getBookings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, resp.Data["bookings"])
}

func TestCreateRoomValidation(t *testing.T) {
	r := setupRouter()

	w, resp := doJSON(t, r, http.MethodPost, "/createRoom", gin.H{
		"seatsAvailable": 0,
		"pricePerHour":   -5,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
}

func TestRoomsAndBookingsView(t *testing.T) {
	r := setupRouter()

	for _, name := range []string{"MeetingRoom1", "MeetingRoom2"} {
		w, _ := doJSON(t, r, http.MethodPost, "/createRoom", gin.H{
			"roomName":       name,
			"seatsAvailable": 10,
			"pricePerHour":   25.0,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w, _ := doJSON(t, r, http.MethodPost, "/bookRoom", gin.H{
		"customerName": "John",
		"date":         "2023-12-31",
		"startTime":    "14:00",
		"endTime":      "16:00",
		"roomId":       1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp := doJSON(t, r, http.MethodGet, "/getRoomsAndBookings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	rooms := resp.Data["rooms"].([]interface{})
	require.Len(t, rooms, 2)

	first := rooms[0].(map[string]interface{})
	assert.Equal(t, true, first["booked"])
	assert.Len(t, first["bookings"], 1)

	second := rooms[1].(map[string]interface{})
	assert.Equal(t, false, second["booked"])
	assert.Len(t, second["bookings"], 0)
}

func TestCustomerBookingHistory(t *testing.T) {
	r := setupRouter()

	w, _ := doJSON(t, r, http.MethodPost, "/createRoom", gin.H{
		"roomName":       "MeetingRoom1",
		"seatsAvailable": 50,
		"pricePerHour":   50.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/bookRoom", gin.H{
		"customerName": "John",
		"date":         "2023-12-31",
		"startTime":    "14:00",
		"endTime":      "16:00",
		"roomId":       1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// unknown customer is a 404, not an empty list
	w, resp := doJSON(t, r, http.MethodGet, "/getCustomerBookingHistory/NoSuchCustomer", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NO_BOOKINGS_FOUND", resp.Error.Code)

	w, resp = doJSON(t, r, http.MethodGet, "/getCustomerBookingHistory/John", nil)
	require.Equal(t, http.StatusOK, w.Code)

	history := resp.Data["bookingHistory"].([]interface{})
	require.Len(t, history, 1)
	entry := history[0].(map[string]interface{})
	assert.Equal(t, "John", entry["customerName"])
	assert.Equal(t, "MeetingRoom1", entry["roomName"])
	assert.Equal(t, "Confirmed", entry["bookingStatus"])
	assert.Equal(t, "2023-12-31", entry["bookingDate"])
}

func TestCustomersAndBookingsView(t *testing.T) {
	r := setupRouter()

	w, _ := doJSON(t, r, http.MethodPost, "/createRoom", gin.H{
		"roomName":       "MeetingRoom1",
		"seatsAvailable": 50,
		"pricePerHour":   50.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/bookRoom", gin.H{
		"customerName": "John",
		"date":         "2023-12-31",
		"startTime":    "14:00",
		"endTime":      "16:00",
		"roomId":       1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp := doJSON(t, r, http.MethodGet, "/getCustomersAndBookings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	customers := resp.Data["customers"].([]interface{})
	require.Len(t, customers, 1)
	view := customers[0].(map[string]interface{})
	assert.Equal(t, "John", view["customerName"])
	assert.Equal(t, "MeetingRoom1", view["roomName"])
	assert.Equal(t, float64(1), view["bookingId"])
}
