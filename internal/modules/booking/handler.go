package booking

import (
	"errors"
	"net/http"

	"hallbooking/internal/pkg/response"
	"hallbooking/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookRoom", h.BookRoom)
	rg.GET("/getBookings", h.GetBookings)
	rg.GET("/getRoomsAndBookings", h.GetRoomsAndBookings)
	rg.GET("/getCustomersAndBookings", h.GetCustomersAndBookings)
	rg.GET("/getCustomerBookingHistory/:customerName", h.GetCustomerBookingHistory)
}

func (h *Handler) BookRoom(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"Please provide customerName, date, startTime, endTime, and roomId.")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		var ve *ValidationError
		var ce *repository.ConflictError
		switch {
		case errors.As(err, &ve):
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR",
				"Please provide customerName, date, startTime, endTime, and roomId.",
				ve.Missing)
		case errors.Is(err, ErrRoomNotFound):
			response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND",
				"Room not found with the provided ID.")
		case errors.As(err, &ce):
			response.ErrorWithDetails(c, http.StatusConflict, "BOOKING_CONFLICT",
				"Room is already booked during the specified time range.",
				gin.H{"conflictingBookingId": ce.Existing.ID})
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR",
				"Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Room booked successfully",
		"booking": b,
	})
}

func (h *Handler) GetBookings(c *gin.Context) {
	bs, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": bs})
}

func (h *Handler) GetRoomsAndBookings(c *gin.Context) {
	rooms, err := h.service.RoomsWithBookings(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list rooms with bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) GetCustomersAndBookings(c *gin.Context) {
	views, err := h.service.CustomersWithBookings(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list customers with bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"customers": views})
}

func (h *Handler) GetCustomerBookingHistory(c *gin.Context) {
	customerName := c.Param("customerName")

	history, err := h.service.CustomerHistory(c.Request.Context(), customerName)
	if err != nil {
		var nbe *NoBookingsError
		if errors.As(err, &nbe) {
			response.Error(c, http.StatusNotFound, "NO_BOOKINGS_FOUND", nbe.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load booking history")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookingHistory": history})
}
