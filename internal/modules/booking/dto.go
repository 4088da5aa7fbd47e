package booking

import "hallbooking/internal/domain"

type CreateBookingRequest struct {
	CustomerName string `json:"customerName" binding:"required"`
	Date         string `json:"date" binding:"required"`
	StartTime    string `json:"startTime" binding:"required"`
	EndTime      string `json:"endTime" binding:"required"`
	RoomID       int64  `json:"roomId" binding:"required"`
}

// BookingSummary is the reduced view of a booking attached to its room in
// the rooms-and-bookings listing.
type BookingSummary struct {
	CustomerName string `json:"customerName"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	BookingID    int64  `json:"bookingId"`
}

type RoomWithBookings struct {
	domain.Room
	Booked   bool             `json:"booked"`
	Bookings []BookingSummary `json:"bookings"`
}

// CustomerBookingView is a booking joined to its room's name.
type CustomerBookingView struct {
	CustomerName string `json:"customerName"`
	RoomName     string `json:"roomName"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	BookingID    int64  `json:"bookingId"`
}

type CustomerHistoryEntry struct {
	CustomerBookingView
	BookingDate   string `json:"bookingDate"`
	BookingStatus string `json:"bookingStatus"`
}
