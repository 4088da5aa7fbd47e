package domain

// Booking reserves a room for a [StartTime, EndTime) interval on a given
// date. Date and times are kept as the opaque strings the client sent:
// dates are compared only for equality and times lexicographically, which
// for zero-padded HH:MM values matches chronological order within a day.
// Parsing them into time.Time would change how malformed input compares.
type Booking struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customerName" validate:"required"`
	Date         string `json:"date" validate:"required"`
	StartTime    string `json:"startTime" validate:"required"`
	EndTime      string `json:"endTime" validate:"required"`
	RoomID       int64  `json:"roomId" validate:"required"`
}

// Overlaps reports whether a candidate [start, end) interval on the given
// room and date collides with this booking. The interval test mirrors the
// original service's policy: it checks whether either endpoint of the
// candidate falls inside the existing interval, so a candidate that
// strictly contains an existing booking slips through. Kept as-is for
// wire-level compatibility; see DESIGN.md before changing it.
func (b Booking) Overlaps(roomID int64, date, start, end string) bool {
	if b.RoomID != roomID || b.Date != date {
		return false
	}
	return (start >= b.StartTime && start < b.EndTime) ||
		(end > b.StartTime && end <= b.EndTime)
}
