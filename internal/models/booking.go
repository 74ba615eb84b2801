package models

// DateLayout is the calendar date format used for check-in and check-out.
const DateLayout = "2006-01-02"

// BookingStatus is the lifecycle state of a reservation.
type BookingStatus string

const (
	BookingConfirmed  BookingStatus = "CONFIRMED"
	BookingReady      BookingStatus = "READY"
	BookingCheckedIn  BookingStatus = "CHECKED_IN"
	BookingCheckedOut BookingStatus = "CHECKED_OUT"
	BookingCancelled  BookingStatus = "CANCELLED"
)

// Valid reports whether s is a known booking status.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingConfirmed, BookingReady, BookingCheckedIn, BookingCheckedOut, BookingCancelled:
		return true
	}
	return false
}

// Booking represents a guest reservation of one room
type Booking struct {
	ID          string        `json:"id"`
	GuestName   string        `json:"guestName"`
	RoomID      string        `json:"roomId"`
	RoomNumber  string        `json:"roomNumber"`
	CheckIn     string        `json:"checkIn"`
	CheckOut    string        `json:"checkOut"`
	Status      BookingStatus `json:"status"`
	TotalAmount float64       `json:"totalAmount"`
}
