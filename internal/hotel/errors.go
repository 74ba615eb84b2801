package hotel

import "errors"

var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrTaskNotFound      = errors.New("task not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrReportNotFound    = errors.New("report not found")
	ErrRoomNotAvailable  = errors.New("room not available")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidStatus     = errors.New("unknown status")
	ErrInvalidTask       = errors.New("invalid task")
	ErrInvalidQuote      = errors.New("invalid quote request")
	ErrDuplicateRoom     = errors.New("duplicate room number")
)
