package models

// RoomStatus is the housekeeping/occupancy state of a room.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "AVAILABLE"
	RoomOccupied    RoomStatus = "OCCUPIED"
	RoomDirty       RoomStatus = "DIRTY"
	RoomMaintenance RoomStatus = "MAINTENANCE"
	RoomReserved    RoomStatus = "RESERVED"
)

// Valid reports whether s is a known room status.
func (s RoomStatus) Valid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomDirty, RoomMaintenance, RoomReserved:
		return true
	}
	return false
}

// RoomType is the sellable category of a room.
type RoomType string

const (
	RoomStandard     RoomType = "Standard Room"
	RoomDeluxe       RoomType = "Deluxe Suite"
	RoomPresidential RoomType = "Presidential Suite"
)

// Room represents a physical hotel room
type Room struct {
	ID       string     `json:"id"`
	Number   string     `json:"number"`
	Type     RoomType   `json:"type"`
	Status   RoomStatus `json:"status"`
	Price    float64    `json:"price"`
	Image    string     `json:"image"`
	Features []string   `json:"features"`
}

// Clone returns a copy that shares no slices with r.
func (r Room) Clone() Room {
	r.Features = append([]string(nil), r.Features...)
	return r
}
