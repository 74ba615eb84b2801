package hotel

import (
	"fmt"
	"math"

	"grandstay/internal/models"
)

// Snapshot is a deep copy of every collection in the store.
type Snapshot struct {
	Rooms    []models.Room          `json:"rooms"`
	Bookings []models.Booking       `json:"bookings"`
	Tasks    []models.Task          `json:"tasks"`
	Orders   []models.Order         `json:"orders"`
	Invoices []models.VendorInvoice `json:"invoices"`
	Staff    []models.StaffMember   `json:"staff"`
}

func (s *Store) roomsLocked() []models.Room {
	out := make([]models.Room, len(s.rooms))
	for i, r := range s.rooms {
		out[i] = r.Clone()
	}
	return out
}

func clone[T any](in []T) []T {
	return append(make([]T, 0, len(in)), in...)
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Rooms:    s.roomsLocked(),
		Bookings: clone(s.bookings),
		Tasks:    clone(s.tasks),
		Orders:   clone(s.orders),
		Invoices: clone(s.invoices),
		Staff:    clone(s.staff),
	}
}

func (s *Store) Rooms() []models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roomsLocked()
}

func (s *Store) Bookings() []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.bookings)
}

func (s *Store) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.tasks)
}

func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.orders)
}

func (s *Store) Invoices() []models.VendorInvoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.invoices)
}

func (s *Store) Staff() []models.StaffMember {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.staff)
}

// Room looks a room up by id.
func (s *Store) Room(id string) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byID[id]
	if !ok {
		return models.Room{}, fmt.Errorf("%w: %s", ErrRoomNotFound, id)
	}
	return s.rooms[i].Clone(), nil
}

// RoomByNumber looks a room up by its door number.
func (s *Store) RoomByNumber(number string) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byNumber[number]
	if !ok {
		return models.Room{}, fmt.Errorf("%w: number %s", ErrRoomNotFound, number)
	}
	return s.rooms[i].Clone(), nil
}

func (s *Store) Booking(id string) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findBooking(id)
	if i < 0 {
		return models.Booking{}, fmt.Errorf("%w: %s", ErrBookingNotFound, id)
	}
	return s.bookings[i], nil
}

func (s *Store) Task(id string) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findTask(id)
	if i < 0 {
		return models.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return s.tasks[i], nil
}

func (s *Store) Order(id string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findOrder(id)
	if i < 0 {
		return models.Order{}, fmt.Errorf("%w: %s", ErrOrderNotFound, id)
	}
	return s.orders[i], nil
}

func (s *Store) occupancyLocked() int {
	if len(s.rooms) == 0 {
		return 0
	}
	occupied := 0
	for _, r := range s.rooms {
		if r.Status == models.RoomOccupied {
			occupied++
		}
	}
	return int(math.Round(float64(occupied) / float64(len(s.rooms)) * 100))
}

// OccupancyPercent is the share of rooms currently occupied, rounded.
func (s *Store) OccupancyPercent() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.occupancyLocked()
}

// ContextSummary renders the live figures handed to the chat assistant.
func (s *Store) ContextSummary(role models.UserRole) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := 0
	for _, t := range s.tasks {
		if t.Open() {
			pending++
		}
	}
	arrivals := 0
	for _, b := range s.bookings {
		if b.Status == models.BookingConfirmed {
			arrivals++
		}
	}
	return fmt.Sprintf("Role: %s\nOccupancy: %d%%\nPending Tasks: %d\nArrivals Today: %d",
		role, s.occupancyLocked(), pending, arrivals)
}
