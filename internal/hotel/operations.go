package hotel

import (
	"fmt"

	"grandstay/internal/models"
)

// DefaultGuestName is used when a booking is created without a name.
const DefaultGuestName = "Current Guest"

// BillingNote is returned when a service order is marked complete.
const BillingNote = "Service marked complete. Added to monthly statement."

// CreateBooking reserves the room for two nights starting today and queues
// the arrival preparation task.
func (s *Store) CreateBooking(roomID, guestName string) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byID[roomID]
	if !ok {
		return models.Booking{}, fmt.Errorf("%w: %s", ErrRoomNotFound, roomID)
	}
	room := &s.rooms[i]
	if s.strict && room.Status != models.RoomAvailable {
		return models.Booking{}, fmt.Errorf("%w: room %s is %s", ErrRoomNotAvailable, room.Number, room.Status)
	}
	if guestName == "" {
		guestName = DefaultGuestName
	}

	now := s.now()
	b := models.Booking{
		ID:          s.newBookingID(),
		GuestName:   guestName,
		RoomID:      room.ID,
		RoomNumber:  room.Number,
		CheckIn:     now.Format(models.DateLayout),
		CheckOut:    now.AddDate(0, 0, 2).Format(models.DateLayout),
		Status:      models.BookingConfirmed,
		TotalAmount: room.Price * 2,
	}
	s.bookings = append(s.bookings, b)
	room.Status = models.RoomReserved
	s.prependTask(models.Task{
		ID:          s.newTaskID(),
		Type:        models.TaskHousekeeping,
		Description: fmt.Sprintf("Prepare Room %s for Arrival", room.Number),
		RoomNumber:  room.Number,
		Status:      models.TaskPending,
		Priority:    models.PriorityHigh,
		Time:        "Now",
	})
	s.observer.BookingCreated(b)
	return b, nil
}

// AdvanceBookingStatus moves a booking to status and applies the room and
// housekeeping side effects of check-in and check-out.
func (s *Store) AdvanceBookingStatus(id string, status models.BookingStatus) (models.Booking, error) {
	if !status.Valid() {
		return models.Booking{}, fmt.Errorf("%w: booking status %q", ErrInvalidStatus, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findBooking(id)
	if i < 0 {
		return models.Booking{}, fmt.Errorf("%w: %s", ErrBookingNotFound, id)
	}
	b := &s.bookings[i]
	from := b.Status
	if s.strict && !from.CanTransitionTo(status) {
		return *b, s.reject("booking", id, string(from), string(status))
	}

	switch status {
	case models.BookingCheckedIn:
		s.setRoomByNumber(b.RoomNumber, models.RoomOccupied)
	case models.BookingCheckedOut:
		s.setRoomByNumber(b.RoomNumber, models.RoomDirty)
		s.tasks = append(s.tasks, models.Task{
			ID:          s.newTaskID(),
			Type:        models.TaskHousekeeping,
			Description: fmt.Sprintf("Turnover Clean Room %s", b.RoomNumber),
			RoomNumber:  b.RoomNumber,
			Status:      models.TaskPending,
			Priority:    models.PriorityHigh,
			Time:        "Now",
		})
	case models.BookingCancelled:
		// A reservation that never arrived gives the room back, unless
		// another pending booking still holds it.
		r, ok := s.byNumber[b.RoomNumber]
		if ok && s.rooms[r].Status == models.RoomReserved && !s.roomHeld(b.RoomNumber, b.ID) {
			s.rooms[r].Status = models.RoomAvailable
		}
	}
	b.Status = status
	s.observer.Transition("booking", string(from), string(status))
	return *b, nil
}

// roomHeld reports whether a booking other than except is still waiting to
// arrive in the room.
func (s *Store) roomHeld(number, except string) bool {
	for _, b := range s.bookings {
		if b.ID == except || b.RoomNumber != number {
			continue
		}
		if b.Status == models.BookingConfirmed || b.Status == models.BookingReady {
			return true
		}
	}
	return false
}

// SetRoomStatus overwrites a room's status. It has no downstream effects.
func (s *Store) SetRoomStatus(roomID string, status models.RoomStatus) (models.Room, error) {
	if !status.Valid() {
		return models.Room{}, fmt.Errorf("%w: room status %q", ErrInvalidStatus, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byID[roomID]
	if !ok {
		return models.Room{}, fmt.Errorf("%w: %s", ErrRoomNotFound, roomID)
	}
	from := s.rooms[i].Status
	s.rooms[i].Status = status
	s.observer.Transition("room", string(from), string(status))
	return s.rooms[i].Clone(), nil
}

// AddTask fills in defaults, validates and prepends the task.
func (s *Store) AddTask(t models.Task) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		t.ID = s.newTaskID()
	} else if s.findTask(t.ID) >= 0 {
		return models.Task{}, fmt.Errorf("%w: duplicate id %s", ErrInvalidTask, t.ID)
	}
	if t.Status == "" {
		t.Status = models.TaskPending
	}
	if t.Time == "" {
		t.Time = "Now"
	}
	if err := models.ValidateTask(t); err != nil {
		return models.Task{}, fmt.Errorf("%w: %v", ErrInvalidTask, err)
	}
	s.prependTask(t)
	return t, nil
}

// AdvanceTaskStatus moves a task to status.
func (s *Store) AdvanceTaskStatus(id string, status models.TaskStatus) (models.Task, error) {
	if !status.Valid() {
		return models.Task{}, fmt.Errorf("%w: task status %q", ErrInvalidStatus, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findTask(id)
	if i < 0 {
		return models.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	t := &s.tasks[i]
	from := t.Status
	if s.strict && !from.CanTransitionTo(status) {
		return *t, s.reject("task", id, string(from), string(status))
	}
	t.Status = status
	s.observer.Transition("task", string(from), string(status))
	return *t, nil
}

// AdvanceOrderStatus moves a vendor order to status. Completing an order
// returns BillingNote; invoices are never touched.
func (s *Store) AdvanceOrderStatus(id string, status models.OrderStatus) (models.Order, string, error) {
	if !status.Valid() {
		return models.Order{}, "", fmt.Errorf("%w: order status %q", ErrInvalidStatus, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findOrder(id)
	if i < 0 {
		return models.Order{}, "", fmt.Errorf("%w: %s", ErrOrderNotFound, id)
	}
	o := &s.orders[i]
	from := o.Status
	if s.strict && !o.CanTransitionTo(status) {
		return *o, "", s.reject("order", id, string(from), string(status))
	}
	o.Status = status
	s.observer.Transition("order", string(from), string(status))

	var note string
	if status == models.OrderCompleted {
		note = BillingNote
	}
	return *o, note, nil
}

// ScheduleDailyCleaning queues a MEDIUM cleaning task for every occupied
// room that has no open housekeeping task. It returns the tasks added.
func (s *Store) ScheduleDailyCleaning() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	covered := make(map[string]bool)
	for _, t := range s.tasks {
		if t.Type == models.TaskHousekeeping && t.Open() {
			covered[t.RoomNumber] = true
		}
	}

	var added []models.Task
	for _, r := range s.rooms {
		if r.Status != models.RoomOccupied || covered[r.Number] {
			continue
		}
		t := models.Task{
			ID:          s.newTaskID(),
			Type:        models.TaskHousekeeping,
			Description: "Daily Cleaning",
			RoomNumber:  r.Number,
			Status:      models.TaskPending,
			Priority:    models.PriorityMedium,
			Time:        s.now().Format("03:04 PM"),
		}
		s.tasks = append(s.tasks, t)
		added = append(added, t)
	}
	return added
}
