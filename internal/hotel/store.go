package hotel

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"grandstay/internal/models"
)

// Observer receives a callback for every applied or rejected transition.
// Callbacks run while the store lock is held and must not call back into
// the store.
type Observer interface {
	BookingCreated(b models.Booking)
	Transition(entity, from, to string)
	TransitionRejected(entity, from, to string)
}

type nopObserver struct{}

func (nopObserver) BookingCreated(models.Booking)     {}
func (nopObserver) Transition(_, _, _ string)         {}
func (nopObserver) TransitionRejected(_, _, _ string) {}

// Option configures a Store.
type Option func(*Store)

// WithStrict toggles transition table enforcement. A permissive store
// accepts every status write and books rooms regardless of their status.
func WithStrict(strict bool) Option {
	return func(s *Store) { s.strict = strict }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithRandSource fixes the source used for reservation ids.
func WithRandSource(src rand.Source) Option {
	return func(s *Store) { s.rng = rand.New(src) }
}

// WithLogger sets the logger used for rejected transitions.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithObserver registers the transition observer.
func WithObserver(o Observer) Option {
	return func(s *Store) { s.observer = o }
}

// Store holds the whole workflow state of the property. Every operation
// runs under a single mutex and completes without suspending, so callers
// always observe whole transitions.
type Store struct {
	mu sync.Mutex

	rooms     []models.Room
	byID      map[string]int
	byNumber  map[string]int
	bookings  []models.Booking
	tasks     []models.Task
	orders    []models.Order
	invoices  []models.VendorInvoice
	staff     []models.StaffMember
	revenue   []models.ChartPoint
	occupancy []models.ChartPoint

	strict   bool
	now      func() time.Time
	rng      *rand.Rand
	logger   *slog.Logger
	observer Observer
}

// NewStore creates a store loaded with seed. Room numbers must be unique.
func NewStore(seed Seed, opts ...Option) (*Store, error) {
	s := &Store{
		byID:     make(map[string]int, len(seed.Rooms)),
		byNumber: make(map[string]int, len(seed.Rooms)),
		strict:   true,
		now:      time.Now,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}

	for i, r := range seed.Rooms {
		if _, dup := s.byNumber[r.Number]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRoom, r.Number)
		}
		if _, dup := s.byID[r.ID]; dup {
			return nil, fmt.Errorf("%w: id %s", ErrDuplicateRoom, r.ID)
		}
		s.byID[r.ID] = i
		s.byNumber[r.Number] = i
		s.rooms = append(s.rooms, r.Clone())
	}
	s.bookings = append(s.bookings, seed.Bookings...)
	s.tasks = append(s.tasks, seed.Tasks...)
	s.orders = append(s.orders, seed.Orders...)
	s.invoices = append(s.invoices, seed.Invoices...)
	s.staff = append(s.staff, seed.Staff...)
	s.revenue = append(s.revenue, seed.Revenue...)
	s.occupancy = append(s.occupancy, seed.Occupancy...)
	return s, nil
}

// Strict reports whether transition tables are enforced.
func (s *Store) Strict() bool {
	return s.strict
}

func (s *Store) reject(entity, id, from, to string) error {
	s.logger.Warn("transition rejected", "entity", entity, "id", id, "from", from, "to", to)
	s.observer.TransitionRejected(entity, from, to)
	return fmt.Errorf("%w: %s %s %s -> %s", ErrInvalidTransition, entity, id, from, to)
}

func (s *Store) findBooking(id string) int {
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) findTask(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) findOrder(id string) int {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return i
		}
	}
	return -1
}

// setRoomByNumber is a no-op for numbers no room carries.
func (s *Store) setRoomByNumber(number string, status models.RoomStatus) {
	if i, ok := s.byNumber[number]; ok {
		s.rooms[i].Status = status
	}
}

func (s *Store) newBookingID() string {
	for {
		id := fmt.Sprintf("RES-%05d", 10000+s.rng.Intn(90000))
		if s.findBooking(id) < 0 {
			return id
		}
	}
}

func (s *Store) newTaskID() string {
	ms := s.now().UnixMilli()
	for {
		id := fmt.Sprintf("TSK-%d", ms)
		if s.findTask(id) < 0 {
			return id
		}
		ms++
	}
}

func (s *Store) prependTask(t models.Task) {
	s.tasks = append([]models.Task{t}, s.tasks...)
}
