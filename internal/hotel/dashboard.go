package hotel

import (
	"math"

	"grandstay/internal/models"
)

// GuestDashboard lists what a guest can book.
type GuestDashboard struct {
	AvailableRooms []models.Room  `json:"availableRooms"`
	AddOns         []models.AddOn `json:"addOns"`
}

// StaffDashboard is the front desk and operations worklist.
type StaffDashboard struct {
	Arrivals          []models.Booking `json:"arrivals"`
	Departures        []models.Booking `json:"departures"`
	PendingTasks      []models.Task    `json:"pendingTasks"`
	MaintenanceIssues []models.Task    `json:"maintenanceIssues"`
	DirtyRooms        []models.Room    `json:"dirtyRooms"`
	Rooms             []models.Room    `json:"rooms"`
}

// AdminDashboard aggregates the figures shown to management.
type AdminDashboard struct {
	Revenue          []models.ChartPoint    `json:"revenue"`
	Occupancy        []models.ChartPoint    `json:"occupancy"`
	Staff            []models.StaffMember   `json:"staff"`
	Invoices         []models.VendorInvoice `json:"invoices"`
	TotalRevenue     float64                `json:"totalRevenue"`
	OccupancyPercent int                    `json:"occupancyPercent"`
	StaffOnDuty      int                    `json:"staffOnDuty"`
	OutstandingBills float64                `json:"outstandingBills"`
}

// VendorDashboard summarises a vendor's pipeline and earnings.
type VendorDashboard struct {
	ActiveJobs        []models.Order         `json:"activeJobs"`
	CompletedUnbilled float64                `json:"completedUnbilled"`
	TotalEarnings     float64                `json:"totalEarnings"`
	Invoices          []models.VendorInvoice `json:"invoices"`
}

func (s *Store) GuestDashboard() GuestDashboard {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := GuestDashboard{AvailableRooms: []models.Room{}, AddOns: clone(models.AddOnCatalog)}
	for _, r := range s.rooms {
		if r.Status == models.RoomAvailable {
			d.AvailableRooms = append(d.AvailableRooms, r.Clone())
		}
	}
	return d
}

// StaffDashboard derives the worklists. Departures are checked-in stays
// whose check-out date is today.
func (s *Store) StaffDashboard() StaffDashboard {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.now().Format(models.DateLayout)
	d := StaffDashboard{
		Arrivals:          []models.Booking{},
		Departures:        []models.Booking{},
		PendingTasks:      []models.Task{},
		MaintenanceIssues: []models.Task{},
		DirtyRooms:        []models.Room{},
		Rooms:             s.roomsLocked(),
	}
	for _, b := range s.bookings {
		switch {
		case b.Status == models.BookingConfirmed || b.Status == models.BookingReady:
			d.Arrivals = append(d.Arrivals, b)
		case b.Status == models.BookingCheckedIn && b.CheckOut == today:
			d.Departures = append(d.Departures, b)
		}
	}
	for _, t := range s.tasks {
		if t.Status == models.TaskPending {
			d.PendingTasks = append(d.PendingTasks, t)
		}
		if t.Type == models.TaskMaintenance && t.Open() {
			d.MaintenanceIssues = append(d.MaintenanceIssues, t)
		}
	}
	for _, r := range s.rooms {
		if r.Status == models.RoomDirty {
			d.DirtyRooms = append(d.DirtyRooms, r.Clone())
		}
	}
	return d
}

func (s *Store) AdminDashboard() AdminDashboard {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := AdminDashboard{
		Revenue:          clone(s.revenue),
		Occupancy:        clone(s.occupancy),
		Staff:            clone(s.staff),
		Invoices:         clone(s.invoices),
		OccupancyPercent: s.occupancyLocked(),
	}
	for _, p := range s.revenue {
		d.TotalRevenue += p.Value
	}
	for _, m := range s.staff {
		if m.Status == models.StaffActive {
			d.StaffOnDuty++
		}
	}
	for _, inv := range s.invoices {
		if inv.Status != models.InvoicePaid {
			d.OutstandingBills += inv.Amount
		}
	}
	return d
}

func (s *Store) VendorDashboard() VendorDashboard {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := VendorDashboard{ActiveJobs: []models.Order{}, Invoices: clone(s.invoices)}
	for _, o := range s.orders {
		if o.Status.Active() {
			d.ActiveJobs = append(d.ActiveJobs, o)
		}
		if o.Status == models.OrderCompleted {
			d.CompletedUnbilled += o.Amount
		}
	}
	for _, inv := range s.invoices {
		if inv.Status == models.InvoicePaid {
			d.TotalEarnings += inv.Amount
		}
	}
	return d
}

// Quote is the price breakdown of a prospective stay.
type Quote struct {
	RoomID   string         `json:"roomId"`
	Nights   int            `json:"nights"`
	RoomCost float64        `json:"roomCost"`
	AddOns   []models.AddOn `json:"addOns"`
	Subtotal float64        `json:"subtotal"`
	Tax      float64        `json:"tax"`
	Total    float64        `json:"total"`
}

func cents(v float64) float64 {
	return math.Round(v*100) / 100
}

// Quote prices a stay. Unknown add-on ids are ignored and each add-on is
// counted once.
func (s *Store) Quote(roomID string, nights int, addOnIDs []string) (Quote, error) {
	if nights < 1 {
		return Quote{}, ErrInvalidQuote
	}
	room, err := s.Room(roomID)
	if err != nil {
		return Quote{}, err
	}

	q := Quote{RoomID: room.ID, Nights: nights, RoomCost: room.Price * float64(nights), AddOns: []models.AddOn{}}
	q.Subtotal = q.RoomCost
	picked := make(map[string]bool, len(addOnIDs))
	for _, id := range addOnIDs {
		if picked[id] {
			continue
		}
		picked[id] = true
		if a, ok := models.FindAddOn(id); ok {
			q.AddOns = append(q.AddOns, a)
			q.Subtotal += a.Price
		}
	}
	q.Subtotal = cents(q.Subtotal)
	q.Tax = cents(q.Subtotal * models.TaxRate)
	q.Total = cents(q.Subtotal + q.Tax)
	return q, nil
}
