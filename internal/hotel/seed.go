package hotel

import "grandstay/internal/models"

// Seed is the initial content of a Store.
type Seed struct {
	Rooms     []models.Room
	Bookings  []models.Booking
	Tasks     []models.Task
	Orders    []models.Order
	Invoices  []models.VendorInvoice
	Staff     []models.StaffMember
	Revenue   []models.ChartPoint
	Occupancy []models.ChartPoint
}

// DefaultSeed returns the demo property loaded at start-up. Every call
// returns fresh slices.
func DefaultSeed() Seed {
	return Seed{
		Rooms: []models.Room{
			{ID: "101", Number: "101", Type: models.RoomStandard, Status: models.RoomAvailable, Price: 150, Image: "https://picsum.photos/400/300?random=1", Features: []string{"Queen Bed", "Wifi", "City View"}},
			{ID: "102", Number: "102", Type: models.RoomStandard, Status: models.RoomOccupied, Price: 150, Image: "https://picsum.photos/400/300?random=2", Features: []string{"Queen Bed", "Wifi", "City View"}},
			{ID: "103", Number: "103", Type: models.RoomStandard, Status: models.RoomDirty, Price: 150, Image: "https://picsum.photos/400/300?random=3", Features: []string{"Twin Beds", "Wifi"}},
			{ID: "201", Number: "201", Type: models.RoomDeluxe, Status: models.RoomAvailable, Price: 300, Image: "https://picsum.photos/400/300?random=4", Features: []string{"King Bed", "Balcony", "Ocean View", "Mini Bar"}},
			{ID: "202", Number: "202", Type: models.RoomDeluxe, Status: models.RoomMaintenance, Price: 300, Image: "https://picsum.photos/400/300?random=5", Features: []string{"King Bed", "Balcony", "Mini Bar"}},
			{ID: "301", Number: "301", Type: models.RoomPresidential, Status: models.RoomAvailable, Price: 1200, Image: "https://picsum.photos/400/300?random=6", Features: []string{"Penthouse", "Private Pool", "Butler Service", "Jacuzzi"}},
		},
		Bookings: []models.Booking{
			{ID: "BKG-001", GuestName: "Alice Johnson", RoomID: "102", RoomNumber: "102", CheckIn: "2025-10-25", CheckOut: "2025-10-28", Status: models.BookingCheckedIn, TotalAmount: 450},
			{ID: "BKG-002", GuestName: "Bob Smith", RoomID: "201", RoomNumber: "201", CheckIn: "2025-11-01", CheckOut: "2025-11-05", Status: models.BookingConfirmed, TotalAmount: 1200},
		},
		Tasks: []models.Task{
			{ID: "TSK-001", Type: models.TaskMaintenance, Description: "AC Repair", RoomNumber: "202", Status: models.TaskInProgress, Priority: models.PriorityHigh, Time: "09:00 AM"},
			{ID: "TSK-002", Type: models.TaskHousekeeping, Description: "Daily Cleaning", RoomNumber: "102", Status: models.TaskPending, Priority: models.PriorityMedium, Time: "10:00 AM"},
		},
		Orders: []models.Order{
			{ID: "ORD-100", Item: "Fresh Linens (Set of 50)", Type: models.OrderSupply, Quantity: 2, Amount: 250, Status: models.OrderPending, Vendor: "LinenPros Inc.", Date: "2025-10-26"},
			{ID: "ORD-101", Item: "Deep Clean - Room 301", Type: models.OrderService, Quantity: 1, Amount: 120, Status: models.OrderInProgress, Vendor: "CleanCo Services", Date: "2025-10-20"},
			{ID: "ORD-102", Item: "Lobby AC Maintenance", Type: models.OrderService, Quantity: 1, Amount: 450, Status: models.OrderCompleted, Vendor: "TechCool HVAC", Date: "2025-10-19"},
		},
		Invoices: []models.VendorInvoice{
			{ID: "INV-001", VendorName: "LinenPros Inc.", Amount: 1250, Date: "2025-10-15", Status: models.InvoicePaid, ServiceType: "Laundry"},
			{ID: "INV-002", VendorName: "HotelEssentials", Amount: 850.50, Date: "2025-10-20", Status: models.InvoicePending, ServiceType: "Supplies"},
			{ID: "INV-003", VendorName: "Gourmet Foods Ltd", Amount: 2300, Date: "2025-10-22", Status: models.InvoicePending, ServiceType: "Catering"},
			{ID: "INV-004", VendorName: "TechSolutions", Amount: 4500, Date: "2025-10-01", Status: models.InvoiceOverdue, ServiceType: "IT Maintenance"},
		},
		Staff: []models.StaffMember{
			{ID: "S001", Name: "John Smith", Role: "Manager", Status: models.StaffActive, Shift: "Morning"},
			{ID: "S002", Name: "Sarah Connor", Role: "Receptionist", Status: models.StaffActive, Shift: "Morning"},
			{ID: "S003", Name: "Mike Ross", Role: "Housekeeping", Status: models.StaffOffDuty, Shift: "Evening"},
			{ID: "S004", Name: "Jessica Pearson", Role: "Manager", Status: models.StaffOnLeave, Shift: "Morning"},
			{ID: "S005", Name: "Louis Litt", Role: "Security", Status: models.StaffActive, Shift: "Night"},
		},
		Revenue: []models.ChartPoint{
			{Name: "Mon", Value: 4000}, {Name: "Tue", Value: 3000}, {Name: "Wed", Value: 5500},
			{Name: "Thu", Value: 4500}, {Name: "Fri", Value: 8000}, {Name: "Sat", Value: 9500},
			{Name: "Sun", Value: 7000},
		},
		Occupancy: []models.ChartPoint{
			{Name: "Occupied", Value: 65}, {Name: "Available", Value: 25}, {Name: "Maintenance", Value: 10},
		},
	}
}
