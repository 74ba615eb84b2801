package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"grandstay/internal/hotel"
	"grandstay/internal/models"
)

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func bindStatus(c *gin.Context) (string, bool) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	return req.Status, true
}

// Guest handlers

func (h *HotelAPI) ListRooms(c *gin.Context) {
	rooms := h.store.Rooms()
	if status := c.Query("status"); status != "" {
		filtered := rooms[:0]
		for _, r := range rooms {
			if string(r.Status) == status {
				filtered = append(filtered, r)
			}
		}
		rooms = filtered
	}
	c.JSON(http.StatusOK, rooms)
}

func (h *HotelAPI) GetRoom(c *gin.Context) {
	room, err := h.store.Room(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (h *HotelAPI) ListAddOns(c *gin.Context) {
	c.JSON(http.StatusOK, models.AddOnCatalog)
}

type quoteRequest struct {
	RoomID string   `json:"roomId" binding:"required"`
	Nights int      `json:"nights"`
	AddOns []string `json:"addOns"`
}

func (h *HotelAPI) Quote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Nights == 0 {
		req.Nights = 1
	}
	q, err := h.store.Quote(req.RoomID, req.Nights, req.AddOns)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

type bookingRequest struct {
	RoomID    string `json:"roomId" binding:"required"`
	GuestName string `json:"guestName"`
}

// CreateBooking simulates payment processing before the reservation is
// committed. Abandoning the request cancels the booking.
func (h *HotelAPI) CreateBooking(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s := currentSession(c)
	var booking models.Booking
	err := h.latency.Do(c.Request.Context(), s.ID+":booking", h.delays.Booking, func() error {
		var err error
		booking, err = h.store.CreateBooking(req.RoomID, req.GuestName)
		return err
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	h.feed.Publish(fmt.Sprintf("Reservation %s Confirmed!", booking.ID))
	c.JSON(http.StatusCreated, booking)
}

func (h *HotelAPI) GuestDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GuestDashboard())
}

// Staff handlers

func (h *HotelAPI) ListBookings(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Bookings())
}

func (h *HotelAPI) UpdateBookingStatus(c *gin.Context) {
	status, ok := bindStatus(c)
	if !ok {
		return
	}
	b, err := h.store.AdvanceBookingStatus(c.Param("id"), models.BookingStatus(status))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.feed.Publish(fmt.Sprintf("Booking %s updated to %s", b.ID, b.Status))
	c.JSON(http.StatusOK, b)
}

func (h *HotelAPI) UpdateRoomStatus(c *gin.Context) {
	status, ok := bindStatus(c)
	if !ok {
		return
	}
	r, err := h.store.SetRoomStatus(c.Param("id"), models.RoomStatus(status))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.feed.Publish(fmt.Sprintf("Room status updated to %s", r.Status))
	c.JSON(http.StatusOK, r)
}

func (h *HotelAPI) ListTasks(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Tasks())
}

func (h *HotelAPI) CreateTask(c *gin.Context) {
	var task models.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.store.AddTask(task)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.feed.Publish("New task scheduled")
	c.JSON(http.StatusCreated, created)
}

type issueRequest struct {
	RoomNumber  string `json:"roomNumber"`
	Description string `json:"description"`
}

// ReportIssue files a MEDIUM maintenance task. Both fields are optional.
func (h *HotelAPI) ReportIssue(c *gin.Context) {
	var req issueRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if req.RoomNumber == "" {
		req.RoomNumber = "---"
	}
	if req.Description == "" {
		req.Description = "New Issue Reported"
	}

	created, err := h.store.AddTask(models.Task{
		Type:        models.TaskMaintenance,
		Description: req.Description,
		RoomNumber:  req.RoomNumber,
		Priority:    models.PriorityMedium,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	h.feed.Publish("New task scheduled")
	c.JSON(http.StatusCreated, created)
}

func (h *HotelAPI) UpdateTaskStatus(c *gin.Context) {
	status, ok := bindStatus(c)
	if !ok {
		return
	}
	t, err := h.store.AdvanceTaskStatus(c.Param("id"), models.TaskStatus(status))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.feed.Publish(fmt.Sprintf("Task %s updated to %s", t.ID, t.Status))
	c.JSON(http.StatusOK, t)
}

func (h *HotelAPI) StaffDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.StaffDashboard())
}

// Admin handlers

func (h *HotelAPI) AdminDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.AdminDashboard())
}

func (h *HotelAPI) ListStaff(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Staff())
}

func (h *HotelAPI) ListReports(c *gin.Context) {
	c.JSON(http.StatusOK, models.ReportCatalog)
}

func (h *HotelAPI) GenerateReport(c *gin.Context) {
	s := currentSession(c)
	var report hotel.Report
	err := h.latency.Do(c.Request.Context(), s.ID+":report", h.delays.Report, func() error {
		var err error
		report, err = h.store.GenerateReport(c.Param("id"))
		return err
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	h.feed.Publish(report.Message)
	c.JSON(http.StatusOK, report)
}

// Vendor handlers

func (h *HotelAPI) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Orders())
}

func (h *HotelAPI) UpdateOrderStatus(c *gin.Context) {
	status, ok := bindStatus(c)
	if !ok {
		return
	}
	o, note, err := h.store.AdvanceOrderStatus(c.Param("id"), models.OrderStatus(status))
	if err != nil {
		h.fail(c, err)
		return
	}
	msg := note
	if msg == "" {
		msg = fmt.Sprintf("Order %s updated to %s", o.ID, o.Status)
	}
	h.feed.Publish(msg)
	c.JSON(http.StatusOK, gin.H{"order": o, "note": note})
}

func (h *HotelAPI) ListInvoices(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Invoices())
}

func (h *HotelAPI) VendorDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.VendorDashboard())
}

// Chat handlers

type chatRequest struct {
	Message string `json:"message"`
}

// Chat answers from the assistant. Provider failures still return 200 with
// a fallback reply; only blank prompts are rejected.
func (h *HotelAPI) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s := currentSession(c)
	reply, err := h.assistant.Converse(c.Request.Context(), s.ID, s.Role, req.Message, h.store.ContextSummary(s.Role))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

func (h *HotelAPI) ChatHistory(c *gin.Context) {
	s := currentSession(c)
	turns, err := h.assistant.Transcript(c.Request.Context(), s.ID, s.Role)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, turns)
}
