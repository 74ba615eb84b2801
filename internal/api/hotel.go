package api

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"grandstay/internal/assistant"
	"grandstay/internal/hotel"
	"grandstay/internal/latency"
	"grandstay/internal/models"
	"grandstay/internal/monitoring"
	"grandstay/internal/notify"
)

// Delays are the simulated processing times of slow actions.
type Delays struct {
	Booking time.Duration
	Report  time.Duration
}

// Options carries everything the HTTP surface is wired to.
type Options struct {
	Store       *hotel.Store
	Assistant   *assistant.Assistant
	Feed        *notify.Feed
	Hub         http.Handler
	Latency     *latency.Runner
	Sessions    *SessionManager
	Metrics     *monitoring.Metrics
	Logger      *slog.Logger
	CORSOrigins []string
	Delays      Delays
}

// HotelAPI represents the HTTP surface of every role
type HotelAPI struct {
	Router *gin.Engine

	store     *hotel.Store
	assistant *assistant.Assistant
	feed      *notify.Feed
	hub       http.Handler
	latency   *latency.Runner
	sessions  *SessionManager
	metrics   *monitoring.Metrics
	logger    *slog.Logger
	delays    Delays
}

// NewHotelAPI creates the router. Nil optional dependencies are replaced
// with working defaults.
func NewHotelAPI(opts Options) *HotelAPI {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Feed == nil {
		opts.Feed = notify.NewFeed(notify.DefaultTTL)
	}
	if opts.Latency == nil {
		opts.Latency = latency.NewRunner()
	}
	if opts.Assistant == nil {
		opts.Assistant = assistant.New(nil, nil)
	}
	if opts.Metrics == nil {
		opts.Metrics = monitoring.NewMetrics(nil, nil)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(opts.Logger), requestMetrics(opts.Metrics), corsMiddleware(opts.CORSOrigins))

	h := &HotelAPI{
		Router:    router,
		store:     opts.Store,
		assistant: opts.Assistant,
		feed:      opts.Feed,
		hub:       opts.Hub,
		latency:   opts.Latency,
		sessions:  opts.Sessions,
		metrics:   opts.Metrics,
		logger:    opts.Logger,
		delays:    opts.Delays,
	}
	h.setupRoutes()
	return h
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	allowAll := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
	}
	if allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

// setupRoutes configures all API endpoints
func (h *HotelAPI) setupRoutes() {
	h.Router.GET("/health", h.Health)
	if h.hub != nil {
		h.Router.GET("/ws", gin.WrapH(h.hub))
	}

	v1 := h.Router.Group("/api/v1")
	v1.POST("/session", h.CreateSession)

	auth := v1.Group("", AuthMiddleware(h.sessions))
	{
		auth.DELETE("/session", h.EndSession)
		auth.POST("/chat", h.Chat)
		auth.GET("/chat/history", h.ChatHistory)
		auth.GET("/notifications/current", h.CurrentNotification)
		auth.GET("/snapshot", h.Snapshot)
	}

	viewers := auth.Group("", RequireRole(models.RoleGuest, models.RoleStaff, models.RoleAdmin))
	{
		viewers.GET("/rooms", h.ListRooms)
		viewers.GET("/rooms/:id", h.GetRoom)
	}

	guest := auth.Group("", RequireRole(models.RoleGuest))
	{
		guest.GET("/addons", h.ListAddOns)
		guest.POST("/quote", h.Quote)
		guest.POST("/bookings", h.CreateBooking)
		guest.GET("/dashboard/guest", h.GuestDashboard)
	}

	staff := auth.Group("", RequireRole(models.RoleStaff))
	{
		staff.GET("/bookings", h.ListBookings)
		staff.PATCH("/bookings/:id/status", h.UpdateBookingStatus)
		staff.PATCH("/rooms/:id/status", h.UpdateRoomStatus)
		staff.GET("/tasks", h.ListTasks)
		staff.POST("/tasks", h.CreateTask)
		staff.PATCH("/tasks/:id/status", h.UpdateTaskStatus)
		staff.POST("/issues", h.ReportIssue)
		staff.GET("/dashboard/staff", h.StaffDashboard)
	}

	admin := auth.Group("", RequireRole(models.RoleAdmin))
	{
		admin.GET("/dashboard/admin", h.AdminDashboard)
		admin.GET("/staff", h.ListStaff)
		admin.GET("/reports", h.ListReports)
		admin.POST("/reports/:id", h.GenerateReport)
	}

	vendor := auth.Group("", RequireRole(models.RoleVendor))
	{
		vendor.GET("/orders", h.ListOrders)
		vendor.PATCH("/orders/:id/status", h.UpdateOrderStatus)
		vendor.GET("/invoices", h.ListInvoices)
		vendor.GET("/dashboard/vendor", h.VendorDashboard)
	}
}

func (h *HotelAPI) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Grand Stay API is running",
		"strict":  h.store.Strict(),
		"metrics": h.metrics.Monitor().GetMetrics(),
	})
}

type sessionRequest struct {
	Role string `json:"role" binding:"required"`
}

func (h *HotelAPI) CreateSession(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	role, err := models.ParseRole(req.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, s, err := h.sessions.Issue(role)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"token":    token,
		"session":  s,
		"greeting": assistant.Greeting(role),
	})
}

// EndSession is the logout action. The chat history of the session is dropped.
func (h *HotelAPI) EndSession(c *gin.Context) {
	s := currentSession(c)
	if err := h.assistant.Forget(c.Request.Context(), s.ID); err != nil {
		h.logger.Warn("chat history not cleared", "session", s.ID, "error", err)
	}
	c.Status(http.StatusNoContent)
}

func (h *HotelAPI) Snapshot(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot())
}

func (h *HotelAPI) CurrentNotification(c *gin.Context) {
	n, ok := h.feed.Current()
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, n)
}
