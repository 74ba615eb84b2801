package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"grandstay/internal/assistant"
	"grandstay/internal/hotel"
	"grandstay/internal/models"
	"grandstay/internal/notify"
)

// MockProvider is a mock implementation of providers.Provider
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) Complete(ctx context.Context, systemPrompt, prompt string) (string, error) {
	args := m.Called(ctx, systemPrompt, prompt)
	return args.String(0), args.Error(1)
}

type testServer struct {
	api   *HotelAPI
	store *hotel.Store
	feed  *notify.Feed
}

func newTestServer(t *testing.T, provider *MockProvider) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := hotel.NewStore(hotel.DefaultSeed())
	require.NoError(t, err)
	feed := notify.NewFeed(time.Minute)

	var asst *assistant.Assistant
	if provider != nil {
		asst = assistant.New(provider, assistant.NewMemoryHistory(20))
	}

	api := NewHotelAPI(Options{
		Store:     store,
		Assistant: asst,
		Feed:      feed,
		Sessions:  NewSessionManager("test-secret", time.Hour),
		Delays:    Delays{Booking: time.Millisecond, Report: time.Millisecond},
	})
	return &testServer{api: api, store: store, feed: feed}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.api.Router.ServeHTTP(w, req)
	return w
}

func (s *testServer) login(t *testing.T, role string) string {
	t.Helper()
	w := s.do(t, "POST", "/api/v1/session", "", gin.H{"role": role})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token    string `json:"token"`
		Greeting string `json:"greeting"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, nil)
	w := s.do(t, "GET", "/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ok", response["status"])
}

func TestSessionRequired(t *testing.T) {
	s := newTestServer(t, nil)

	assert.Equal(t, http.StatusUnauthorized, s.do(t, "GET", "/api/v1/rooms", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, s.do(t, "GET", "/api/v1/rooms", "garbage", nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(t, "POST", "/api/v1/session", "", gin.H{"role": "JANITOR"}).Code)
}

func TestRoleScoping(t *testing.T) {
	s := newTestServer(t, nil)
	guest := s.login(t, "guest")
	vendor := s.login(t, "VENDOR")

	assert.Equal(t, http.StatusOK, s.do(t, "GET", "/api/v1/rooms", guest, nil).Code)
	assert.Equal(t, http.StatusForbidden, s.do(t, "GET", "/api/v1/rooms", vendor, nil).Code)
	assert.Equal(t, http.StatusForbidden, s.do(t, "GET", "/api/v1/dashboard/admin", guest, nil).Code)
	assert.Equal(t, http.StatusOK, s.do(t, "GET", "/api/v1/dashboard/vendor", vendor, nil).Code)
	assert.Equal(t, http.StatusOK, s.do(t, "GET", "/api/v1/snapshot", vendor, nil).Code)
}

func TestGuestBookingFlow(t *testing.T) {
	s := newTestServer(t, nil)
	guest := s.login(t, "GUEST")

	w := s.do(t, "POST", "/api/v1/quote", guest, gin.H{"roomId": "301", "nights": 2, "addOns": []string{"late"}})
	require.Equal(t, http.StatusOK, w.Code)
	var q hotel.Quote
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &q))
	assert.Equal(t, 2430.0, q.Subtotal)

	w = s.do(t, "POST", "/api/v1/bookings", guest, gin.H{"roomId": "301"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var b models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	assert.Equal(t, models.BookingConfirmed, b.Status)
	assert.Equal(t, hotel.DefaultGuestName, b.GuestName)

	n, ok := s.feed.Current()
	require.True(t, ok)
	assert.Equal(t, "Reservation "+b.ID+" Confirmed!", n.Message)

	w = s.do(t, "POST", "/api/v1/bookings", guest, gin.H{"roomId": "301"})
	assert.Equal(t, http.StatusConflict, w.Code, "room is now reserved")

	w = s.do(t, "POST", "/api/v1/bookings", guest, gin.H{"roomId": "999"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStaffTransitions(t *testing.T) {
	s := newTestServer(t, nil)
	staff := s.login(t, "STAFF")

	w := s.do(t, "PATCH", "/api/v1/bookings/BKG-001/status", staff, gin.H{"status": "CHECKED_OUT"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	room, err := s.store.Room("102")
	require.NoError(t, err)
	assert.Equal(t, models.RoomDirty, room.Status)

	w = s.do(t, "PATCH", "/api/v1/bookings/BKG-001/status", staff, gin.H{"status": "CHECKED_IN"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, "PATCH", "/api/v1/bookings/BKG-404/status", staff, gin.H{"status": "READY"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, "PATCH", "/api/v1/bookings/BKG-002/status", staff, gin.H{"status": "SLEEPING"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, "PATCH", "/api/v1/rooms/102/status", staff, gin.H{"status": "AVAILABLE"})
	require.Equal(t, http.StatusOK, w.Code)
	n, _ := s.feed.Current()
	assert.Equal(t, "Room status updated to AVAILABLE", n.Message)
}

func TestStaffTasks(t *testing.T) {
	s := newTestServer(t, nil)
	staff := s.login(t, "STAFF")

	w := s.do(t, "POST", "/api/v1/tasks", staff, gin.H{
		"type": "GUEST_REQ", "description": "Extra pillows", "roomNumber": "102", "priority": "LOW",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var task models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	assert.Equal(t, models.TaskPending, task.Status)
	assert.Equal(t, "Now", task.Time)

	w = s.do(t, "POST", "/api/v1/tasks", staff, gin.H{"type": "GUEST_REQ"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, "POST", "/api/v1/issues", staff, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	assert.Equal(t, "New Issue Reported", task.Description)
	assert.Equal(t, "---", task.RoomNumber)

	w = s.do(t, "PATCH", "/api/v1/tasks/"+task.ID+"/status", staff, gin.H{"status": "COMPLETED"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestVendorCompleteOrder(t *testing.T) {
	s := newTestServer(t, nil)
	vendor := s.login(t, "VENDOR")

	w := s.do(t, "PATCH", "/api/v1/orders/ORD-101/status", vendor, gin.H{"status": "COMPLETED"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Order models.Order `json:"order"`
		Note  string       `json:"note"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, hotel.BillingNote, resp.Note)
	n, _ := s.feed.Current()
	assert.Equal(t, hotel.BillingNote, n.Message)

	w = s.do(t, "PATCH", "/api/v1/orders/ORD-101/status", vendor, gin.H{"status": "DELIVERED"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAdminReports(t *testing.T) {
	s := newTestServer(t, nil)
	admin := s.login(t, "ADMIN")

	w := s.do(t, "POST", "/api/v1/reports/rev", admin, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var r hotel.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &r))
	assert.Equal(t, "Monthly Revenue Report generated successfully!", r.Message)

	assert.Equal(t, http.StatusNotFound, s.do(t, "POST", "/api/v1/reports/xyz", admin, nil).Code)
}

func TestChat(t *testing.T) {
	p := new(MockProvider)
	p.On("Complete", mock.Anything, mock.Anything, "Occupancy?").Return("Occupancy is 17%.", nil)
	s := newTestServer(t, p)
	admin := s.login(t, "ADMIN")

	w := s.do(t, "POST", "/api/v1/chat", admin, gin.H{"message": "Occupancy?"})
	require.Equal(t, http.StatusOK, w.Code)
	var reply assistant.Reply
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))
	assert.Equal(t, "Occupancy is 17%.", reply.Text)

	w = s.do(t, "GET", "/api/v1/chat/history", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var turns []assistant.Turn
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &turns))
	assert.Len(t, turns, 3)

	assert.Equal(t, http.StatusBadRequest, s.do(t, "POST", "/api/v1/chat", admin, gin.H{"message": " "}).Code)
}

func TestChatWithoutProvider(t *testing.T) {
	s := newTestServer(t, nil)
	guest := s.login(t, "GUEST")
	before := s.store.Snapshot()

	w := s.do(t, "POST", "/api/v1/chat", guest, gin.H{"message": "Book me a room"})
	require.Equal(t, http.StatusOK, w.Code)
	var reply assistant.Reply
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))
	assert.Equal(t, assistant.NoProviderReply, reply.Text)
	assert.Equal(t, before, s.store.Snapshot())
}

func TestNotificationsCurrent(t *testing.T) {
	s := newTestServer(t, nil)
	staff := s.login(t, "STAFF")

	assert.Equal(t, http.StatusNoContent, s.do(t, "GET", "/api/v1/notifications/current", staff, nil).Code)
	s.feed.Publish("New task scheduled")
	assert.Equal(t, http.StatusOK, s.do(t, "GET", "/api/v1/notifications/current", staff, nil).Code)
}
