package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"grandstay/internal/assistant"
	"grandstay/internal/hotel"
	"grandstay/internal/latency"
)

// statusClientClosed is reported when the caller went away before a
// delayed action ran.
const statusClientClosed = 499

func statusFor(err error) int {
	switch {
	case errors.Is(err, hotel.ErrRoomNotFound),
		errors.Is(err, hotel.ErrBookingNotFound),
		errors.Is(err, hotel.ErrTaskNotFound),
		errors.Is(err, hotel.ErrOrderNotFound),
		errors.Is(err, hotel.ErrReportNotFound):
		return http.StatusNotFound
	case errors.Is(err, hotel.ErrInvalidTransition),
		errors.Is(err, hotel.ErrRoomNotAvailable),
		errors.Is(err, latency.ErrBusy):
		return http.StatusConflict
	case errors.Is(err, hotel.ErrInvalidStatus),
		errors.Is(err, hotel.ErrInvalidTask),
		errors.Is(err, hotel.ErrInvalidQuote),
		errors.Is(err, assistant.ErrEmptyPrompt):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return statusClientClosed
	default:
		return http.StatusInternalServerError
	}
}

func (h *HotelAPI) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", "path", c.FullPath(), "error", err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
