package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"scenicinn/models"
	"scenicinn/services/booking"
)

// BookingHandler exposes the booking submission workflow over HTTP.
type BookingHandler struct {
	Workflow *booking.Workflow
	Logger   *zap.Logger
}

func NewBookingHandler(workflow *booking.Workflow, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Workflow: workflow, Logger: logger}
}

// SubmitBooking accepts a group booking, runs it through the workflow and
// maps the outcome to a response code.
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	var sub models.BookingSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	message, err := h.Workflow.Submit(c.Request.Context(), sub)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

// respondError maps workflow failures to responses. User-correctable failures
// keep their message; render and dispatch detail stays in the logs and the
// client only sees a generic failure.
func (h *BookingHandler) respondError(c *gin.Context, err error) {
	switch {
	case booking.HasCode(err, booking.CodeLeadTimeViolation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bookings must be made at least 24 hours in advance"})
	case booking.HasCode(err, booking.CodeMalformedRequest):
		message := booking.UserMessage(err)
		if message == "" {
			message = "invalid booking request"
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": message})
	default:
		requestID, _ := c.Get("requestID")
		h.Logger.Error("booking failed",
			zap.Any("requestID", requestID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process booking"})
	}
}
