package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"scenicinn/handlers"
	"scenicinn/models"
	"scenicinn/services/booking"
	"scenicinn/services/render"
)

type spyRenderer struct {
	calls int
	inner booking.Renderer
}

func (s *spyRenderer) Render(req models.BookingRequest, selections []models.MenuSelection) (*models.ConfirmationDocument, error) {
	s.calls++
	return s.inner.Render(req, selections)
}

type spyDispatcher struct {
	calls    int
	customer string
	err      error
}

func (s *spyDispatcher) Dispatch(ctx context.Context, customerEmail string, doc *models.ConfirmationDocument, req models.BookingRequest) error {
	s.calls++
	s.customer = customerEmail
	return s.err
}

func newBookingRouter(renderer booking.Renderer, dispatcher booking.Dispatcher, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	if logger == nil {
		logger = zap.NewNop()
	}
	wf := booking.NewWorkflow(booking.NewValidator(), renderer, dispatcher, logger)
	h := handlers.NewBookingHandler(wf, logger)

	r := gin.New()
	r.POST("/booking", h.SubmitBooking)
	return r
}

func submissionBody(t *testing.T, target time.Time) []byte {
	t.Helper()
	sub := models.BookingSubmission{
		BookingData: models.BookingRequest{
			Date:         target.Format("2006-01-02"),
			Time:         target.Format("15:04"),
			PartySize:    4,
			ContactName:  "Jane",
			ContactEmail: "jane@example.com",
		},
		MenuSelections: []models.MenuSelection{
			{Name: "Jane", Selections: []models.CourseSelection{
				{Course: "Starter", Item: "Soup", Price: json.Number("5")},
			}},
		},
		ContactEmail: "jane@example.com",
	}
	body, err := json.Marshal(sub)
	require.NoError(t, err)
	return body
}

func postBooking(r *gin.Engine, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/booking", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func Test_SubmitBooking_Success(t *testing.T) {
	renderer := &spyRenderer{inner: render.NewConfirmationRenderer("The Scenic Inn")}
	dispatcher := &spyDispatcher{}
	r := newBookingRouter(renderer, dispatcher, nil)

	w := postBooking(r, submissionBody(t, time.Now().AddDate(0, 0, 2)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), booking.SuccessMessage)
	assert.Equal(t, 1, renderer.calls)
	assert.Equal(t, 1, dispatcher.calls)
	assert.Equal(t, "jane@example.com", dispatcher.customer)
}

func Test_SubmitBooking_LeadTimeViolation(t *testing.T) {
	renderer := &spyRenderer{inner: render.NewConfirmationRenderer("The Scenic Inn")}
	dispatcher := &spyDispatcher{}
	r := newBookingRouter(renderer, dispatcher, nil)

	w := postBooking(r, submissionBody(t, time.Now().Add(2*time.Hour)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Bookings must be made at least 24 hours in advance")
	// Renderer and dispatcher are never invoked for an invalid booking.
	assert.Equal(t, 0, renderer.calls)
	assert.Equal(t, 0, dispatcher.calls)
}

func Test_SubmitBooking_DispatchFailure(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	logger := zap.New(core)

	renderer := &spyRenderer{inner: render.NewConfirmationRenderer("The Scenic Inn")}
	dispatcher := &spyDispatcher{err: booking.NewDispatchError(errors.New("smtp 421: service not available"))}
	r := newBookingRouter(renderer, dispatcher, logger)

	w := postBooking(r, submissionBody(t, time.Now().AddDate(0, 0, 2)))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "Failed to process booking"}`, w.Body.String())
	// Transport detail stays in the logs and out of the response body.
	assert.NotContains(t, w.Body.String(), "smtp")
	assert.True(t, loggedDispatchDetail(logs), "expected dispatch error detail in the logs")
}

func loggedDispatchDetail(logs *observer.ObservedLogs) bool {
	for _, entry := range logs.All() {
		for _, value := range entry.ContextMap() {
			if strings.Contains(fmt.Sprint(value), booking.CodeDispatchError) {
				return true
			}
		}
	}
	return false
}

func Test_SubmitBooking_MalformedJSONBody(t *testing.T) {
	renderer := &spyRenderer{inner: render.NewConfirmationRenderer("The Scenic Inn")}
	dispatcher := &spyDispatcher{}
	r := newBookingRouter(renderer, dispatcher, nil)

	w := postBooking(r, []byte(`{"bookingData": `))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, dispatcher.calls)
}

func Test_SubmitBooking_MalformedDate(t *testing.T) {
	renderer := &spyRenderer{inner: render.NewConfirmationRenderer("The Scenic Inn")}
	dispatcher := &spyDispatcher{}
	r := newBookingRouter(renderer, dispatcher, nil)

	sub := models.BookingSubmission{
		BookingData: models.BookingRequest{
			Date:         "someday",
			Time:         "18:00",
			PartySize:    4,
			ContactEmail: "jane@example.com",
		},
		ContactEmail: "jane@example.com",
	}
	body, err := json.Marshal(sub)
	require.NoError(t, err)

	w := postBooking(r, body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "booking date or time is not valid")
	assert.Equal(t, 0, dispatcher.calls)
}
