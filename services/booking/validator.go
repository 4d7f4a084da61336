package booking

import (
	"strings"
	"time"

	"scenicinn/models"
)

// MinLeadTime is how far ahead of submission a booking must start.
const MinLeadTime = 24 * time.Hour

// bookingTimeLayouts are the accepted date/time combinations.
var bookingTimeLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

// Validator enforces structural completeness and the lead-time rule on an
// incoming booking. Now is injectable so the 24-hour boundary can be pinned
// in tests; it defaults to time.Now.
type Validator struct {
	Now func() time.Time
}

func NewValidator() *Validator {
	return &Validator{Now: time.Now}
}

// Validate checks a booking request without side effects. Structural problems
// (missing fields, unparsable date or time) fail with CodeMalformedRequest;
// a booking starting less than 24 hours from now fails with
// CodeLeadTimeViolation. The comparison is exclusive and real-valued: a
// booking exactly 24 hours out passes, anything less fails.
func (v *Validator) Validate(req models.BookingRequest) error {
	if req.Date == "" || req.Time == "" {
		return NewMalformedRequestError("booking date and time are required")
	}
	if req.ContactEmail == "" {
		return NewMalformedRequestError("contact email is required")
	}
	if req.PartySize <= 0 {
		return NewMalformedRequestError("party size must be a positive number")
	}

	start, err := parseBookingTime(req.Date, req.Time)
	if err != nil {
		return NewMalformedRequestError("booking date or time is not valid")
	}

	if start.Sub(v.Now()).Hours() < MinLeadTime.Hours() {
		return NewLeadTimeViolationError()
	}
	return nil
}

// parseBookingTime combines the submitted date and time into a timestamp in
// the venue's local time.
func parseBookingTime(date, timeOfDay string) (time.Time, error) {
	combined := strings.TrimSpace(date) + " " + strings.TrimSpace(timeOfDay)
	var lastErr error
	for _, layout := range bookingTimeLayouts {
		t, err := time.ParseInLocation(layout, combined, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
