package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"scenicinn/models"
)

func fixedValidator(now time.Time) *Validator {
	return &Validator{Now: func() time.Time { return now }}
}

func requestAt(target time.Time) models.BookingRequest {
	return models.BookingRequest{
		Date:         target.Format("2006-01-02"),
		Time:         target.Format("15:04"),
		PartySize:    4,
		ContactName:  "Jane",
		ContactEmail: "jane@example.com",
	}
}

func Test_Validator_LeadTimeBoundary(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	v := fixedValidator(now)

	tests := []struct {
		name     string
		offset   time.Duration
		wantCode string
	}{
		{name: "exactly_24_hours_passes", offset: 24 * time.Hour, wantCode: ""},
		{name: "one_minute_past_24_hours_passes", offset: 24*time.Hour + time.Minute, wantCode: ""},
		{name: "two_days_ahead_passes", offset: 48 * time.Hour, wantCode: ""},
		{name: "one_minute_short_fails", offset: 24*time.Hour - time.Minute, wantCode: CodeLeadTimeViolation},
		{name: "two_hours_ahead_fails", offset: 2 * time.Hour, wantCode: CodeLeadTimeViolation},
		{name: "in_the_past_fails", offset: -3 * time.Hour, wantCode: CodeLeadTimeViolation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(requestAt(now.Add(tc.offset)))
			if tc.wantCode == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.True(t, HasCode(err, tc.wantCode))
			}
		})
	}
}

func Test_Validator_MalformedRequests(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	v := fixedValidator(now)
	valid := requestAt(now.Add(48 * time.Hour))

	tests := []struct {
		name   string
		mutate func(r *models.BookingRequest)
	}{
		{name: "missing_date", mutate: func(r *models.BookingRequest) { r.Date = "" }},
		{name: "missing_time", mutate: func(r *models.BookingRequest) { r.Time = "" }},
		{name: "missing_contact_email", mutate: func(r *models.BookingRequest) { r.ContactEmail = "" }},
		{name: "zero_party_size", mutate: func(r *models.BookingRequest) { r.PartySize = 0 }},
		{name: "negative_party_size", mutate: func(r *models.BookingRequest) { r.PartySize = -2 }},
		{name: "unparsable_date", mutate: func(r *models.BookingRequest) { r.Date = "next sunday" }},
		{name: "unparsable_time", mutate: func(r *models.BookingRequest) { r.Time = "evening" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			err := v.Validate(req)
			assert.Error(t, err)
			// Malformed input is distinct from a lead-time rejection so
			// callers can render different user messages.
			assert.True(t, HasCode(err, CodeMalformedRequest))
			assert.False(t, HasCode(err, CodeLeadTimeViolation))
		})
	}
}

func Test_Validator_AcceptsSecondsInTime(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	v := fixedValidator(now)

	req := requestAt(now.Add(48 * time.Hour))
	req.Time = "18:00:30"

	assert.NoError(t, v.Validate(req))
}

func Test_Validator_HasNoSideEffects(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	v := fixedValidator(now)

	req := requestAt(now.Add(2 * time.Hour))
	before := req

	_ = v.Validate(req)
	assert.Equal(t, before, req)
}
