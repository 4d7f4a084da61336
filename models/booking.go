package models

import "encoding/json"

// BookingRequest holds the details of a requested group booking. It is created
// fresh per HTTP request and discarded once the request completes; nothing in
// the workflow persists it.
type BookingRequest struct {
	Date            string `json:"date"`                      // Requested date (YYYY-MM-DD)
	Time            string `json:"time"`                      // Requested time of day (HH:MM)
	PartySize       int    `json:"partySize"`                 // Number of guests
	ContactName     string `json:"contactName"`               // Who the booking is for
	ContactEmail    string `json:"contactEmail"`              // Customer address for the confirmation
	SpecialRequests string `json:"specialRequests,omitempty"` // Free text, may be empty
}

// CourseSelection is one chosen dish for one course. Price is kept exactly as
// submitted so the confirmation reproduces the amount verbatim.
type CourseSelection struct {
	Course string      `json:"course"`
	Item   string      `json:"item"`
	Price  json.Number `json:"price"`
}

// MenuSelection is the ordered list of course choices for one attending
// person. Order is preserved all the way to the rendered confirmation.
type MenuSelection struct {
	Name       string            `json:"name"`
	Selections []CourseSelection `json:"selections"`
}

// BookingSubmission is the full payload accepted by the booking endpoint.
type BookingSubmission struct {
	BookingData    BookingRequest  `json:"bookingData"`
	MenuSelections []MenuSelection `json:"menuSelections"`
	ContactEmail   string          `json:"contactEmail"`
}
