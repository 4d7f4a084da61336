package models

import "fmt"

// ConfirmationDocument is the render-only representation of a booking
// confirmation: a header, a booking-details block and one block per attending
// person. It is built from a BookingRequest plus its menu selections, handed
// straight to the dispatcher and never stored.
type ConfirmationDocument struct {
	VenueName string
	Title     string
	Date      string
	Details   []DetailLine
	People    []PersonSelections
}

// DetailLine is one labelled row of the booking-details block.
type DetailLine struct {
	Label string
	Value string
}

// PersonSelections lists one person's course choices in submission order.
type PersonSelections struct {
	Name    string
	Choices []CourseLine
}

// CourseLine is one rendered course choice. Price carries the amount as
// submitted, without a currency symbol.
type CourseLine struct {
	Course string
	Item   string
	Price  string
}

func (l CourseLine) String() string {
	return fmt.Sprintf("%s: %s - £%s", l.Course, l.Item, l.Price)
}
