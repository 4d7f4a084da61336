package render

import (
	"fmt"
	"strconv"

	"scenicinn/models"
	"scenicinn/services/booking"
)

// ConfirmationRenderer builds the structured confirmation document for a
// validated booking. It is a pure data transform: given the same request and
// selections it always produces the same document, preserving person order
// and each person's course order exactly as submitted.
type ConfirmationRenderer struct {
	VenueName string
}

func NewConfirmationRenderer(venueName string) *ConfirmationRenderer {
	return &ConfirmationRenderer{VenueName: venueName}
}

// Render assembles the confirmation document. It fails with CodeRenderError
// only when a selection is missing its course, item or price; otherwise-valid
// input never fails.
func (r *ConfirmationRenderer) Render(req models.BookingRequest, selections []models.MenuSelection) (*models.ConfirmationDocument, error) {
	special := req.SpecialRequests
	if special == "" {
		special = "None"
	}

	doc := &models.ConfirmationDocument{
		VenueName: r.VenueName,
		Title:     "Group Booking Confirmation",
		Date:      req.Date,
		Details: []models.DetailLine{
			{Label: "Date", Value: req.Date},
			{Label: "Time", Value: req.Time},
			{Label: "Party Size", Value: strconv.Itoa(req.PartySize)},
			{Label: "Contact Name", Value: req.ContactName},
			{Label: "Contact Email", Value: req.ContactEmail},
			{Label: "Special Requests", Value: special},
		},
	}

	for i, person := range selections {
		block := models.PersonSelections{Name: person.Name}
		for j, sel := range person.Selections {
			if sel.Course == "" || sel.Item == "" || sel.Price == "" {
				return nil, booking.NewRenderError(fmt.Sprintf(
					"selection %d for person %d is missing course, item or price", j+1, i+1))
			}
			block.Choices = append(block.Choices, models.CourseLine{
				Course: sel.Course,
				Item:   sel.Item,
				Price:  sel.Price.String(),
			})
		}
		doc.People = append(doc.People, block)
	}

	return doc, nil
}
