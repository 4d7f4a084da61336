package render

import (
	"fmt"
	"html"
	"strings"

	"scenicinn/models"
)

// HTMLBody renders the full confirmation document as the inline email body.
func HTMLBody(doc *models.ConfirmationDocument) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<h2>Thank you for your group booking at %s!</h2>\n", html.EscapeString(doc.VenueName))

	b.WriteString("<p><strong>Booking Details:</strong></p>\n<ul>\n")
	for _, d := range doc.Details {
		fmt.Fprintf(&b, "<li>%s: %s</li>\n", html.EscapeString(d.Label), html.EscapeString(d.Value))
	}
	b.WriteString("</ul>\n")

	b.WriteString("<h3>Menu Selections:</h3>\n")
	for i, person := range doc.People {
		b.WriteString("<div style=\"border: 1px solid #ddd; margin: 10px 0; padding: 15px;\">\n")
		fmt.Fprintf(&b, "<h4>Person %d: %s</h4>\n", i+1, html.EscapeString(person.Name))
		for _, choice := range person.Choices {
			fmt.Fprintf(&b, "<p><strong>%s:</strong> %s - £%s</p>\n",
				html.EscapeString(choice.Course), html.EscapeString(choice.Item), html.EscapeString(choice.Price))
		}
		b.WriteString("</div>\n")
	}

	b.WriteString("<p>We look forward to welcoming you!</p>\n")
	fmt.Fprintf(&b, "<p>Best regards,<br>%s Team</p>\n", html.EscapeString(doc.VenueName))

	return b.String()
}

// AttachmentBody is the short email body used when the full document travels
// as a PDF attachment.
func AttachmentBody(venueName string, req models.BookingRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<h2>Thank you for your group booking at %s!</h2>\n", html.EscapeString(venueName))
	fmt.Fprintf(&b, "<p>Your booking for %d people on %s at %s has been confirmed.</p>\n",
		req.PartySize, html.EscapeString(req.Date), html.EscapeString(req.Time))
	b.WriteString("<p>Please find your detailed booking confirmation attached.</p>\n")
	b.WriteString("<p>We look forward to welcoming you!</p>\n")
	fmt.Fprintf(&b, "<p>Best regards,<br>%s Team</p>\n", html.EscapeString(venueName))

	return b.String()
}
