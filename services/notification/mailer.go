package notification

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"scenicinn/models"
	"scenicinn/services/booking"
	"scenicinn/services/render"
)

// MailDispatcher delivers a rendered confirmation to the customer and the
// venue in a single outbound message. One attempt per booking; any transport
// fault surfaces as CodeDispatchError and is never retried here.
type MailDispatcher struct {
	sender Sender
	cfg    Config
	logger *zap.Logger
}

func NewMailDispatcher(cfg Config, sender Sender, logger *zap.Logger) *MailDispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MailDispatcher{
		sender: sender,
		cfg:    cfg,
		logger: logger,
	}
}

// Dispatch sends the confirmation. Both recipients receive the same content;
// the delivery strategy decides whether that content is the inline HTML body
// or a short body plus the PDF attachment.
func (d *MailDispatcher) Dispatch(ctx context.Context, customerEmail string, doc *models.ConfirmationDocument, req models.BookingRequest) error {
	if err := ctx.Err(); err != nil {
		return booking.NewDispatchError(err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", d.cfg.From)
	m.SetHeader("To", customerEmail, d.cfg.VenueEmail)
	m.SetHeader("Subject", fmt.Sprintf("Group Booking Confirmation - %s - %s", d.cfg.VenueName, req.Date))

	switch d.cfg.Strategy {
	case StrategyAttachment:
		pdfBytes, err := render.ConfirmationPDF(doc)
		if err != nil {
			return booking.NewDispatchError(fmt.Errorf("rendering confirmation pdf: %w", err))
		}
		m.SetBody("text/html", render.AttachmentBody(d.cfg.VenueName, req))
		m.Attach(
			fmt.Sprintf("booking-confirmation-%s.pdf", req.Date),
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(pdfBytes)
				return err
			}),
		)
	default:
		m.SetBody("text/html", render.HTMLBody(doc))
	}

	if err := d.sender.Send(m); err != nil {
		return booking.NewDispatchError(err)
	}

	d.logger.Info("booking confirmation sent",
		zap.String("bookingDate", req.Date),
		zap.String("strategy", d.cfg.Strategy),
	)
	return nil
}
