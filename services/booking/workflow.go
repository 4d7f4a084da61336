package booking

import (
	"context"

	"go.uber.org/zap"

	"scenicinn/models"
)

// SuccessMessage is returned to the caller once dispatch completes.
const SuccessMessage = "Booking submitted successfully! You will receive a confirmation email shortly."

// Renderer produces the confirmation document for a validated booking.
type Renderer interface {
	Render(req models.BookingRequest, selections []models.MenuSelection) (*models.ConfirmationDocument, error)
}

// Dispatcher delivers a rendered confirmation to the customer and the venue.
// A single attempt per booking; retrying is the caller's responsibility.
type Dispatcher interface {
	Dispatch(ctx context.Context, customerEmail string, doc *models.ConfirmationDocument, req models.BookingRequest) error
}

// Workflow runs the booking submission pipeline: validate, render, dispatch.
// The steps are strictly sequential, each is attempted once, and the first
// failure is terminal. Nothing is rolled back on failure because no step
// persists state.
type Workflow struct {
	Validator  *Validator
	Renderer   Renderer
	Dispatcher Dispatcher
	Logger     *zap.Logger
}

func NewWorkflow(v *Validator, r Renderer, d Dispatcher, logger *zap.Logger) *Workflow {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Workflow{
		Validator:  v,
		Renderer:   r,
		Dispatcher: d,
		Logger:     logger,
	}
}

// Submit processes one booking submission end to end and returns the
// confirmation message for the caller. The dispatcher is never invoked for a
// booking that fails validation or rendering.
func (w *Workflow) Submit(ctx context.Context, sub models.BookingSubmission) (string, error) {
	logger := w.Logger.With(
		zap.String("bookingDate", sub.BookingData.Date),
		zap.String("bookingTime", sub.BookingData.Time),
	)

	if err := w.Validator.Validate(sub.BookingData); err != nil {
		logger.Warn("booking rejected by validation", zap.Error(err))
		return "", err
	}
	logger.Debug("booking validated")

	doc, err := w.Renderer.Render(sub.BookingData, sub.MenuSelections)
	if err != nil {
		logger.Error("failed to render booking confirmation", zap.Error(err))
		return "", err
	}
	logger.Debug("booking confirmation rendered", zap.Int("people", len(doc.People)))

	customer := sub.ContactEmail
	if customer == "" {
		customer = sub.BookingData.ContactEmail
	}
	if err := w.Dispatcher.Dispatch(ctx, customer, doc, sub.BookingData); err != nil {
		logger.Error("failed to dispatch booking confirmation", zap.Error(err))
		return "", err
	}

	logger.Info("booking completed", zap.Int("partySize", sub.BookingData.PartySize))
	return SuccessMessage, nil
}
