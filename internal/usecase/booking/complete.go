package booking

import (
	"context"

	"github.com/barberclub/booking-api/internal/audit"
	domain "github.com/barberclub/booking-api/internal/domain/booking"
	"github.com/barberclub/booking-api/internal/httperr"
	"github.com/barberclub/booking-api/internal/models"
	"github.com/barberclub/booking-api/internal/timezone"
)

type CompleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewCompleteBooking(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	tz string,
) *CompleteBooking {
	return &CompleteBooking{
		repo:  repo,
		audit: auditDispatcher,
		tz:    tz,
	}
}

func (uc *CompleteBooking) Execute(
	ctx context.Context,
	bookingID uint,
	barberID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingForBarber(ctx, bookingID, barberID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Complete(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   &barberID,
		ActorKind: "barber",
		Action:    "booking_completed",
		Entity:    "booking",
		EntityID:  &b.ID,
	})

	return b, nil
}
