package booking

import (
	"context"

	"github.com/barberclub/booking-api/internal/audit"
	"github.com/barberclub/booking-api/internal/cache"
	domain "github.com/barberclub/booking-api/internal/domain/booking"
	"github.com/barberclub/booking-api/internal/httperr"
	"github.com/barberclub/booking-api/internal/models"
	"github.com/barberclub/booking-api/internal/timezone"
)

// CancelBooking: transição explícita para cancelled. O slot volta a
// ficar livre imediatamente (o índice parcial ignora canceladas).
type CancelBooking struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
	audit *audit.Dispatcher
	tz    string
}

func NewCancelBooking(
	repo domain.Repository,
	availCache *cache.AvailabilityCache,
	auditDispatcher *audit.Dispatcher,
	tz string,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		cache: availCache,
		audit: auditDispatcher,
		tz:    tz,
	}
}

// ExecuteForClient cancela um agendamento do próprio cliente.
func (uc *CancelBooking) ExecuteForClient(
	ctx context.Context,
	bookingID uint,
	clientID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingForClient(ctx, bookingID, clientID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	return uc.cancel(ctx, b, &clientID, "client")
}

// ExecuteForBarber cancela um agendamento da agenda do barbeiro.
func (uc *CancelBooking) ExecuteForBarber(
	ctx context.Context,
	bookingID uint,
	barberID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingForBarber(ctx, bookingID, barberID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	return uc.cancel(ctx, b, &barberID, "barber")
}

func (uc *CancelBooking) cancel(
	ctx context.Context,
	b *models.Booking,
	actorID *uint,
	actorKind string,
) (*models.Booking, error) {

	now := timezone.NowIn(uc.tz)
	if err := domain.Cancel(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	dateKey := b.ScheduledAt.In(timezone.Location(uc.tz)).Format("2006-01-02")
	uc.cache.Invalidate(ctx, b.BarberID, dateKey)

	uc.audit.Dispatch(audit.Event{
		ActorID:   actorID,
		ActorKind: actorKind,
		Action:    "booking_cancelled",
		Entity:    "booking",
		EntityID:  &b.ID,
	})

	return b, nil
}
