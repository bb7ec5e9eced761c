package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/barberclub/booking-api/internal/audit"
	domain "github.com/barberclub/booking-api/internal/domain/booking"
	"github.com/barberclub/booking-api/internal/httperr"
	"github.com/barberclub/booking-api/internal/models"
	"github.com/barberclub/booking-api/internal/timezone"
)

// ConfirmBooking é chamado pelo colaborador de pagamento quando o
// pagamento externo aprova: pending → confirmed. Falha de pagamento
// não passa por aqui — o agendamento segue pendente.
type ConfirmBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewConfirmBooking(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	tz string,
) *ConfirmBooking {
	return &ConfirmBooking{
		repo:  repo,
		audit: auditDispatcher,
		tz:    tz,
	}
}

func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	reference string,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return nil, err
	}

	// webhook reentrega: confirmar duas vezes não é erro
	if b.Status == string(domain.StatusConfirmed) {
		return b, nil
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Confirm(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorKind: "system",
		Action:    "booking_confirmed",
		Entity:    "booking",
		EntityID:  &b.ID,
	})

	return b, nil
}
