package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/barberclub/booking-api/internal/audit"
	"github.com/barberclub/booking-api/internal/cache"
	domain "github.com/barberclub/booking-api/internal/domain/booking"
	"github.com/barberclub/booking-api/internal/httperr"
	"github.com/barberclub/booking-api/internal/models"
	"github.com/barberclub/booking-api/internal/timezone"
)

// ======================================================
// INPUT / RESULT
// ======================================================

type RequestBookingInput struct {
	ClientID   uint
	BarberID   uint
	ServiceIDs []uint

	Date string // "2006-01-02"
	Time string // "15:04"
}

type Outcome string

const (
	OutcomeCreated Outcome = "created"
	OutcomeReused  Outcome = "reused"
)

type RequestBookingResult struct {
	Outcome Outcome
	Booking *models.Booking
}

// ======================================================
// USE CASE
// ======================================================

// RequestBooking é o controlador de admissão: revalida o pedido contra
// o estado vivo do livro e cria, reaproveita ou rejeita. A checagem
// read-check-write daqui é só rejeição antecipada — quem garante a
// unicidade sob concorrência é o índice parcial do banco, e a violação
// volta como slot_unavailable sem retry.
type RequestBooking struct {
	repo   domain.Repository
	cache  *cache.AvailabilityCache
	audit  *audit.Dispatcher
	policy domain.PremiumPolicy

	tz            string
	minAdvanceMin int
}

func NewRequestBooking(
	repo domain.Repository,
	availCache *cache.AvailabilityCache,
	auditDispatcher *audit.Dispatcher,
	policy domain.PremiumPolicy,
	tz string,
	minAdvanceMin int,
) *RequestBooking {
	return &RequestBooking{
		repo:          repo,
		cache:         availCache,
		audit:         auditDispatcher,
		policy:        policy,
		tz:            tz,
		minAdvanceMin: minAdvanceMin,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RequestBooking) Execute(
	ctx context.Context,
	in RequestBookingInput,
) (*RequestBookingResult, error) {

	// --------------------------------------------------
	// 1. Cliente precisa existir (sessão velha aponta
	//    para conta apagada)
	// --------------------------------------------------
	client, err := uc.repo.GetClientByID(ctx, in.ClientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("client_not_found")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 2. Assinatura: Premium inadimplente não agenda
	// --------------------------------------------------
	subModel, err := uc.repo.GetSubscriptionByClientID(ctx, client.ID)
	if err != nil {
		return nil, err
	}
	state := domain.SubscriptionFromModel(subModel)

	if state.Tier == domain.TierPremium && state.Status != domain.SubActive {
		return nil, httperr.ErrBusiness("subscription_inactive")
	}

	// --------------------------------------------------
	// 3. Instante do agendamento, composto uma única vez
	//    na zona da operação
	// --------------------------------------------------
	scheduledAt, err := timezone.ParseDateTime(uc.tz, in.Date, in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	now := timezone.NowIn(uc.tz)
	minAllowed := now.Add(time.Duration(uc.minAdvanceMin) * time.Minute)
	if scheduledAt.Before(minAllowed) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	// --------------------------------------------------
	// 4. Serviços pedidos (conjunto não vazio, do barbeiro)
	// --------------------------------------------------
	if len(in.ServiceIDs) == 0 {
		return nil, httperr.ErrBusiness("missing_services")
	}

	services, err := uc.repo.ListServicesByIDs(ctx, in.BarberID, in.ServiceIDs)
	if err != nil {
		return nil, err
	}
	if len(services) != len(in.ServiceIDs) {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// --------------------------------------------------
	// 5. O horário pedido precisa ser um slot real da grade
	// --------------------------------------------------
	cfg, err := uc.repo.GetScheduleConfig(ctx, in.BarberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("outside_working_hours")
		}
		return nil, err
	}

	offDays, err := uc.repo.ListOffDays(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	offered, err := domain.IsOfferedSlot(cfg, offDays, scheduledAt)
	if err != nil {
		return nil, err
	}
	if !offered {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	// --------------------------------------------------
	// 6. Colisão de slot / reaproveitamento idempotente
	// --------------------------------------------------
	existing, err := uc.repo.FindActiveBookingForSlot(ctx, in.BarberID, scheduledAt)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		// mesmo cliente, ainda pendente → edição dos serviços antes
		// de pagar, sem segunda linha
		if existing.ClientID == client.ID && existing.Status == string(domain.StatusPending) {
			if err := uc.repo.ReplaceBookingServices(ctx, existing, services); err != nil {
				return nil, err
			}

			uc.afterWrite(client.ID, existing, "booking_reused", in.Date)

			return &RequestBookingResult{
				Outcome: OutcomeReused,
				Booking: existing,
			}, nil
		}

		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	// --------------------------------------------------
	// 7. Restrições Premium (só para agendamento novo)
	// --------------------------------------------------
	if state.IsActivePremium() {
		if !uc.policy.CanBookOnDate(state, scheduledAt) {
			return nil, httperr.ErrBusiness("day_restricted")
		}

		from, to := uc.policy.VisitWindow(scheduledAt)
		visits, err := uc.repo.CountClientBookingsInRange(ctx, client.ID, from, to)
		if err != nil {
			return nil, err
		}
		if visits > 0 {
			return nil, httperr.ErrBusiness("visit_too_soon")
		}
	}

	// --------------------------------------------------
	// 8. Criação (status centralizado no domínio)
	// --------------------------------------------------
	status := domain.InitialStatus(uc.policy.IsBookingFastTracked(state))

	b := &models.Booking{
		Reference:   uuid.NewString(),
		ClientID:    client.ID,
		BarberID:    in.BarberID,
		ScheduledAt: scheduledAt,
		Services:    services,
		Status:      string(status),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		// perdeu a corrida pelo slot → índice único decidiu
		return nil, err
	}

	uc.afterWrite(client.ID, b, "booking_created", in.Date)

	return &RequestBookingResult{
		Outcome: OutcomeCreated,
		Booking: b,
	}, nil
}

func (uc *RequestBooking) afterWrite(
	clientID uint,
	b *models.Booking,
	action string,
	dateKey string,
) {
	uc.cache.Invalidate(context.Background(), b.BarberID, dateKey)

	uc.audit.Dispatch(audit.Event{
		ActorID:   &clientID,
		ActorKind: "client",
		Action:    action,
		Entity:    "booking",
		EntityID:  &b.ID,
		Metadata: map[string]any{
			"barber_id":    b.BarberID,
			"scheduled_at": b.ScheduledAt,
			"status":       b.Status,
		},
	})
}
