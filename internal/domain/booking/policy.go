package booking

import (
	"time"

	"github.com/barberclub/booking-api/internal/models"
)

// ===============================
// Subscription Tiers
// ===============================

type Tier string

const (
	TierStart   Tier = "start"
	TierPremium Tier = "premium"
)

type SubStatus string

const (
	SubActive    SubStatus = "active"
	SubPastDue   SubStatus = "past_due"
	SubCancelled SubStatus = "cancelled"
	SubInactive  SubStatus = "inactive"
)

// SubscriptionState é a visão read-only que o núcleo tem da assinatura
type SubscriptionState struct {
	Tier   Tier
	Status SubStatus
}

// SubscriptionFromModel resolve o estado a partir da linha persistida.
// Cliente sem assinatura é Start (paga por visita).
func SubscriptionFromModel(sub *models.Subscription) SubscriptionState {
	if sub == nil {
		return SubscriptionState{Tier: TierStart, Status: SubInactive}
	}
	return SubscriptionState{
		Tier:   Tier(sub.Tier),
		Status: SubStatus(sub.Status),
	}
}

func (s SubscriptionState) IsActivePremium() bool {
	return s.Tier == TierPremium && s.Status == SubActive
}

// ===============================
// Premium Policy
// ===============================

// PremiumPolicy concentra as restrições do plano Premium: dias da
// semana permitidos e intervalo mínimo entre visitas. Validação dura,
// no servidor — nunca só no front.
type PremiumPolicy struct {
	AllowedWeekdays   []time.Weekday
	VisitIntervalDays int
}

// CanBookOnDate: Start agenda qualquer dia; Premium ativo só nos dias
// permitidos pela política.
func (p PremiumPolicy) CanBookOnDate(state SubscriptionState, date time.Time) bool {
	if !state.IsActivePremium() {
		return true
	}

	for _, wd := range p.AllowedWeekdays {
		if date.Weekday() == wd {
			return true
		}
	}
	return false
}

// IsBookingFastTracked: Premium ativo consome a mensalidade e já entra
// confirmado; todo o resto aguarda pagamento.
func (p PremiumPolicy) IsBookingFastTracked(state SubscriptionState) bool {
	return state.IsActivePremium()
}

// VisitWindow devolve o intervalo [from, to] dentro do qual outra
// visita do mesmo cliente bloqueia um novo agendamento Premium.
func (p PremiumPolicy) VisitWindow(at time.Time) (time.Time, time.Time) {
	d := time.Duration(p.VisitIntervalDays) * 24 * time.Hour
	return at.Add(-d), at.Add(d)
}
