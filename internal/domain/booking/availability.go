package booking

import (
	"time"

	"github.com/barberclub/booking-api/internal/httperr"
	"github.com/barberclub/booking-api/internal/models"
)

const dayKeyLayout = "2006-01-02"

type SlotCandidate struct {
	Start    time.Time `json:"start"`
	Occupied bool      `json:"occupied"`
}

// ValidateScheduleConfig valida os invariantes da configuração.
// Erro aqui é do barbeiro/admin editando o expediente, nunca do cliente.
func ValidateScheduleConfig(cfg *models.ScheduleConfig) error {
	if cfg.SlotIntervalMin <= 0 {
		return httperr.ErrBusiness("invalid_configuration")
	}

	start, err := time.Parse("15:04", cfg.WorkStart)
	if err != nil {
		return httperr.ErrBusiness("invalid_configuration")
	}
	end, err := time.Parse("15:04", cfg.WorkEnd)
	if err != nil {
		return httperr.ErrBusiness("invalid_configuration")
	}

	if end.Before(start) {
		return httperr.ErrBusiness("invalid_configuration")
	}

	if cfg.WorkStartDate != nil && cfg.WorkEndDate != nil &&
		cfg.WorkEndDate.Before(*cfg.WorkStartDate) {
		return httperr.ErrBusiness("invalid_configuration")
	}

	return nil
}

// ComputeAvailableSlots gera a grade de horários de um barbeiro para um dia.
//
// Função pura: mesma entrada, mesma saída, sem efeito colateral — o que
// permite cachear o resultado por (barbeiro, dia).
//
//   - date deve ser a meia-noite do dia alvo na zona da operação
//   - existing são os agendamentos NÃO cancelados do barbeiro naquele dia
//   - now filtra horários já passados quando date é hoje
func ComputeAvailableSlots(
	cfg *models.ScheduleConfig,
	offDays map[string]struct{},
	date time.Time,
	existing []models.Booking,
	now time.Time,
) ([]SlotCandidate, error) {

	if err := ValidateScheduleConfig(cfg); err != nil {
		return nil, err
	}

	if !withinEmployment(cfg, date) {
		return []SlotCandidate{}, nil
	}

	if _, off := offDays[date.Format(dayKeyLayout)]; off {
		return []SlotCandidate{}, nil
	}

	loc := date.Location()

	parseHM := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(
			date.Year(), date.Month(), date.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	dayStart := parseHM(cfg.WorkStart)
	dayEnd := parseHM(cfg.WorkEnd)

	interval := time.Duration(cfg.SlotIntervalMin) * time.Minute
	sameDay := sameCivilDay(date, now.In(loc))

	slots := []SlotCandidate{}

	// o último slot ainda precisa caber inteiro até o fim do expediente
	for cur := dayStart; !cur.Add(interval).After(dayEnd); cur = cur.Add(interval) {

		// date == hoje → descarta horários que já passaram
		if sameDay && !cur.After(now) {
			continue
		}

		occupied := false
		for _, b := range existing {
			if b.ScheduledAt.Equal(cur) {
				occupied = true
				break
			}
		}

		slots = append(slots, SlotCandidate{Start: cur, Occupied: occupied})
	}

	return slots, nil
}

// IsOfferedSlot revalida, na admissão, se o instante pedido é um slot
// legítimo da grade do barbeiro (alinhado ao intervalo, dentro do
// expediente, fora de folgas e do período de vínculo).
func IsOfferedSlot(
	cfg *models.ScheduleConfig,
	offDays map[string]struct{},
	at time.Time,
) (bool, error) {

	if err := ValidateScheduleConfig(cfg); err != nil {
		return false, err
	}

	if !withinEmployment(cfg, at) {
		return false, nil
	}

	if _, off := offDays[at.Format(dayKeyLayout)]; off {
		return false, nil
	}

	loc := at.Location()

	parseHM := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(
			at.Year(), at.Month(), at.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	dayStart := parseHM(cfg.WorkStart)
	dayEnd := parseHM(cfg.WorkEnd)
	interval := time.Duration(cfg.SlotIntervalMin) * time.Minute

	if at.Before(dayStart) || at.Add(interval).After(dayEnd) {
		return false, nil
	}

	return at.Sub(dayStart)%interval == 0, nil
}

func withinEmployment(cfg *models.ScheduleConfig, date time.Time) bool {
	key := date.Format(dayKeyLayout)

	if cfg.WorkStartDate != nil && key < cfg.WorkStartDate.Format(dayKeyLayout) {
		return false
	}
	if cfg.WorkEndDate != nil && key > cfg.WorkEndDate.Format(dayKeyLayout) {
		return false
	}
	return true
}

func sameCivilDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
