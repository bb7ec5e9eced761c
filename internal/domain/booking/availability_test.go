package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/barberclub/booking-api/internal/httperr"
	"github.com/barberclub/booking-api/internal/models"
)

var testLoc, _ = time.LoadLocation("America/Sao_Paulo")

func midnight(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, testLoc)
}

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, testLoc)
}

func baseConfig() *models.ScheduleConfig {
	return &models.ScheduleConfig{
		BarberID:        1,
		WorkStart:       "09:00",
		WorkEnd:         "12:00",
		SlotIntervalMin: 45,
	}
}

// ======================================================
// ValidateScheduleConfig
// ======================================================

func TestValidateScheduleConfig(t *testing.T) {
	assert.NoError(t, ValidateScheduleConfig(baseConfig()))

	cfg := baseConfig()
	cfg.SlotIntervalMin = 0
	assert.True(t, httperr.IsBusiness(ValidateScheduleConfig(cfg), "invalid_configuration"))

	cfg = baseConfig()
	cfg.WorkStart = "9h00"
	assert.True(t, httperr.IsBusiness(ValidateScheduleConfig(cfg), "invalid_configuration"))

	cfg = baseConfig()
	cfg.WorkStart = "18:00"
	cfg.WorkEnd = "09:00"
	assert.True(t, httperr.IsBusiness(ValidateScheduleConfig(cfg), "invalid_configuration"))

	cfg = baseConfig()
	start := midnight(2026, time.September, 10)
	end := midnight(2026, time.September, 1)
	cfg.WorkStartDate = &start
	cfg.WorkEndDate = &end
	assert.True(t, httperr.IsBusiness(ValidateScheduleConfig(cfg), "invalid_configuration"))
}

// ======================================================
// ComputeAvailableSlots
// ======================================================

func TestComputeAvailableSlots_GradeCompleta(t *testing.T) {
	date := midnight(2026, time.September, 7)
	now := at(2026, time.September, 1, 10, 0) // outro dia, sem filtro de passado

	slots, err := ComputeAvailableSlots(baseConfig(), nil, date, nil, now)
	assert.NoError(t, err)

	// 09:00–12:00 com 45min: 09:00, 09:45, 10:30 — 11:15 não cabe inteiro
	assert.Len(t, slots, 3)
	assert.Equal(t, at(2026, time.September, 7, 9, 0), slots[0].Start)
	assert.Equal(t, at(2026, time.September, 7, 9, 45), slots[1].Start)
	assert.Equal(t, at(2026, time.September, 7, 10, 30), slots[2].Start)
	for _, s := range slots {
		assert.False(t, s.Occupied)
	}
}

func TestComputeAvailableSlots_UltimoSlotCabeExato(t *testing.T) {
	cfg := baseConfig()
	cfg.WorkStart = "09:00"
	cfg.WorkEnd = "10:30"
	cfg.SlotIntervalMin = 45

	date := midnight(2026, time.September, 7)
	now := at(2026, time.September, 1, 10, 0)

	slots, err := ComputeAvailableSlots(cfg, nil, date, nil, now)
	assert.NoError(t, err)

	// 09:45 + 45min = 10:30, exatamente o fim → entra
	assert.Len(t, slots, 2)
	assert.Equal(t, at(2026, time.September, 7, 9, 45), slots[1].Start)
}

func TestComputeAvailableSlots_MarcaOcupados(t *testing.T) {
	date := midnight(2026, time.September, 7)
	now := at(2026, time.September, 1, 10, 0)

	existing := []models.Booking{
		{BarberID: 1, ScheduledAt: at(2026, time.September, 7, 9, 45), Status: "confirmed"},
	}

	slots, err := ComputeAvailableSlots(baseConfig(), nil, date, existing, now)
	assert.NoError(t, err)

	assert.Len(t, slots, 3)
	assert.False(t, slots[0].Occupied)
	assert.True(t, slots[1].Occupied)
	assert.False(t, slots[2].Occupied)
}

func TestComputeAvailableSlots_FiltraPassadoSomenteHoje(t *testing.T) {
	date := midnight(2026, time.September, 7)

	// hoje às 10:00 → 09:00 e 09:45 já passaram, 10:30 sobra
	now := at(2026, time.September, 7, 10, 0)

	slots, err := ComputeAvailableSlots(baseConfig(), nil, date, nil, now)
	assert.NoError(t, err)
	assert.Len(t, slots, 1)
	assert.Equal(t, at(2026, time.September, 7, 10, 30), slots[0].Start)

	// mesmo relógio, dia seguinte → grade cheia
	slots, err = ComputeAvailableSlots(baseConfig(), nil, midnight(2026, time.September, 8), nil, now)
	assert.NoError(t, err)
	assert.Len(t, slots, 3)
}

func TestComputeAvailableSlots_SlotExatamenteAgora(t *testing.T) {
	date := midnight(2026, time.September, 7)
	now := at(2026, time.September, 7, 9, 45)

	slots, err := ComputeAvailableSlots(baseConfig(), nil, date, nil, now)
	assert.NoError(t, err)

	// 09:45 == now não é futuro, cai fora
	assert.Len(t, slots, 1)
	assert.Equal(t, at(2026, time.September, 7, 10, 30), slots[0].Start)
}

func TestComputeAvailableSlots_Folga(t *testing.T) {
	date := midnight(2026, time.September, 7)
	now := at(2026, time.September, 1, 10, 0)

	offDays := map[string]struct{}{"2026-09-07": {}}

	slots, err := ComputeAvailableSlots(baseConfig(), offDays, date, nil, now)
	assert.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeAvailableSlots_ForaDoVinculo(t *testing.T) {
	cfg := baseConfig()
	start := midnight(2026, time.September, 10)
	cfg.WorkStartDate = &start

	now := at(2026, time.September, 1, 10, 0)

	slots, err := ComputeAvailableSlots(cfg, nil, midnight(2026, time.September, 7), nil, now)
	assert.NoError(t, err)
	assert.Empty(t, slots)

	// primeiro dia do vínculo já oferta
	slots, err = ComputeAvailableSlots(cfg, nil, midnight(2026, time.September, 10), nil, now)
	assert.NoError(t, err)
	assert.Len(t, slots, 3)
}

func TestComputeAvailableSlots_ExpedienteVazio(t *testing.T) {
	cfg := baseConfig()
	cfg.WorkStart = "09:00"
	cfg.WorkEnd = "09:00"

	slots, err := ComputeAvailableSlots(cfg, nil, midnight(2026, time.September, 7), nil, at(2026, time.September, 1, 10, 0))
	assert.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeAvailableSlots_Deterministico(t *testing.T) {
	date := midnight(2026, time.September, 7)
	now := at(2026, time.September, 1, 10, 0)
	existing := []models.Booking{
		{BarberID: 1, ScheduledAt: at(2026, time.September, 7, 10, 30), Status: "pending"},
	}

	first, err := ComputeAvailableSlots(baseConfig(), nil, date, existing, now)
	assert.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := ComputeAvailableSlots(baseConfig(), nil, date, existing, now)
		assert.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// ======================================================
// IsOfferedSlot
// ======================================================

func TestIsOfferedSlot(t *testing.T) {
	cfg := baseConfig()

	ok, err := IsOfferedSlot(cfg, nil, at(2026, time.September, 7, 9, 45))
	assert.NoError(t, err)
	assert.True(t, ok)

	// desalinhado da grade
	ok, err = IsOfferedSlot(cfg, nil, at(2026, time.September, 7, 10, 0))
	assert.NoError(t, err)
	assert.False(t, ok)

	// antes do expediente
	ok, err = IsOfferedSlot(cfg, nil, at(2026, time.September, 7, 8, 15))
	assert.NoError(t, err)
	assert.False(t, ok)

	// alinhado mas não cabe até o fim
	ok, err = IsOfferedSlot(cfg, nil, at(2026, time.September, 7, 11, 15))
	assert.NoError(t, err)
	assert.False(t, ok)

	// folga derruba o dia inteiro
	offDays := map[string]struct{}{"2026-09-07": {}}
	ok, err = IsOfferedSlot(cfg, offDays, at(2026, time.September, 7, 9, 45))
	assert.NoError(t, err)
	assert.False(t, ok)
}
