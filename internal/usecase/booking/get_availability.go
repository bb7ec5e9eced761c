package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/barberclub/booking-api/internal/cache"
	domain "github.com/barberclub/booking-api/internal/domain/booking"
	"github.com/barberclub/booking-api/internal/metrics"
	"github.com/barberclub/booking-api/internal/timezone"
)

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
	tz    string
}

func NewGetAvailability(
	repo domain.Repository,
	availCache *cache.AvailabilityCache,
	tz string,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		cache: availCache,
		tz:    tz,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]domain.SlotCandidate, error) {

	dateKey := date.Format("2006-01-02")

	if slots, ok := uc.cache.Get(ctx, barberID, dateKey); ok {
		metrics.IncCache("hit")
		return slots, nil
	}
	metrics.IncCache("miss")

	cfg, err := uc.repo.GetScheduleConfig(ctx, barberID)
	if err != nil {
		// barbeiro sem expediente configurado não oferta horário
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []domain.SlotCandidate{}, nil
		}
		return nil, err
	}

	offDays, err := uc.repo.ListOffDays(ctx, barberID)
	if err != nil {
		return nil, err
	}

	dayStart, dayEnd := timezone.DayBounds(uc.tz, date)

	existing, err := uc.repo.ListActiveBookingsForDay(
		ctx,
		barberID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.tz)

	slots, err := domain.ComputeAvailableSlots(cfg, offDays, dayStart, existing, now)
	if err != nil {
		return nil, err
	}

	uc.cache.Set(ctx, barberID, dateKey, slots)

	return slots, nil
}
