package booking

import (
	"context"
	"time"

	domain "github.com/barberclub/booking-api/internal/domain/booking"
	"github.com/barberclub/booking-api/internal/dto"
	"github.com/barberclub/booking-api/internal/timezone"
)

type ListAgendaByMonth struct {
	repo domain.Repository
	tz   string
}

func NewListAgendaByMonth(repo domain.Repository, tz string) *ListAgendaByMonth {
	return &ListAgendaByMonth{
		repo: repo,
		tz:   tz,
	}
}

func (uc *ListAgendaByMonth) Execute(
	ctx context.Context,
	barberID uint,
	year int,
	month int,
) ([]dto.BookingListDTO, error) {

	loc := timezone.Location(uc.tz)

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	bookings, err := uc.repo.ListBookingsForPeriod(
		ctx,
		barberID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	return toListDTOs(bookings), nil
}
