package booking

import (
	"context"
	"time"

	domain "github.com/barberclub/booking-api/internal/domain/booking"
	"github.com/barberclub/booking-api/internal/dto"
	"github.com/barberclub/booking-api/internal/models"
	"github.com/barberclub/booking-api/internal/timezone"
)

type ListAgendaByDate struct {
	repo domain.Repository
	tz   string
}

func NewListAgendaByDate(repo domain.Repository, tz string) *ListAgendaByDate {
	return &ListAgendaByDate{
		repo: repo,
		tz:   tz,
	}
}

func (uc *ListAgendaByDate) Execute(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]dto.BookingListDTO, error) {

	start, end := timezone.DayBounds(uc.tz, date)

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

func toListDTOs(bookings []models.Booking) []dto.BookingListDTO {
	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		names := make([]string, 0, len(b.Services))
		for _, s := range b.Services {
			names = append(names, s.Name)
		}

		out = append(out, dto.BookingListDTO{
			ID:          b.ID,
			Reference:   b.Reference,
			ScheduledAt: b.ScheduledAt,
			Status:      b.Status,
			ClientName:  b.Client.Name,
			Services:    names,
		})
	}
	return out
}
