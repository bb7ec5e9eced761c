package booking

import (
	"context"
	"time"

	"github.com/barberclub/booking-api/internal/models"
)

type Repository interface {
	// -------- Client / Subscription --------
	GetClientByID(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	GetSubscriptionByClientID(
		ctx context.Context,
		clientID uint,
	) (*models.Subscription, error)

	// -------- Schedule --------
	GetScheduleConfig(
		ctx context.Context,
		barberID uint,
	) (*models.ScheduleConfig, error)

	ListOffDays(
		ctx context.Context,
		barberID uint,
	) (map[string]struct{}, error)

	// -------- Services --------
	ListServicesByIDs(
		ctx context.Context,
		barberID uint,
		ids []uint,
	) ([]models.BarberService, error)

	// -------- Booking ledger (admission) --------
	FindActiveBookingForSlot(
		ctx context.Context,
		barberID uint,
		at time.Time,
	) (*models.Booking, error)

	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ReplaceBookingServices(
		ctx context.Context,
		b *models.Booking,
		services []models.BarberService,
	) error

	CountClientBookingsInRange(
		ctx context.Context,
		clientID uint,
		from time.Time,
		to time.Time,
	) (int64, error)

	// -------- Booking ledger (state change) --------
	GetBookingByReference(
		ctx context.Context,
		reference string,
	) (*models.Booking, error)

	GetBookingForBarber(
		ctx context.Context,
		bookingID uint,
		barberID uint,
	) (*models.Booking, error)

	GetBookingForClient(
		ctx context.Context,
		bookingID uint,
		clientID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Listings --------
	ListActiveBookingsForDay(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	ListBookingsForPeriod(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	ListBookingsForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Booking, error)
}
