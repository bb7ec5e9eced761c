package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/barberclub/booking-api/internal/domain/booking"
	"github.com/barberclub/booking-api/internal/httperr"
	"github.com/barberclub/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Client / Subscription
// --------------------------------------------------

func (r *BookingGormRepository) GetClientByID(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *BookingGormRepository) GetSubscriptionByClientID(
	ctx context.Context,
	clientID uint,
) (*models.Subscription, error) {

	var sub models.Subscription
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		First(&sub).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		// sem linha de assinatura = cliente Start
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (r *BookingGormRepository) GetScheduleConfig(
	ctx context.Context,
	barberID uint,
) (*models.ScheduleConfig, error) {

	var cfg models.ScheduleConfig
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		First(&cfg).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *BookingGormRepository) ListOffDays(
	ctx context.Context,
	barberID uint,
) (map[string]struct{}, error) {

	var rows []models.DayOff
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	offDays := make(map[string]struct{}, len(rows))
	for _, d := range rows {
		offDays[d.Date] = struct{}{}
	}
	return offDays, nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *BookingGormRepository) ListServicesByIDs(
	ctx context.Context,
	barberID uint,
	ids []uint,
) ([]models.BarberService, error) {

	var services []models.BarberService
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND active = true AND id IN ?", barberID, ids).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Booking ledger (admission)
// --------------------------------------------------

func (r *BookingGormRepository) FindActiveBookingForSlot(
	ctx context.Context,
	barberID uint,
	at time.Time,
) (*models.Booking, error) {

	var b models.Booking
	err := r.db.WithContext(ctx).
		Preload("Services").
		Where(
			"barber_id = ? AND scheduled_at = ? AND status <> ?",
			barberID, at, string(domain.StatusCancelled),
		).
		First(&b).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateBooking insere a linha. O índice único parcial em
// (barber_id, scheduled_at) é a autoridade final: quem perder a corrida
// recebe slot_unavailable aqui, nunca uma segunda linha.
func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrBusiness("slot_unavailable")
		}
		return err
	}
	return nil
}

func (r *BookingGormRepository) ReplaceBookingServices(
	ctx context.Context,
	b *models.Booking,
	services []models.BarberService,
) error {

	if err := r.db.WithContext(ctx).
		Model(b).
		Association("Services").
		Replace(services); err != nil {
		return err
	}

	b.Services = services
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) CountClientBookingsInRange(
	ctx context.Context,
	clientID uint,
	from time.Time,
	to time.Time,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"client_id = ? AND status <> ? AND scheduled_at >= ? AND scheduled_at <= ?",
			clientID, string(domain.StatusCancelled), from, to,
		).
		Count(&count).Error

	return count, err
}

// --------------------------------------------------
// Booking ledger (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingByReference(
	ctx context.Context,
	reference string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("reference = ?", reference).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) GetBookingForBarber(
	ctx context.Context,
	bookingID uint,
	barberID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barber_id = ?", bookingID, barberID).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) GetBookingForClient(
	ctx context.Context,
	bookingID uint,
	clientID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND client_id = ?", bookingID, clientID).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *BookingGormRepository) ListActiveBookingsForDay(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("id", "scheduled_at", "status", "client_id").
		Where(
			"barber_id = ? AND status <> ? AND scheduled_at >= ? AND scheduled_at < ?",
			barberID, string(domain.StatusCancelled), start, end,
		).
		Order("scheduled_at ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForPeriod(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Services").
		Where(
			"barber_id = ? AND scheduled_at >= ? AND scheduled_at < ?",
			barberID, start, end,
		).
		Order("scheduled_at ASC").
		Find(&bookings).Error

	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Services").
		Where("client_id = ?", clientID).
		Order("scheduled_at DESC").
		Find(&bookings).Error

	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
