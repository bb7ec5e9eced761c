package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/barberclub/booking-api/internal/cache"
	"github.com/barberclub/booking-api/internal/config"
	domain "github.com/barberclub/booking-api/internal/domain/booking"
	"github.com/barberclub/booking-api/internal/httperr"
	"github.com/barberclub/booking-api/internal/middleware"
	"github.com/barberclub/booking-api/internal/models"
	"github.com/barberclub/booking-api/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleHandler struct {
	db         *gorm.DB
	config     *config.Config
	availCache *cache.AvailabilityCache
}

func NewScheduleHandler(db *gorm.DB, cfg *config.Config, availCache *cache.AvailabilityCache) *ScheduleHandler {
	return &ScheduleHandler{
		db:         db,
		config:     cfg,
		availCache: availCache,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpsertScheduleRequest struct {
	WorkStart       string `json:"work_start" binding:"required"` // "HH:MM"
	WorkEnd         string `json:"work_end" binding:"required"`   // "HH:MM"
	SlotIntervalMin int    `json:"slot_interval_min" binding:"required"`

	WorkStartDate *string `json:"work_start_date"` // YYYY-MM-DD
	WorkEndDate   *string `json:"work_end_date"`
}

type CreateDayOffRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
}

// ======================================================
// EXPEDIENTE
// ======================================================

func (h *ScheduleHandler) GetConfig(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var cfg models.ScheduleConfig
	if err := h.db.WithContext(c.Request.Context()).
		Where("barber_id = ?", barberID).
		First(&cfg).Error; err != nil {
		httperr.NotFound(c, "schedule_not_configured", "Expediente ainda não configurado.")
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// UpsertConfig substitui o expediente inteiro do barbeiro. A validação
// acontece antes do write: expediente inválido nunca chega ao banco.
func (h *ScheduleHandler) UpsertConfig(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpsertScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	cfg := models.ScheduleConfig{
		BarberID:        barberID,
		WorkStart:       req.WorkStart,
		WorkEnd:         req.WorkEnd,
		SlotIntervalMin: req.SlotIntervalMin,
	}

	if req.WorkStartDate != nil {
		d, err := timezone.ParseDate(h.config.Timezone, *req.WorkStartDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data de início de vínculo inválida.")
			return
		}
		cfg.WorkStartDate = &d
	}
	if req.WorkEndDate != nil {
		d, err := timezone.ParseDate(h.config.Timezone, *req.WorkEndDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data de fim de vínculo inválida.")
			return
		}
		cfg.WorkEndDate = &d
	}

	if err := domain.ValidateScheduleConfig(&cfg); err != nil {
		httperr.BadRequest(c, "invalid_configuration", "Configuração de expediente inválida.")
		return
	}

	err := h.db.WithContext(c.Request.Context()).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "barber_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"work_start", "work_end", "slot_interval_min",
				"work_start_date", "work_end_date", "updated_at",
			}),
		}).
		Create(&cfg).Error
	if err != nil {
		httperr.Internal(c, "failed_to_save_schedule", "Erro ao salvar expediente.")
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// ======================================================
// FOLGAS
// ======================================================

func (h *ScheduleHandler) ListDaysOff(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var daysOff []models.DayOff
	if err := h.db.WithContext(c.Request.Context()).
		Where("barber_id = ?", barberID).
		Order("date ASC").
		Find(&daysOff).Error; err != nil {
		httperr.Internal(c, "failed_to_list_days_off", "Erro ao listar folgas.")
		return
	}

	c.JSON(http.StatusOK, daysOff)
}

func (h *ScheduleHandler) CreateDayOff(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateDayOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	date, err := timezone.ParseDate(h.config.Timezone, req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	dayOff := models.DayOff{
		BarberID: barberID,
		Date:     date.Format("2006-01-02"),
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&dayOff).Error; err != nil {
		// folga repetida cai no índice único e é idempotente na prática
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "day_off_exists", "Folga já cadastrada para esta data.")
			return
		}
		httperr.Internal(c, "failed_to_create_day_off", "Erro ao cadastrar folga.")
		return
	}

	h.availCache.Invalidate(c.Request.Context(), barberID, dayOff.Date)

	c.JSON(http.StatusCreated, dayOff)
}

func (h *ScheduleHandler) DeleteDayOff(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Folga inválida.")
		return
	}

	var dayOff models.DayOff
	if err := h.db.WithContext(c.Request.Context()).
		Where("id = ? AND barber_id = ?", id, barberID).
		First(&dayOff).Error; err != nil {
		httperr.NotFound(c, "day_off_not_found", "Folga não encontrada.")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Delete(&dayOff).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_day_off", "Erro ao remover folga.")
		return
	}

	h.availCache.Invalidate(c.Request.Context(), barberID, dayOff.Date)

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
