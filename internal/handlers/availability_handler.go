package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberclub/booking-api/internal/config"
	"github.com/barberclub/booking-api/internal/httperr"
	"github.com/barberclub/booking-api/internal/models"
	"github.com/barberclub/booking-api/internal/timezone"
	ucBooking "github.com/barberclub/booking-api/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER (API pública da página de agendamento)
////////////////////////////////////////////////////////

type AvailabilityHandler struct {
	db     *gorm.DB
	config *config.Config
	uc     *ucBooking.GetAvailability
}

func NewAvailabilityHandler(
	db *gorm.DB,
	cfg *config.Config,
	uc *ucBooking.GetAvailability,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		db:     db,
		config: cfg,
		uc:     uc,
	}
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	barberIDStr := c.Query("barber_id")
	dateStr := c.Query("date")

	if barberIDStr == "" || dateStr == "" {
		httperr.BadRequest(c, "missing_params", "Barbeiro e data obrigatórios.")
		return
	}

	barberID, err := strconv.ParseUint(barberIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	date, err := timezone.ParseDate(h.config.Timezone, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.uc.Execute(c.Request.Context(), uint(barberID), date)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_configuration") {
			httperr.Internal(c, "invalid_configuration", "Agenda do barbeiro mal configurada.")
			return
		}

		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"barber_id": barberID,
		"date":      dateStr,
		"slots":     slots,
	})
}

////////////////////////////////////////////////////////
// CATÁLOGO PÚBLICO
////////////////////////////////////////////////////////

func (h *AvailabilityHandler) ListBarbers(c *gin.Context) {
	var barbers []models.User
	if err := h.db.
		Select("id", "name", "phone").
		Where("role = ? AND active = true", "barber").
		Order("name ASC").
		Find(&barbers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	c.JSON(http.StatusOK, barbers)
}

func (h *AvailabilityHandler) ListServices(c *gin.Context) {
	barberIDStr := c.Query("barber_id")

	q := h.db.Where("active = true")
	if barberIDStr != "" {
		if barberID, err := strconv.ParseUint(barberIDStr, 10, 64); err == nil {
			q = q.Where("barber_id = ?", barberID)
		}
	}

	var services []models.BarberService
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	c.JSON(http.StatusOK, services)
}
