package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barberclub/booking-api/internal/config"
	domain "github.com/barberclub/booking-api/internal/domain/booking"
	"github.com/barberclub/booking-api/internal/httperr"
	"github.com/barberclub/booking-api/internal/metrics"
	"github.com/barberclub/booking-api/internal/middleware"
	"github.com/barberclub/booking-api/internal/timezone"
	ucBooking "github.com/barberclub/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	config *config.Config
	repo   domain.Repository

	requestUC  *ucBooking.RequestBooking
	cancelUC   *ucBooking.CancelBooking
	completeUC *ucBooking.CompleteBooking

	listByDateUC  *ucBooking.ListAgendaByDate
	listByMonthUC *ucBooking.ListAgendaByMonth
}

func NewBookingHandler(
	cfg *config.Config,
	repo domain.Repository,
	requestUC *ucBooking.RequestBooking,
	cancelUC *ucBooking.CancelBooking,
	completeUC *ucBooking.CompleteBooking,
	listByDateUC *ucBooking.ListAgendaByDate,
	listByMonthUC *ucBooking.ListAgendaByMonth,
) *BookingHandler {
	return &BookingHandler{
		config:        cfg,
		repo:          repo,
		requestUC:     requestUC,
		cancelUC:      cancelUC,
		completeUC:    completeUC,
		listByDateUC:  listByDateUC,
		listByMonthUC: listByMonthUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	BarberID   uint   `json:"barber_id" binding:"required"`
	ServiceIDs []uint `json:"service_ids" binding:"required"`
	Date       string `json:"date" binding:"required"` // YYYY-MM-DD
	Time       string `json:"time" binding:"required"` // HH:mm
}

// ======================================================
// CLIENTE — ADMISSÃO
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	res, err := h.requestUC.Execute(c.Request.Context(), ucBooking.RequestBookingInput{
		ClientID:   clientID,
		BarberID:   req.BarberID,
		ServiceIDs: req.ServiceIDs,
		Date:       req.Date,
		Time:       req.Time,
	})
	if err != nil {
		mapAdmissionErrors(c, err)
		return
	}

	metrics.IncAdmitted(string(res.Outcome))

	status := http.StatusCreated
	if res.Outcome == ucBooking.OutcomeReused {
		status = http.StatusOK
	}

	c.JSON(status, gin.H{
		"outcome": res.Outcome,
		"booking": res.Booking,
	})
}

func (h *BookingHandler) CancelByClient(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Agendamento inválido.")
		return
	}

	b, err := h.cancelUC.ExecuteForClient(c.Request.Context(), uint(id), clientID)
	if err != nil {
		if httperr.IsBusiness(err, "booking_not_found") {
			httperr.NotFound(c, "booking_not_found", "Agendamento não encontrado.")
			return
		}
		if httperr.IsBusiness(err, "invalid_state") {
			httperr.BadRequest(c, "invalid_state", "Agendamento não pode ser cancelado.")
			return
		}
		httperr.Internal(c, "failed_to_cancel", "Erro ao cancelar agendamento.")
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	bookings, err := h.repo.ListBookingsForClient(c.Request.Context(), clientID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// ======================================================
// BARBEIRO — AGENDA
// ======================================================

func (h *BookingHandler) Agenda(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	date, err := timezone.ParseDate(h.config.Timezone, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	agenda, err := h.listByDateUC.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_agenda", "Erro ao listar agenda.")
		return
	}

	c.JSON(http.StatusOK, agenda)
}

func (h *BookingHandler) AgendaByMonth(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Ano e mês são obrigatórios.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	agenda, err := h.listByMonthUC.Execute(c.Request.Context(), barberID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_agenda", "Erro ao listar agenda.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":     year,
		"month":    month,
		"bookings": agenda,
	})
}

func (h *BookingHandler) Complete(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Agendamento inválido.")
		return
	}

	b, err := h.completeUC.Execute(c.Request.Context(), uint(id), barberID)
	if err != nil {
		if httperr.IsBusiness(err, "booking_not_found") {
			httperr.NotFound(c, "booking_not_found", "Agendamento não encontrado.")
			return
		}
		if httperr.IsBusiness(err, "invalid_state") {
			httperr.BadRequest(c, "invalid_state", "Agendamento não pode ser concluído.")
			return
		}
		httperr.Internal(c, "failed_to_complete", "Erro ao concluir agendamento.")
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) CancelByBarber(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Agendamento inválido.")
		return
	}

	b, err := h.cancelUC.ExecuteForBarber(c.Request.Context(), uint(id), barberID)
	if err != nil {
		if httperr.IsBusiness(err, "booking_not_found") {
			httperr.NotFound(c, "booking_not_found", "Agendamento não encontrado.")
			return
		}
		if httperr.IsBusiness(err, "invalid_state") {
			httperr.BadRequest(c, "invalid_state", "Agendamento não pode ser cancelado.")
			return
		}
		httperr.Internal(c, "failed_to_cancel", "Erro ao cancelar agendamento.")
		return
	}

	c.JSON(http.StatusOK, b)
}
