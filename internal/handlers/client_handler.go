package handlers

import (
	"gorm.io/gorm"

	"github.com/gin-gonic/gin"

	"github.com/barberclub/booking-api/internal/httperr"
	"github.com/barberclub/booking-api/internal/httpresp"
	"github.com/barberclub/booking-api/internal/middleware"
	"github.com/barberclub/booking-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// ======================================================
// CLIENTES DO BARBEIRO
// ======================================================

// List retorna apenas clientes que já agendaram com este barbeiro.
// Busca opcional por nome/telefone via ?q=.
func (h *ClientHandler) List(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	query := h.db.WithContext(c.Request.Context()).
		Model(&models.Client{}).
		Distinct("clients.*").
		Joins("JOIN bookings ON bookings.client_id = clients.id").
		Where("bookings.barber_id = ?", barberID)

	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where("clients.name LIKE ? OR clients.phone LIKE ?", like, like)
	}

	var clients []models.Client
	if err := query.Order("clients.name ASC").Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, clients)
}
