package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberclub/booking-api/internal/httperr"
	"github.com/barberclub/booking-api/internal/middleware"
	"github.com/barberclub/booking-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

// Get devolve o perfil do principal autenticado. Cliente vem com a
// assinatura embutida (ou tier start/inactive quando nunca assinou).
func (h *MeHandler) Get(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	if role == middleware.RoleClient {
		var client models.Client
		if err := h.db.WithContext(c.Request.Context()).
			First(&client, userID).Error; err != nil {
			httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
			return
		}

		var sub models.Subscription
		err := h.db.WithContext(c.Request.Context()).
			Where("client_id = ?", client.ID).
			First(&sub).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				httperr.Internal(c, "failed_to_load_subscription", "Erro ao carregar assinatura.")
				return
			}
			sub = models.Subscription{ClientID: client.ID, Tier: "start", Status: "inactive"}
		}

		c.JSON(http.StatusOK, gin.H{
			"role":         role,
			"profile":      client,
			"subscription": sub,
		})
		return
	}

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).
		First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"role":    role,
		"profile": user,
	})
}

// GetSubscription devolve só o estado de assinatura do cliente logado.
func (h *MeHandler) GetSubscription(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	var sub models.Subscription
	err := h.db.WithContext(c.Request.Context()).
		Where("client_id = ?", clientID).
		First(&sub).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Internal(c, "failed_to_load_subscription", "Erro ao carregar assinatura.")
			return
		}
		sub = models.Subscription{ClientID: clientID, Tier: "start", Status: "inactive"}
	}

	c.JSON(http.StatusOK, sub)
}
