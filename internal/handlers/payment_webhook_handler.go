package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/barberclub/booking-api/internal/httperr"
	"github.com/barberclub/booking-api/internal/models"
	"github.com/barberclub/booking-api/internal/payments"
)

// ======================================================
// WEBHOOK MERCADO PAGO
// ======================================================

// BookingConfirmer é o que o webhook precisa do caso de uso de
// confirmação (pending → confirmed pela referência externa)
type BookingConfirmer interface {
	Execute(ctx context.Context, reference string) (*models.Booking, error)
}

type PaymentWebhookHandler struct {
	gateway   payments.Gateway
	confirmUC BookingConfirmer
	log       zerolog.Logger
}

func NewPaymentWebhookHandler(
	gateway payments.Gateway,
	confirmUC BookingConfirmer,
	log zerolog.Logger,
) *PaymentWebhookHandler {
	return &PaymentWebhookHandler{
		gateway:   gateway,
		confirmUC: confirmUC,
		log:       log,
	}
}

type mpNotification struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// Handle processa a notificação do Mercado Pago. O payload só carrega
// o id do pagamento; status e external_reference vêm de uma consulta
// de volta à API — nunca do corpo do webhook.
func (h *PaymentWebhookHandler) Handle(c *gin.Context) {
	var notif mpNotification
	if err := c.ShouldBindJSON(&notif); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Notificação inválida.")
		return
	}

	if notif.Type != "payment" {
		c.JSON(http.StatusOK, gin.H{"ignored": true})
		return
	}

	paymentID, err := strconv.Atoi(notif.Data.ID)
	if err != nil {
		httperr.BadRequest(c, "invalid_payment_id", "Id de pagamento inválido.")
		return
	}

	status, reference, err := h.gateway.PaymentStatus(c.Request.Context(), paymentID)
	if err != nil {
		// 500 faz o Mercado Pago reentregar depois
		h.log.Error().Err(err).Int("payment_id", paymentID).Msg("falha ao consultar pagamento")
		httperr.Internal(c, "payment_lookup_failed", "Erro ao consultar pagamento.")
		return
	}

	if status != payments.StatusApproved {
		c.JSON(http.StatusOK, gin.H{"ignored": true, "status": status})
		return
	}

	b, err := h.confirmUC.Execute(c.Request.Context(), reference)
	if err != nil {
		// referência desconhecida: pagamento de outro sistema, não reentregar
		if httperr.IsBusiness(err, "booking_not_found") {
			h.log.Warn().Str("reference", reference).Msg("pagamento aprovado sem agendamento correspondente")
			c.JSON(http.StatusOK, gin.H{"ignored": true})
			return
		}
		// agendamento cancelado/concluído no meio tempo: desfecho
		// definitivo, 500 aqui faria o provedor reentregar para sempre
		if httperr.IsBusiness(err, "invalid_state") {
			h.log.Warn().Str("reference", reference).Msg("pagamento aprovado para agendamento fora de pending")
			c.JSON(http.StatusOK, gin.H{"ignored": true})
			return
		}
		h.log.Error().Err(err).Str("reference", reference).Msg("falha ao confirmar agendamento")
		httperr.Internal(c, "failed_to_confirm", "Erro ao confirmar agendamento.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"confirmed": true, "booking_id": b.ID})
}
