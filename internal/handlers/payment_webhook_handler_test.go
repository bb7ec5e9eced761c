package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/barberclub/booking-api/internal/httperr"
	"github.com/barberclub/booking-api/internal/models"
	"github.com/barberclub/booking-api/internal/payments"
)

// ======================================================
// STUBS
// ======================================================

type stubGateway struct {
	status    string
	reference string
	err       error
}

func (s stubGateway) PaymentStatus(context.Context, int) (string, string, error) {
	return s.status, s.reference, s.err
}

type stubConfirmer struct {
	booking *models.Booking
	err     error
	calls   int
}

func (s *stubConfirmer) Execute(context.Context, string) (*models.Booking, error) {
	s.calls++
	return s.booking, s.err
}

func postWebhook(t *testing.T, h *PaymentWebhookHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/payments/mercadopago/webhook",
		bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Handle(c)
	return w
}

const approvedNotif = `{"type":"payment","data":{"id":"123"}}`

// ======================================================
// TESTS
// ======================================================

func TestWebhook_AprovadoConfirma(t *testing.T) {
	confirmer := &stubConfirmer{booking: &models.Booking{ID: 7, Status: "confirmed"}}
	h := NewPaymentWebhookHandler(
		stubGateway{status: payments.StatusApproved, reference: "ref-1"},
		confirmer,
		zerolog.Nop(),
	)

	w := postWebhook(t, h, approvedNotif)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, confirmer.calls)
	assert.Contains(t, w.Body.String(), `"confirmed":true`)
}

func TestWebhook_NaoAprovadoIgnora(t *testing.T) {
	confirmer := &stubConfirmer{}
	h := NewPaymentWebhookHandler(
		stubGateway{status: "rejected", reference: "ref-1"},
		confirmer,
		zerolog.Nop(),
	)

	w := postWebhook(t, h, approvedNotif)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, confirmer.calls)
}

func TestWebhook_ReferenciaDesconhecidaNaoReentrega(t *testing.T) {
	confirmer := &stubConfirmer{err: httperr.ErrBusiness("booking_not_found")}
	h := NewPaymentWebhookHandler(
		stubGateway{status: payments.StatusApproved, reference: "ref-x"},
		confirmer,
		zerolog.Nop(),
	)

	w := postWebhook(t, h, approvedNotif)

	// desfecho definitivo → 200, senão o provedor reentrega para sempre
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ignored":true`)
}

func TestWebhook_AgendamentoCanceladoNaoReentrega(t *testing.T) {
	// pagamento aprovado chegou depois do cancelamento
	confirmer := &stubConfirmer{err: httperr.ErrBusiness("invalid_state")}
	h := NewPaymentWebhookHandler(
		stubGateway{status: payments.StatusApproved, reference: "ref-1"},
		confirmer,
		zerolog.Nop(),
	)

	w := postWebhook(t, h, approvedNotif)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ignored":true`)
}

func TestWebhook_FalhaTransienteDevolve500(t *testing.T) {
	confirmer := &stubConfirmer{err: errors.New("db down")}
	h := NewPaymentWebhookHandler(
		stubGateway{status: payments.StatusApproved, reference: "ref-1"},
		confirmer,
		zerolog.Nop(),
	)

	w := postWebhook(t, h, approvedNotif)

	// 500 pede reentrega do provedor
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWebhook_ConsultaAoProvedorFalhaDevolve500(t *testing.T) {
	confirmer := &stubConfirmer{}
	h := NewPaymentWebhookHandler(
		stubGateway{err: errors.New("mp timeout")},
		confirmer,
		zerolog.Nop(),
	)

	w := postWebhook(t, h, approvedNotif)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 0, confirmer.calls)
}

func TestWebhook_TipoNaoPagamentoIgnora(t *testing.T) {
	confirmer := &stubConfirmer{}
	h := NewPaymentWebhookHandler(
		stubGateway{status: payments.StatusApproved},
		confirmer,
		zerolog.Nop(),
	)

	w := postWebhook(t, h, `{"type":"plan","data":{"id":"123"}}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, confirmer.calls)
}
