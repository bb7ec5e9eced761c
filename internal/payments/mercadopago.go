package payments

import (
	"context"
	"errors"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

const StatusApproved = "approved"

// Gateway é a visão estreita que o núcleo tem do provedor de pagamento:
// dado o id notificado no webhook, qual o status e a que agendamento
// (external reference) ele pertence.
type Gateway interface {
	PaymentStatus(ctx context.Context, paymentID int) (status string, externalReference string, err error)
}

type MercadoPago struct {
	payments payment.Client
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &MercadoPago{
		payments: payment.NewClient(cfg),
	}, nil
}

func (m *MercadoPago) PaymentStatus(
	ctx context.Context,
	paymentID int,
) (string, string, error) {

	p, err := m.payments.Get(ctx, paymentID)
	if err != nil {
		return "", "", err
	}

	return p.Status, p.ExternalReference, nil
}

var _ Gateway = (*MercadoPago)(nil)

// Disabled substitui o gateway quando não há credencial configurada.
// Responder erro faz o provedor reentregar a notificação mais tarde.
type Disabled struct{}

func (Disabled) PaymentStatus(context.Context, int) (string, string, error) {
	return "", "", errors.New("payment gateway not configured")
}

var _ Gateway = Disabled{}
