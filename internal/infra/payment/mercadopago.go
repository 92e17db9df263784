package payment

import (
	"context"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preapproval"

	subscription "github.com/barberclubbr/barberclub-api/internal/usecase/subscription"
)

// MercadoPagoGateway implementa o gateway de assinatura recorrente via
// preapproval (cobrança mensal).
type MercadoPagoGateway struct {
	client preapproval.Client
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &MercadoPagoGateway{
		client: preapproval.NewClient(cfg),
	}, nil
}

func (g *MercadoPagoGateway) CreateRecurring(
	ctx context.Context,
	in subscription.RecurringInput,
) (*subscription.Recurring, error) {

	res, err := g.client.Create(ctx, preapproval.Request{
		Reason:            in.Reason,
		ExternalReference: in.ExternalReference,
		PayerEmail:        in.PayerEmail,
		BackURL:           in.BackURL,
		AutoRecurring: &preapproval.AutoRecurringRequest{
			Frequency:         1,
			FrequencyType:     "months",
			TransactionAmount: in.Amount,
			CurrencyID:        "BRL",
		},
	})
	if err != nil {
		return nil, err
	}

	return &subscription.Recurring{
		ID:        res.ID,
		Status:    res.Status,
		InitPoint: res.InitPoint,
	}, nil
}

func (g *MercadoPagoGateway) GetRecurring(
	ctx context.Context,
	id string,
) (*subscription.Recurring, error) {

	res, err := g.client.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &subscription.Recurring{
		ID:        res.ID,
		Status:    res.Status,
		InitPoint: res.InitPoint,
	}, nil
}

// Compile-time check
var _ subscription.Gateway = (*MercadoPagoGateway)(nil)
