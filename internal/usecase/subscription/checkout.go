package subscription

import (
	"context"
	"fmt"

	"github.com/barberclubbr/barberclub-api/internal/httperr"
)

// ======================================================
// CHECKOUT — cria a assinatura recorrente e devolve a URL
// de pagamento do gateway (init point)
// ======================================================

type CheckoutInput struct {
	BarbershopID uint
	ClientID     uint
	PlanID       uint
}

type CheckoutOutput struct {
	CheckoutURL    string `json:"checkout_url"`
	SubscriptionID string `json:"subscription_id"`
}

type Checkout struct {
	repo    Repository
	gateway Gateway
	backURL string
}

func NewCheckout(repo Repository, gateway Gateway, backURL string) *Checkout {
	return &Checkout{
		repo:    repo,
		gateway: gateway,
		backURL: backURL,
	}
}

func (uc *Checkout) Execute(
	ctx context.Context,
	in CheckoutInput,
) (*CheckoutOutput, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	client, err := uc.repo.GetClient(ctx, in.BarbershopID, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	plan, err := uc.repo.GetPlan(ctx, in.BarbershopID, in.PlanID)
	if err != nil {
		return nil, httperr.ErrBusiness("plan_not_found")
	}
	if !plan.Active {
		return nil, httperr.ErrBusiness("plan_inactive")
	}

	rec, err := uc.gateway.CreateRecurring(ctx, RecurringInput{
		Reason:            fmt.Sprintf("%s — %s", shop.Name, plan.Name),
		Amount:            plan.PriceMonthly,
		PayerEmail:        client.Email,
		ExternalReference: fmt.Sprintf("client:%d:plan:%d", client.ID, plan.ID),
		BackURL:           uc.backURL,
	})
	if err != nil {
		return nil, err
	}

	// O pagamento ainda não foi autorizado: o status vira Pago apenas
	// quando o refresh confirmar junto ao gateway.
	client.PlanName = plan.Name
	client.SubscriptionID = rec.ID

	if err := uc.repo.UpdateClient(ctx, client); err != nil {
		return nil, err
	}

	return &CheckoutOutput{
		CheckoutURL:    rec.InitPoint,
		SubscriptionID: rec.ID,
	}, nil
}
