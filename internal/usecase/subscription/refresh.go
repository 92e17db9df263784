package subscription

import (
	"context"

	domain "github.com/barberclubbr/barberclub-api/internal/domain/subscription"
	"github.com/barberclubbr/barberclub-api/internal/httperr"
	"github.com/barberclubbr/barberclub-api/internal/models"
	"github.com/barberclubbr/barberclub-api/internal/timezone"
)

// ======================================================
// REFRESH — reconsulta a assinatura no gateway e atualiza
// o status de pagamento / validade do plano do cliente
// ======================================================

type Refresh struct {
	repo    Repository
	gateway Gateway
}

func NewRefresh(repo Repository, gateway Gateway) *Refresh {
	return &Refresh{
		repo:    repo,
		gateway: gateway,
	}
}

func (uc *Refresh) Execute(
	ctx context.Context,
	barbershopID uint,
	clientID uint,
) (*models.Client, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	client, err := uc.repo.GetClient(ctx, barbershopID, clientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	if client.SubscriptionID == "" {
		return nil, httperr.ErrBusiness("subscription_missing")
	}

	rec, err := uc.gateway.GetRecurring(ctx, client.SubscriptionID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(shop.Timezone)

	if rec.Status == GatewayStatusAuthorized {
		client.PaymentStatus = domain.PaymentStatusPaid
		expires := now.AddDate(0, 1, 0)
		client.PlanExpiresAt = &expires
	} else {
		client.PaymentStatus = domain.PaymentStatusLate
	}

	if err := uc.repo.UpdateClient(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}
