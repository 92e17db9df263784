package subscription

import (
	"context"

	"github.com/barberclubbr/barberclub-api/internal/models"
)

// Repository é o recorte de persistência que os casos de uso de
// assinatura precisam.
type Repository interface {
	GetBarbershopByID(ctx context.Context, id uint) (*models.Barbershop, error)
	GetClient(ctx context.Context, barbershopID uint, clientID uint) (*models.Client, error)
	UpdateClient(ctx context.Context, cl *models.Client) error
	GetPlan(ctx context.Context, barbershopID uint, planID uint) (*models.Plan, error)
}

// Gateway abstrai o processador de pagamento recorrente.
type Gateway interface {
	CreateRecurring(ctx context.Context, in RecurringInput) (*Recurring, error)
	GetRecurring(ctx context.Context, id string) (*Recurring, error)
}

type RecurringInput struct {
	Reason            string
	Amount            float64
	PayerEmail        string
	ExternalReference string
	BackURL           string
}

// Status segue o vocabulário do gateway ("pending", "authorized",
// "paused", "cancelled").
type Recurring struct {
	ID        string
	Status    string
	InitPoint string
}

const GatewayStatusAuthorized = "authorized"
