package subscription

import (
	"time"

	"github.com/barberclubbr/barberclub-api/internal/httperr"
	"github.com/barberclubbr/barberclub-api/internal/models"
)

// ===============================
// Payment Status
// ===============================

// Valores persistidos literais.
const (
	PaymentStatusPaid = "Pago"
	PaymentStatusLate = "Atrasado"
)

// CheckEligibility decide se o cliente pode criar agendamentos:
// assinatura ativa no gateway, pagamento em dia, plano não vencido e
// cadastro não bloqueado.
func CheckEligibility(cl *models.Client, now time.Time) error {
	if cl.Blocked {
		return httperr.ErrBusiness("client_blocked")
	}
	if cl.SubscriptionID == "" {
		return httperr.ErrBusiness("subscription_missing")
	}
	if cl.PaymentStatus != PaymentStatusPaid {
		return httperr.ErrBusiness("payment_late")
	}
	if cl.PlanExpiresAt == nil || !cl.PlanExpiresAt.After(now) {
		return httperr.ErrBusiness("plan_expired")
	}
	return nil
}

func IsEligible(cl *models.Client, now time.Time) bool {
	return CheckEligibility(cl, now) == nil
}
