package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/barberclubbr/barberclub-api/internal/httperr"
	"github.com/barberclubbr/barberclub-api/internal/models"
)

func eligibleClient(now time.Time) *models.Client {
	expires := now.AddDate(0, 1, 0)
	return &models.Client{
		SubscriptionID: "sub-123",
		PaymentStatus:  PaymentStatusPaid,
		PlanExpiresAt:  &expires,
	}
}

func TestCheckEligibility(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

	t.Run("eligible", func(t *testing.T) {
		assert.NoError(t, CheckEligibility(eligibleClient(now), now))
		assert.True(t, IsEligible(eligibleClient(now), now))
	})

	t.Run("blocked wins over everything", func(t *testing.T) {
		cl := eligibleClient(now)
		cl.Blocked = true
		err := CheckEligibility(cl, now)
		assert.True(t, httperr.IsBusiness(err, "client_blocked"))
	})

	t.Run("no subscription", func(t *testing.T) {
		cl := eligibleClient(now)
		cl.SubscriptionID = ""
		err := CheckEligibility(cl, now)
		assert.True(t, httperr.IsBusiness(err, "subscription_missing"))
	})

	t.Run("payment late", func(t *testing.T) {
		cl := eligibleClient(now)
		cl.PaymentStatus = PaymentStatusLate
		err := CheckEligibility(cl, now)
		assert.True(t, httperr.IsBusiness(err, "payment_late"))
	})

	t.Run("plan expired", func(t *testing.T) {
		cl := eligibleClient(now)
		expired := now.Add(-time.Hour)
		cl.PlanExpiresAt = &expired
		err := CheckEligibility(cl, now)
		assert.True(t, httperr.IsBusiness(err, "plan_expired"))
	})

	t.Run("expiry exactly now counts as expired", func(t *testing.T) {
		cl := eligibleClient(now)
		cl.PlanExpiresAt = &now
		err := CheckEligibility(cl, now)
		assert.True(t, httperr.IsBusiness(err, "plan_expired"))
	})

	t.Run("no expiry recorded", func(t *testing.T) {
		cl := eligibleClient(now)
		cl.PlanExpiresAt = nil
		err := CheckEligibility(cl, now)
		assert.True(t, httperr.IsBusiness(err, "plan_expired"))
	})
}
