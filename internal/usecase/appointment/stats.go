package appointment

import (
	"context"
	"log"

	"github.com/barberclubbr/barberclub-api/internal/cache"
	domain "github.com/barberclubbr/barberclub-api/internal/domain/appointment"
	"github.com/barberclubbr/barberclub-api/internal/timezone"
)

// ======================================================
// DASHBOARD STATS — agregado com cache de 5 minutos
// ======================================================

type DashboardStats struct {
	repo  domain.Repository
	cache *cache.StatsCache
}

func NewDashboardStats(
	repo domain.Repository,
	statsCache *cache.StatsCache,
) *DashboardStats {
	return &DashboardStats{
		repo:  repo,
		cache: statsCache,
	}
}

func (uc *DashboardStats) Execute(
	ctx context.Context,
	barbershopID uint,
) (*domain.Stats, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(shop.Timezone)

	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, barbershopID); err != nil {
			// cache fora do ar não derruba o painel
			log.Println("stats cache read error:", err)
		} else if cached != nil && !cached.Stale(now) {
			return cached, nil
		}
	}

	start, end := domain.StatsWindow(now)
	appointments, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		barbershopID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	st := domain.Aggregate(appointments, now)

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, barbershopID, st); err != nil {
			log.Println("stats cache write error:", err)
		}
	}

	return &st, nil
}
