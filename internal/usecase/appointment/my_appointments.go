package appointment

import (
	"context"
	"time"

	domain "github.com/barberclubbr/barberclub-api/internal/domain/appointment"
	"github.com/barberclubbr/barberclub-api/internal/models"
	"github.com/barberclubbr/barberclub-api/internal/timezone"
)

// ======================================================
// "Meus agendamentos" do cliente: filtro + ordenação
// futuros crescente, passados decrescente
// ======================================================

type ListMyAppointmentsInput struct {
	BarbershopID     uint
	ClientID         uint
	IncludeCancelled bool
	Date             *time.Time
}

type ListMyAppointments struct {
	repo domain.Repository
}

func NewListMyAppointments(repo domain.Repository) *ListMyAppointments {
	return &ListMyAppointments{repo: repo}
}

func (uc *ListMyAppointments) Execute(
	ctx context.Context,
	in ListMyAppointmentsInput,
) ([]models.Appointment, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListClientAppointments(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(shop.Timezone)

	return domain.FilterAndSort(
		appointments,
		domain.ListFilter{
			IncludeCancelled: in.IncludeCancelled,
			Date:             in.Date,
		},
		now,
	), nil
}
