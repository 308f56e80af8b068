package appointment

import (
	"context"

	domain "github.com/mariananails/salon-booking/internal/domain/appointment"
	"github.com/mariananails/salon-booking/internal/dto"
	"github.com/mariananails/salon-booking/internal/timezone"
)

type ListUpcomingAppointments struct {
	repo domain.Repository
}

func NewListUpcomingAppointments(
	repo domain.Repository,
) *ListUpcomingAppointments {
	return &ListUpcomingAppointments{
		repo: repo,
	}
}

func (uc *ListUpcomingAppointments) Execute(
	ctx context.Context,
	userID uint,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListUpcomingForUser(
		ctx,
		userID,
		timezone.TodayString(),
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:              ap.ID,
			AppointmentDate: ap.AppointmentDate,
			AppointmentTime: ap.AppointmentTime,
			Status:          ap.Status,
			ServiceName:     ap.Service.Name,
			ServicePrice:    ap.Service.Price,
			DepositAmount:   ap.DepositAmount,
			DepositStatus:   ap.DepositStatus,
			Notes:           ap.Notes,
			CreatedAt:       ap.CreatedAt,
		})
	}

	return out, nil
}
