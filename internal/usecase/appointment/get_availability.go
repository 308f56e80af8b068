package appointment

import (
	"context"

	domain "github.com/mariananails/salon-booking/internal/domain/appointment"
)

type Availability struct {
	Date      string   `json:"date"`
	AllSlots  []string `json:"all_slots"`
	Available []string `json:"available_slots"`
}

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute returns the fixed timetable and the subset still free for the
// date. Past dates are answerable here; booking is where they get rejected.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
) (*Availability, error) {

	taken, err := uc.repo.TakenSlots(ctx, date)
	if err != nil {
		return nil, err
	}

	return &Availability{
		Date:      date,
		AllSlots:  domain.Slots(),
		Available: domain.AvailableSlots(taken),
	}, nil
}
