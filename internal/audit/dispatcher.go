package audit

import "github.com/mariananails/salon-booking/internal/logging"

// Actions recorded by the booking and verification flows.
const (
	ActionAppointmentCreated = "appointment_created"
	ActionBookingConflict    = "booking_conflict"
	ActionDepositVerified    = "deposit_verified"
	ActionAppointmentUpdated = "appointment_updated"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	log    *logging.Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger, log *logging.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.Error("audit write failed", "action", ev.Action, "err", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// audit must never block or break the request path
		d.log.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}
