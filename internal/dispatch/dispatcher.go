package dispatch

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ErrUnknownScope is returned when an event's recipient scope cannot be
// resolved, e.g. the referenced project does not exist.
var ErrUnknownScope = errors.New("unknown recipient scope")

// Directory resolves role cohorts and project rosters to employee ids.
type Directory interface {
	RoleCohort(role string) ([]uint, error)
	ProjectRoster(projectID uint) ([]uint, error)
}

// Alerter mirrors admin-cohort events to an out-of-band channel. Optional.
type Alerter interface {
	Alert(text string) error
}

// Dispatcher routes events to the sessions of their resolved recipients.
// Delivery is at-most-once and best-effort: recipients without a live session
// at dispatch time never receive the event, and a slow session drops frames
// rather than delaying the rest.
type Dispatcher struct {
	registry  *Registry
	directory Directory
	alerter   Alerter
	adminRole string
	logger    *logrus.Logger
}

func NewDispatcher(registry *Registry, directory Directory) *Dispatcher {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &Dispatcher{
		registry:  registry,
		directory: directory,
		adminRole: "admin",
		logger:    logger,
	}
}

// SetAlerter enables mirroring of admin-cohort events.
func (d *Dispatcher) SetAlerter(alerter Alerter) {
	d.alerter = alerter
}

// Dispatch resolves the event's scope and enqueues its wire frame on every
// live session of every recipient. Zero connected recipients is a silent
// no-op.
func (d *Dispatcher) Dispatch(event Event) error {
	recipients, err := d.resolveRecipients(event.Scope())
	if err != nil {
		return err
	}

	data, err := EncodeFrame(event)
	if err != nil {
		return fmt.Errorf("encode %s frame: %w", event.Kind(), err)
	}

	delivered, dropped := 0, 0
	for _, employeeID := range recipients {
		for _, session := range d.registry.SessionsFor(employeeID) {
			if session.enqueue(data) {
				delivered++
			} else {
				dropped++
			}
		}
	}

	if dropped > 0 {
		d.logger.WithFields(logrus.Fields{
			"kind":    event.Kind(),
			"dropped": dropped,
		}).Warn("Dropped frames for slow or closed sessions")
	}

	d.logger.WithFields(logrus.Fields{
		"kind":       event.Kind(),
		"recipients": len(recipients),
		"delivered":  delivered,
	}).Debug("Event dispatched")

	d.mirrorToAlerter(event, data)

	return nil
}

func (d *Dispatcher) resolveRecipients(scope RecipientScope) ([]uint, error) {
	switch s := scope.(type) {
	case EmployeeScope:
		return []uint{s.EmployeeID}, nil
	case RoleScope:
		return d.directory.RoleCohort(s.Role)
	case ProjectScope:
		return d.directory.ProjectRoster(s.ProjectID)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownScope, scope)
	}
}

// mirrorToAlerter forwards admin-cohort events to the out-of-band alert
// channel, fire-and-forget.
func (d *Dispatcher) mirrorToAlerter(event Event, data []byte) {
	if d.alerter == nil {
		return
	}
	role, ok := event.Scope().(RoleScope)
	if !ok || role.Role != d.adminRole {
		return
	}

	text := fmt.Sprintf("[%s] %s", event.Kind(), data)
	go func() {
		if err := d.alerter.Alert(text); err != nil {
			d.logger.WithError(err).Warn("Admin alert failed")
		}
	}()
}
