package dispatch

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

type fakeDirectory struct {
	cohorts map[string][]uint
	rosters map[uint][]uint
}

func (f *fakeDirectory) RoleCohort(role string) ([]uint, error) {
	cohort, ok := f.cohorts[role]
	if !ok {
		return nil, fmt.Errorf("%w: role %q", ErrUnknownScope, role)
	}
	return cohort, nil
}

func (f *fakeDirectory) ProjectRoster(projectID uint) ([]uint, error) {
	roster, ok := f.rosters[projectID]
	if !ok {
		return nil, fmt.Errorf("%w: project %d", ErrUnknownScope, projectID)
	}
	return roster, nil
}

func drain(s *Session) [][]byte {
	var frames [][]byte
	for {
		select {
		case frame, ok := <-s.Frames():
			if !ok {
				return frames
			}
			frames = append(frames, frame)
		default:
			return frames
		}
	}
}

func decodeKind(t *testing.T, frame []byte) string {
	t.Helper()
	var envelope struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(frame, &envelope); err != nil {
		t.Fatalf("failed to decode frame: %v", err)
	}
	return envelope.Kind
}

func newTestDispatcher() (*Dispatcher, *Registry) {
	registry := NewRegistry()
	directory := &fakeDirectory{
		cohorts: map[string][]uint{
			"admin":    {1},
			"employee": {2, 3},
		},
		rosters: map[uint][]uint{
			10: {2, 3},
		},
	}
	return NewDispatcher(registry, directory), registry
}

func TestDispatchFanOutToAllSessionsInOrder(t *testing.T) {
	dispatcher, registry := newTestDispatcher()

	// Two connections for the same user: both receive every event, once,
	// in dispatch order.
	first := NewSession(2)
	second := NewSession(2)
	registry.Register(first)
	registry.Register(second)

	events := []Event{
		TaskReminder{TaskID: 1, Title: "timesheet", DueAt: time.Now(), EmployeeID: 2},
		MeetingReminder{MeetingID: 5, Title: "standup", StartsAt: time.Now(), EmployeeID: 2},
	}
	for _, event := range events {
		if err := dispatcher.Dispatch(event); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	for _, session := range []*Session{first, second} {
		frames := drain(session)
		if len(frames) != 2 {
			t.Fatalf("expected 2 frames, got %d", len(frames))
		}
		if kind := decodeKind(t, frames[0]); kind != KindTaskReminder {
			t.Errorf("first frame kind = %q, want %q", kind, KindTaskReminder)
		}
		if kind := decodeKind(t, frames[1]); kind != KindMeetingReminder {
			t.Errorf("second frame kind = %q, want %q", kind, KindMeetingReminder)
		}
	}
}

func TestDispatchIsolationBetweenUsers(t *testing.T) {
	dispatcher, registry := newTestDispatcher()

	bystander := NewSession(3)
	registry.Register(bystander)

	event := TaskReminder{TaskID: 1, Title: "timesheet", DueAt: time.Now(), EmployeeID: 2}
	if err := dispatcher.Dispatch(event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if frames := drain(bystander); len(frames) != 0 {
		t.Fatalf("expected no frames for other user, got %d", len(frames))
	}
}

func TestDispatchAfterUnregisterIsSilent(t *testing.T) {
	dispatcher, registry := newTestDispatcher()

	session := NewSession(2)
	registry.Register(session)
	registry.Unregister(session)

	event := TaskReminder{TaskID: 1, Title: "timesheet", DueAt: time.Now(), EmployeeID: 2}
	if err := dispatcher.Dispatch(event); err != nil {
		t.Fatalf("dispatch to disconnected user must not fail, got %v", err)
	}

	if frames := drain(session); len(frames) != 0 {
		t.Fatalf("expected no frames after unregister, got %d", len(frames))
	}
}

func TestDispatchZeroRecipientsIsNoOp(t *testing.T) {
	dispatcher, _ := newTestDispatcher()

	event := TaskReminder{TaskID: 1, Title: "timesheet", DueAt: time.Now(), EmployeeID: 42}
	if err := dispatcher.Dispatch(event); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
}

func TestDispatchUnknownProjectScope(t *testing.T) {
	dispatcher, _ := newTestDispatcher()

	event := ProjectAssigned{ProjectID: 99, ProjectName: "ghost", AssignedAt: time.Now()}
	if err := dispatcher.Dispatch(event); !errors.Is(err, ErrUnknownScope) {
		t.Fatalf("expected ErrUnknownScope, got %v", err)
	}
}

func TestDispatchRoleCohort(t *testing.T) {
	dispatcher, registry := newTestDispatcher()

	a := NewSession(2)
	b := NewSession(3)
	admin := NewSession(1)
	registry.Register(a)
	registry.Register(b)
	registry.Register(admin)

	event := MeetingStarted{MeetingID: 5, Title: "all hands", StartedAt: time.Now(), Role: "employee"}
	if err := dispatcher.Dispatch(event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(drain(a)) != 1 || len(drain(b)) != 1 {
		t.Error("expected both cohort members to receive the event")
	}
	if len(drain(admin)) != 0 {
		t.Error("expected non-cohort user to receive nothing")
	}
}

func TestDispatchProjectRoster(t *testing.T) {
	dispatcher, registry := newTestDispatcher()

	member := NewSession(3)
	registry.Register(member)

	event := ProjectAssigned{ProjectID: 10, ProjectName: "migration", AssignedAt: time.Now()}
	if err := dispatcher.Dispatch(event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	frames := drain(member)
	if len(frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(frames))
	}
	if kind := decodeKind(t, frames[0]); kind != KindProjectAssigned {
		t.Errorf("frame kind = %q, want %q", kind, KindProjectAssigned)
	}
}

func TestSlowSessionDropsInsteadOfBlocking(t *testing.T) {
	dispatcher, registry := newTestDispatcher()

	slow := NewSession(2)
	registry.Register(slow)

	// Nothing drains the queue; dispatch must keep returning without
	// blocking once it fills up.
	event := TaskReminder{TaskID: 1, Title: "timesheet", DueAt: time.Now(), EmployeeID: 2}
	for i := 0; i < defaultQueueSize+10; i++ {
		if err := dispatcher.Dispatch(event); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if frames := drain(slow); len(frames) != defaultQueueSize {
		t.Fatalf("expected %d retained frames, got %d", defaultQueueSize, len(frames))
	}
}
