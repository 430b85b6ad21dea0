package dispatch

import (
	"time"

	"github.com/goccy/go-json"
)

// Event kinds carried on the wire.
const (
	KindMeetingReminder = "meeting-reminder"
	KindMeetingStarted  = "meeting-started"
	KindTaskReminder    = "task-reminder"
	KindProjectAssigned = "project-assigned"
	KindDayStarted      = "day-started"
)

// RecipientScope identifies who an event is for: one employee, a role
// cohort, or a project's roster.
type RecipientScope interface {
	scope()
}

type EmployeeScope struct {
	EmployeeID uint
}

type RoleScope struct {
	Role string
}

type ProjectScope struct {
	ProjectID uint
}

func (EmployeeScope) scope() {}
func (RoleScope) scope()     {}
func (ProjectScope) scope()  {}

// Event is one notification. Each kind carries its own payload shape; all
// share scope resolution and delivery.
type Event interface {
	Kind() string
	Scope() RecipientScope
}

type MeetingReminder struct {
	MeetingID  uint      `json:"meeting_id"`
	Title      string    `json:"title"`
	StartsAt   time.Time `json:"starts_at"`
	EmployeeID uint      `json:"employee_id"`
}

func (MeetingReminder) Kind() string            { return KindMeetingReminder }
func (e MeetingReminder) Scope() RecipientScope { return EmployeeScope{EmployeeID: e.EmployeeID} }

type MeetingStarted struct {
	MeetingID uint      `json:"meeting_id"`
	Title     string    `json:"title"`
	StartedAt time.Time `json:"started_at"`
	RoomURL   string    `json:"room_url"`
	Role      string    `json:"role"`
}

func (MeetingStarted) Kind() string            { return KindMeetingStarted }
func (e MeetingStarted) Scope() RecipientScope { return RoleScope{Role: e.Role} }

type TaskReminder struct {
	TaskID     uint      `json:"task_id"`
	Title      string    `json:"title"`
	DueAt      time.Time `json:"due_at"`
	EmployeeID uint      `json:"employee_id"`
}

func (TaskReminder) Kind() string            { return KindTaskReminder }
func (e TaskReminder) Scope() RecipientScope { return EmployeeScope{EmployeeID: e.EmployeeID} }

type ProjectAssigned struct {
	ProjectID   uint      `json:"project_id"`
	ProjectName string    `json:"project_name"`
	AssignedAt  time.Time `json:"assigned_at"`
}

func (ProjectAssigned) Kind() string            { return KindProjectAssigned }
func (e ProjectAssigned) Scope() RecipientScope { return ProjectScope{ProjectID: e.ProjectID} }

type DayStarted struct {
	EmployeeID   uint      `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	StartedAt    time.Time `json:"started_at"`
	Role         string    `json:"role"`
}

func (DayStarted) Kind() string            { return KindDayStarted }
func (e DayStarted) Scope() RecipientScope { return RoleScope{Role: e.Role} }

// frame is the wire envelope: a kind discriminator plus the kind-specific
// payload of primitive fields and RFC-3339 timestamps.
type frame struct {
	Kind string `json:"kind"`
	Data Event  `json:"data"`
}

// EncodeFrame serializes an event into its wire form.
func EncodeFrame(event Event) ([]byte, error) {
	return json.Marshal(frame{Kind: event.Kind(), Data: event})
}
