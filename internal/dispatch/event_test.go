package dispatch

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestEncodeFrameEnvelope(t *testing.T) {
	event := MeetingReminder{
		MeetingID:  7,
		Title:      "sprint review",
		StartsAt:   time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC),
		EmployeeID: 4,
	}

	frame, err := EncodeFrame(event)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded struct {
		Kind string `json:"kind"`
		Data struct {
			MeetingID  uint   `json:"meeting_id"`
			Title      string `json:"title"`
			StartsAt   string `json:"starts_at"`
			EmployeeID uint   `json:"employee_id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(frame, &decoded); err != nil {
		t.Fatalf("failed to decode frame: %v", err)
	}

	if decoded.Kind != KindMeetingReminder {
		t.Errorf("kind = %q, want %q", decoded.Kind, KindMeetingReminder)
	}
	if decoded.Data.Title != "sprint review" {
		t.Errorf("title = %q, want %q", decoded.Data.Title, "sprint review")
	}
	if decoded.Data.StartsAt != "2025-03-10T14:30:00Z" {
		t.Errorf("starts_at = %q, want RFC-3339 timestamp", decoded.Data.StartsAt)
	}
}

func TestEventScopes(t *testing.T) {
	cases := []struct {
		event Event
		kind  string
		scope RecipientScope
	}{
		{MeetingReminder{EmployeeID: 1}, KindMeetingReminder, EmployeeScope{EmployeeID: 1}},
		{MeetingStarted{Role: "employee"}, KindMeetingStarted, RoleScope{Role: "employee"}},
		{TaskReminder{EmployeeID: 2}, KindTaskReminder, EmployeeScope{EmployeeID: 2}},
		{ProjectAssigned{ProjectID: 3}, KindProjectAssigned, ProjectScope{ProjectID: 3}},
		{DayStarted{Role: "admin"}, KindDayStarted, RoleScope{Role: "admin"}},
	}

	for _, c := range cases {
		if c.event.Kind() != c.kind {
			t.Errorf("kind = %q, want %q", c.event.Kind(), c.kind)
		}
		if c.event.Scope() != c.scope {
			t.Errorf("scope = %#v, want %#v", c.event.Scope(), c.scope)
		}
	}
}
