package workweek

import (
	"testing"
	"time"
)

func TestParseOffDays(t *testing.T) {
	off, err := ParseOffDays("SAT,SUN")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 2025-08-02 is a Saturday, 2025-08-03 a Sunday, 2025-08-04 a Monday.
	sat := time.Date(2025, 8, 2, 0, 0, 0, 0, time.UTC)
	sun := time.Date(2025, 8, 3, 0, 0, 0, 0, time.UTC)
	mon := time.Date(2025, 8, 4, 0, 0, 0, 0, time.UTC)

	if !off.IsOff(sat) || !off.IsOff(sun) {
		t.Fatal("expected saturday and sunday to be off")
	}
	if off.IsOff(mon) {
		t.Fatal("expected monday to be a working day")
	}
}

func TestParseOffDaysEmpty(t *testing.T) {
	off, err := ParseOffDays("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(off) != 0 {
		t.Fatalf("expected empty set, got %v", off)
	}
}

func TestParseOffDaysInvalid(t *testing.T) {
	if _, err := ParseOffDays("SUN,FOO"); err == nil {
		t.Fatal("expected error for unknown weekday")
	}
}

func TestParseShiftWindow(t *testing.T) {
	w, err := ParseShiftWindow("09:00-18:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.StartMinute != 9*60 || w.EndMinute != 18*60 {
		t.Fatalf("unexpected window: %+v", w)
	}
	if w.Minutes() != 540 {
		t.Fatalf("expected 540 minutes, got %d", w.Minutes())
	}
}

func TestParseShiftWindowInvalid(t *testing.T) {
	for _, s := range []string{"", "09:00", "18:00-09:00", "aa:bb-cc:dd"} {
		if _, err := ParseShiftWindow(s); err == nil {
			t.Fatalf("expected error for %q", s)
		}
	}
}

func TestLateArrivalAndEarlyDeparture(t *testing.T) {
	w, _ := ParseShiftWindow("09:00-18:00")

	onTime := time.Date(2025, 8, 4, 9, 5, 0, 0, time.UTC)
	late := time.Date(2025, 8, 4, 9, 20, 0, 0, time.UTC)
	if w.LateArrival(onTime, 15) {
		t.Fatal("09:05 with 15m grace should not be late")
	}
	if !w.LateArrival(late, 15) {
		t.Fatal("09:20 with 15m grace should be late")
	}

	early := time.Date(2025, 8, 4, 17, 30, 0, 0, time.UTC)
	full := time.Date(2025, 8, 4, 17, 50, 0, 0, time.UTC)
	if !w.EarlyDeparture(early, 15) {
		t.Fatal("17:30 with 15m grace should be early")
	}
	if w.EarlyDeparture(full, 15) {
		t.Fatal("17:50 with 15m grace should not be early")
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year, month, want int
	}{
		{2025, 8, 31},
		{2025, 2, 28},
		{2024, 2, 29},
		{2025, 4, 30},
	}
	for _, c := range cases {
		if got := DaysInMonth(c.year, c.month); got != c.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}
