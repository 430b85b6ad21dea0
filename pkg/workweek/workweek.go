// Package workweek parses weekly-off masks and shift windows used by the
// attendance aggregation.
package workweek

import (
	"fmt"
	"strings"
	"time"
)

var weekdayNames = map[string]time.Weekday{
	"SUN": time.Sunday,
	"MON": time.Monday,
	"TUE": time.Tuesday,
	"WED": time.Wednesday,
	"THU": time.Thursday,
	"FRI": time.Friday,
	"SAT": time.Saturday,
}

// OffDays is a set of weekly-off weekdays.
type OffDays map[time.Weekday]bool

// ParseOffDays parses a comma-separated weekday mask, e.g. "SUN" or "SAT,SUN".
// An empty mask yields an empty set (no weekly offs).
func ParseOffDays(mask string) (OffDays, error) {
	off := OffDays{}
	mask = strings.TrimSpace(mask)
	if mask == "" {
		return off, nil
	}
	for _, part := range strings.Split(mask, ",") {
		name := strings.ToUpper(strings.TrimSpace(part))
		day, ok := weekdayNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q in mask %q", part, mask)
		}
		off[day] = true
	}
	return off, nil
}

// IsOff reports whether the date falls on a weekly-off weekday.
func (o OffDays) IsOff(date time.Time) bool {
	return o[date.Weekday()]
}

// ShiftWindow is the configured working window of one day, in minutes from
// midnight. End may not precede Start.
type ShiftWindow struct {
	StartMinute int
	EndMinute   int
}

// ParseShiftWindow parses "HH:MM-HH:MM", e.g. "09:00-18:00".
func ParseShiftWindow(s string) (ShiftWindow, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return ShiftWindow{}, fmt.Errorf("invalid shift window %q", s)
	}
	start, err := parseClock(parts[0])
	if err != nil {
		return ShiftWindow{}, fmt.Errorf("invalid shift window %q: %w", s, err)
	}
	end, err := parseClock(parts[1])
	if err != nil {
		return ShiftWindow{}, fmt.Errorf("invalid shift window %q: %w", s, err)
	}
	if end < start {
		return ShiftWindow{}, fmt.Errorf("invalid shift window %q: end before start", s)
	}
	return ShiftWindow{StartMinute: start, EndMinute: end}, nil
}

func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Minutes returns the shift length in minutes.
func (w ShiftWindow) Minutes() int {
	return w.EndMinute - w.StartMinute
}

// LateArrival reports whether a check-in is later than shift start plus grace.
func (w ShiftWindow) LateArrival(checkIn time.Time, graceMinutes int) bool {
	return MinuteOfDay(checkIn) > w.StartMinute+graceMinutes
}

// EarlyDeparture reports whether a check-out is earlier than shift end minus
// grace.
func (w ShiftWindow) EarlyDeparture(checkOut time.Time, graceMinutes int) bool {
	return MinuteOfDay(checkOut) < w.EndMinute-graceMinutes
}

// MinuteOfDay returns minutes elapsed since the timestamp's midnight.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// DateOnly truncates a timestamp to its calendar day in its location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
