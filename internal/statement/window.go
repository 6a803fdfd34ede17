package statement

import (
	"fmt"
	"strconv"
	"time"
)

// DateLayout is the wire layout of statement dates.
const DateLayout = "02012006"

// LookbackDays is the size of the permitted window, today included.
const LookbackDays = 7

// Window is an inclusive date range. From is at start of day, To at end of day.
type Window struct {
	From time.Time
	To   time.Time
}

// DefaultWindow returns [today-6 00:00:00.000, today 23:59:59.999] in now's location.
func DefaultWindow(now time.Time) Window {
	y, m, d := now.Date()
	loc := now.Location()
	return Window{
		From: startOfDay(time.Date(y, m, d-(LookbackDays-1), 0, 0, 0, 0, loc)),
		To:   endOfDay(time.Date(y, m, d, 0, 0, 0, 0, loc)),
	}
}

// Days returns the start of every calendar day in the window, ascending.
func (w Window) Days() []time.Time {
	var days []time.Time
	for day := startOfDay(w.From); !day.After(w.To); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days
}

// Contains reports whether t lies inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && !t.After(w.To)
}

// Resolve turns optional DDMMYYYY bounds into an effective window. An empty bound
// takes its default. The caller may narrow the default window but never widen it.
func Resolve(from, to string, now time.Time) (Window, error) {
	def := DefaultWindow(now)
	w := def

	if from != "" {
		t, err := ParseDate(from, now.Location())
		if err != nil {
			return Window{}, &DateFormatError{Field: "from_date", Value: from}
		}
		w.From = startOfDay(t)
	}
	if to != "" {
		t, err := ParseDate(to, now.Location())
		if err != nil {
			return Window{}, &DateFormatError{Field: "to_date", Value: to}
		}
		w.To = endOfDay(t)
	}

	switch {
	case w.From.Before(def.From):
		return Window{}, &RangeError{Reason: fmt.Sprintf("from_date cannot be earlier than %s", FormatDate(def.From))}
	case w.To.After(def.To):
		return Window{}, &RangeError{Reason: fmt.Sprintf("to_date cannot be later than %s", FormatDate(def.To))}
	case w.From.After(w.To):
		return Window{}, &RangeError{Reason: "from_date cannot be after to_date"}
	}
	return w, nil
}

// ParseDate parses DDMMYYYY. The string must be eight digits but components are not
// range checked: out-of-range days and months roll over into adjacent months.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if len(s) != 8 {
		return time.Time{}, fmt.Errorf("%w: %q has length %d", ErrMalformedDate, s, len(s))
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return time.Time{}, fmt.Errorf("%w: %q contains non-digit", ErrMalformedDate, s)
		}
	}
	day, _ := strconv.Atoi(s[0:2])
	month, _ := strconv.Atoi(s[2:4])
	year, _ := strconv.Atoi(s[4:8])
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc), nil
}

// FormatDate renders t as DDMMYYYY.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}
