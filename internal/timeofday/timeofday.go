package timeofday

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TimeOfDay is a local wall-clock time with minute precision,
// stored as minutes since midnight. No date, no timezone.
type TimeOfDay int

const minutesPerDay = 24 * 60

// MalformedTimeError is returned when a value cannot be read as a time of day.
type MalformedTimeError struct {
	Value  string
	Reason string
}

func (e *MalformedTimeError) Error() string {
	return fmt.Sprintf("malformed time of day %q: %s", e.Value, e.Reason)
}

// H:MM or HH:MM with an optional am/pm suffix
var timePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*(am|pm)?$`)

// New builds a TimeOfDay from a 24-hour clock hour and minute.
func New(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, &MalformedTimeError{
			Value:  fmt.Sprintf("%d:%02d", hour, minute),
			Reason: "out of range",
		}
	}
	return TimeOfDay(hour*60 + minute), nil
}

// MustNew is New for constants and tests.
func MustNew(hour, minute int) TimeOfDay {
	t, err := New(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

// Parse reads "3:00pm", "03:00 PM", "15:00" or "9:30".
//
// With an am/pm suffix the hour must be 1-12. Without one the hour may be
// 0-23, and hours 1-12 are read as AM, so "12:15" is a quarter past midnight.
func Parse(value string) (TimeOfDay, error) {
	s := strings.ToLower(strings.TrimSpace(value))
	if s == "" {
		return 0, &MalformedTimeError{Value: value, Reason: "empty"}
	}

	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, &MalformedTimeError{Value: value, Reason: "expected h:mm with optional am/pm"}
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	meridiem := m[3]

	if minute > 59 {
		return 0, &MalformedTimeError{Value: value, Reason: "minute out of range"}
	}

	switch {
	case meridiem != "":
		if hour < 1 || hour > 12 {
			return 0, &MalformedTimeError{Value: value, Reason: "hour out of range for 12-hour clock"}
		}
		hour %= 12
		if meridiem == "pm" {
			hour += 12
		}
	case hour > 23:
		return 0, &MalformedTimeError{Value: value, Reason: "hour out of range"}
	case hour == 12:
		// no suffix defaults to AM
		hour = 0
	}

	return TimeOfDay(hour*60 + minute), nil
}

// MustParse is Parse for constants and tests.
func MustParse(value string) TimeOfDay {
	t, err := Parse(value)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) Before(u TimeOfDay) bool { return t < u }
func (t TimeOfDay) After(u TimeOfDay) bool  { return t > u }

// Valid reports whether t lies within a single day.
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < minutesPerDay
}

// String formats as "3:04pm".
func (t TimeOfDay) String() string {
	h := t.Hour()
	meridiem := "am"
	if h >= 12 {
		meridiem = "pm"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d%s", h, t.Minute(), meridiem)
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, &MalformedTimeError{Value: strconv.Itoa(int(t)), Reason: "outside a single day"}
	}
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
