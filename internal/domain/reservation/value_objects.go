package reservation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"classroom-reservations/internal/pkg/errs"
)

var (
	ErrInvalidTimeFormat = errs.Kind(errs.ErrValidation, "invalid time of day")
	ErrInvalidTimeRange  = errs.Kind(errs.ErrValidation, "end time must be after start time")
	ErrInvalidDayOfWeek  = errs.Kind(errs.ErrValidation, "day of week must be between 1 and 7")
	ErrInvalidDate       = errs.Kind(errs.ErrValidation, "date must use YYYY-MM-DD")
)

const DateLayout = "2006-01-02"

// NormalizeTime pads H:M or H:M:S into HH:MM:SS. Anything else is returned unchanged.
func NormalizeTime(s string) string {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return s
	}
	for _, p := range parts {
		if len(p) == 0 || len(p) > 2 || !isDigits(p) {
			return s
		}
	}
	if len(parts) == 2 {
		parts = append(parts, "00")
	}
	for i, p := range parts {
		if len(p) == 1 {
			parts[i] = "0" + p
		}
	}
	return strings.Join(parts, ":")
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// TimeOfDay is a wall-clock time expressed as seconds since midnight.
type TimeOfDay int

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	normalized := NormalizeTime(strings.TrimSpace(s))
	parts := strings.Split(normalized, ":")
	if len(parts) != 3 {
		return 0, errs.Wrap(ErrInvalidTimeFormat, s)
	}
	h, errH := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	sec, errS := strconv.Atoi(parts[2])
	if errH != nil || errM != nil || errS != nil || h < 0 || m < 0 || sec < 0 || h > 23 || m > 59 || sec > 59 {
		return 0, errs.Wrap(ErrInvalidTimeFormat, s)
	}
	return TimeOfDay(h*3600 + m*60 + sec), nil
}

func (t TimeOfDay) Seconds() int {
	return int(t)
}

func (t TimeOfDay) String() string {
	s := int(t)
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, (s%3600)/60, s%60)
}

// Overlaps uses half-open intervals: [10:00,12:00) and [12:00,13:00) do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd TimeOfDay) bool {
	return aStart < bEnd && bStart < aEnd
}

type TimeSlot struct {
	start TimeOfDay
	end   TimeOfDay
}

func NewTimeSlot(start, end TimeOfDay) (TimeSlot, error) {
	if end <= start {
		return TimeSlot{}, ErrInvalidTimeRange
	}
	return TimeSlot{start: start, end: end}, nil
}

// ReconstructTimeSlot rebuilds a slot from storage where the ordering is already enforced.
func ReconstructTimeSlot(startSeconds, endSeconds int) TimeSlot {
	return TimeSlot{start: TimeOfDay(startSeconds), end: TimeOfDay(endSeconds)}
}

// ParseTimeSlot parses both ends and enforces end > start.
func ParseTimeSlot(start, end string) (TimeSlot, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return TimeSlot{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return TimeSlot{}, err
	}
	return NewTimeSlot(s, e)
}

func (ts TimeSlot) Start() TimeOfDay { return ts.start }
func (ts TimeSlot) End() TimeOfDay   { return ts.end }

func (ts TimeSlot) Duration() time.Duration {
	return time.Duration(ts.end-ts.start) * time.Second
}

func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return Overlaps(ts.start, ts.end, other.start, other.end)
}

// DayOfWeek follows ISO numbering: Monday=1 ... Sunday=7.
type DayOfWeek int

func NewDayOfWeek(d int) (DayOfWeek, error) {
	if d < 1 || d > 7 {
		return 0, ErrInvalidDayOfWeek
	}
	return DayOfWeek(d), nil
}

func (d DayOfWeek) Int() int { return int(d) }

func ISOWeekday(date time.Time) DayOfWeek {
	wd := date.Weekday()
	if wd == time.Sunday {
		return 7
	}
	return DayOfWeek(wd)
}

func ParseExamDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errs.Wrap(ErrInvalidDate, s)
	}
	return d, nil
}
