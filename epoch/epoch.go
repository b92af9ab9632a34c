// Package epoch normalizes calendar timestamps into the day-of-year form
// required by the rotation backends.
//
// A timestamp is a slice of at least three integers
// [year, month, day, hour, minute, second, ...]; missing trailing fields
// default to zero and fields beyond the seventh are ignored.
package epoch

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrInvalidTime is returned for a timestamp with fewer than three
	// fields or an invalid calendar date.
	ErrInvalidTime = errors.New("invalid time")

	// ErrUTRange is returned when a fractional-hour UT lies outside [0, 24].
	ErrUTRange = errors.New("UT out of range, required: 0 <= UT <= 24")
)

// Encoded is the backend epoch form [year, day-of-year, hour, minute, second].
// Day-of-year is 1-based (Jan 1 = 1).
type Encoded [5]int

// Pad returns a copy of t with exactly length elements: truncated if longer,
// right-padded with zeros if shorter. t must have at least three elements.
func Pad(t []int, length int) ([]int, error) {
	if len(t) < 3 {
		return nil, fmt.Errorf("%w: need at least [year, month, day], got %d fields", ErrInvalidTime, len(t))
	}

	out := make([]int, length)
	copy(out, t)
	return out, nil
}

// ToDayOfYear converts [y, m, d, h, min, sec] (padded/truncated to six
// fields) to the backend epoch form.
func ToDayOfYear(t []int) (Encoded, error) {
	p, err := Pad(t, 6)
	if err != nil {
		return Encoded{}, err
	}

	// time.Date normalizes out-of-range fields (month 13 becomes January of
	// the next year), so check the components survived unchanged.
	d := time.Date(p[0], time.Month(p[1]), p[2], 0, 0, 0, 0, time.UTC)
	if d.Year() != p[0] || int(d.Month()) != p[1] || d.Day() != p[2] {
		return Encoded{}, fmt.Errorf("%w: no such date %04d-%02d-%02d", ErrInvalidTime, p[0], p[1], p[2])
	}

	return Encoded{p[0], d.YearDay(), p[3], p[4], p[5]}, nil
}

// HoursToHMS converts a fractional-hour universal time in [0, 24] to integer
// (hour, minute, second), carrying rounding overflow from seconds upward.
// A result of exactly 24h is reported as (0, 0, 0) unless keep24 is set.
func HoursToHMS(ut float64, keep24 bool) (hour, minute, second int, err error) {
	if ut < 0 || ut > 24 {
		return 0, 0, 0, fmt.Errorf("%w: %v", ErrUTRange, ut)
	}

	hour = int(ut)
	minute = int((ut - float64(hour)) * 60.0)
	second = int(math.Round((ut - float64(hour) - float64(minute)/60.0) * 3600.0))

	if second == 60 {
		second = 0
		minute++
	}
	if minute == 60 {
		minute = 0
		hour++
	}

	if hour == 24 && !keep24 {
		return 0, 0, 0, nil
	}
	return hour, minute, second, nil
}
