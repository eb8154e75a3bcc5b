// Package temporal maps instants onto calendar buckets.
//
// All truncation happens in UTC. A bucket is identified both by its start
// instant and by an absolute moment: the number of whole units between the
// Unix epoch bucket and the bucket, which is monotonic with real time.
package temporal

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrUnsupportedUnit = errors.New("unsupported granularity unit")

// Unit is a bucket granularity.
type Unit int

const (
	Hour Unit = iota + 1
	Day
	Week
	Month
	Year
)

const (
	secondsPerHour = 3600
	secondsPerDay  = 24 * secondsPerHour

	// 1970-01-01 was a Thursday; the ISO week containing it starts on 1969-12-29.
	epochWeekOffsetDays = 3
)

// Bucket is the truncated moment for one instant under one unit.
type Bucket struct {
	Start  time.Time
	Moment int64
}

type unitDef struct {
	name     string
	truncate func(t time.Time) time.Time
	encode   func(start time.Time) int64
	decode   func(moment int64) time.Time
}

// units is the dispatch table for every supported granularity.
// To add a unit: add a constant above and register it here.
var units = map[Unit]unitDef{
	Hour: {
		name:     "hour",
		truncate: func(t time.Time) time.Time { return time.Unix(floorDiv(t.Unix(), secondsPerHour)*secondsPerHour, 0).UTC() },
		encode:   func(s time.Time) int64 { return floorDiv(s.Unix(), secondsPerHour) },
		decode:   func(m int64) time.Time { return time.Unix(m*secondsPerHour, 0).UTC() },
	},
	Day: {
		name:     "day",
		truncate: startOfDay,
		encode:   daysSinceEpoch,
		decode:   func(m int64) time.Time { return time.Unix(m*secondsPerDay, 0).UTC() },
	},
	Week: {
		name: "week",
		truncate: func(t time.Time) time.Time {
			d := startOfDay(t)
			// Monday = 0 ... Sunday = 6
			back := (int(d.Weekday()) + 6) % 7
			return d.AddDate(0, 0, -back)
		},
		encode: func(s time.Time) int64 { return floorDiv(daysSinceEpoch(s)+epochWeekOffsetDays, 7) },
		decode: func(m int64) time.Time { return time.Unix((m*7-epochWeekOffsetDays)*secondsPerDay, 0).UTC() },
	},
	Month: {
		name: "month",
		truncate: func(t time.Time) time.Time {
			u := t.UTC()
			return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
		},
		encode: func(s time.Time) int64 { return int64(s.Year()-1970)*12 + int64(s.Month()-1) },
		decode: func(m int64) time.Time {
			return time.Date(1970+int(floorDiv(m, 12)), time.Month(m-floorDiv(m, 12)*12+1), 1, 0, 0, 0, 0, time.UTC)
		},
	},
	Year: {
		name: "year",
		truncate: func(t time.Time) time.Time {
			return time.Date(t.UTC().Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		},
		encode: func(s time.Time) int64 { return int64(s.Year() - 1970) },
		decode: func(m int64) time.Time { return time.Date(1970+int(m), time.January, 1, 0, 0, 0, 0, time.UTC) },
	},
}

// Units returns every supported unit, finest first.
func Units() []Unit {
	return []Unit{Hour, Day, Week, Month, Year}
}

// ParseUnit resolves a case-insensitive unit name such as "day".
func ParseUnit(s string) (Unit, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, u := range Units() {
		if units[u].name == name {
			return u, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedUnit, s)
}

// Valid reports whether u is a registered unit.
func (u Unit) Valid() bool {
	_, ok := units[u]
	return ok
}

func (u Unit) String() string {
	if def, ok := units[u]; ok {
		return def.name
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// Truncate returns the bucket containing t.
func Truncate(t time.Time, u Unit) (Bucket, error) {
	def, ok := units[u]
	if !ok {
		return Bucket{}, fmt.Errorf("%w: %s", ErrUnsupportedUnit, u)
	}
	start := def.truncate(t)
	return Bucket{Start: start, Moment: def.encode(start)}, nil
}

// FromMoment converts an absolute moment back to the start of its bucket.
func FromMoment(moment int64, u Unit) (time.Time, error) {
	def, ok := units[u]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %s", ErrUnsupportedUnit, u)
	}
	return def.decode(moment), nil
}

func startOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func daysSinceEpoch(t time.Time) int64 {
	return floorDiv(t.Unix(), secondsPerDay)
}

// floorDiv rounds toward negative infinity so pre-epoch instants land in the right bucket.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
