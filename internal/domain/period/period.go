package period

import (
	"errors"
	"fmt"
	"time"
)

const week = 7 * 24 * time.Hour

// DefaultAnchor is the first instant of week DefaultAnchorWeek.
var DefaultAnchor = time.Date(2024, time.September, 17, 0, 0, 0, 0, time.UTC)

const DefaultAnchorWeek = 3

var ErrWeekOutOfRange = errors.New("week out of range")

// Period identifies one scoring week within a season.
type Period struct {
	Week   int
	Season int
}

func (p Period) String() string {
	return fmt.Sprintf("%d/w%d", p.Season, p.Week)
}

// Clock supplies wall-clock time.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

// Resolver maps an instant to the scoring period containing it.
//
// Weeks are counted in whole 7-day steps from the anchor and are not
// bounded: instants far after the anchor produce weeks beyond any real
// season, and instants before it produce weeks below the anchor week,
// down to negative numbers. The season is the calendar year of the instant,
// so a December season spilling into January is split across two seasons.
// Callers that need a bounded season apply a WeekPolicy on top.
type Resolver struct {
	anchor     time.Time
	anchorWeek int
	loc        *time.Location
}

func NewResolver(anchor time.Time, anchorWeek int) Resolver {
	return Resolver{anchor: anchor, anchorWeek: anchorWeek, loc: time.UTC}
}

func DefaultResolver() Resolver {
	return NewResolver(DefaultAnchor, DefaultAnchorWeek)
}

// WithLocation returns a copy that derives the season year in loc.
func (r Resolver) WithLocation(loc *time.Location) Resolver {
	if loc != nil {
		r.loc = loc
	}
	return r
}

func (r Resolver) Resolve(now time.Time) Period {
	loc := r.loc
	if loc == nil {
		loc = time.UTC
	}
	return Period{
		Week:   floorDiv(now.Sub(r.anchor), week) + r.anchorWeek,
		Season: now.In(loc).Year(),
	}
}

func (r Resolver) Current(clock Clock) Period {
	if clock == nil {
		clock = SystemClock{}
	}
	return r.Resolve(clock.Now())
}

func (r Resolver) Anchor() (time.Time, int) {
	return r.anchor, r.anchorWeek
}

func floorDiv(d, unit time.Duration) int {
	q := d / unit
	if d%unit < 0 {
		q--
	}
	return int(q)
}

// WeekPolicy bounds the weeks an administrator may schedule games in.
// A zero bound is open.
type WeekPolicy struct {
	MinWeek int
	MaxWeek int
}

func (p WeekPolicy) Validate(v Period) error {
	if p.MinWeek != 0 && v.Week < p.MinWeek {
		return fmt.Errorf("%w: week %d is before %d", ErrWeekOutOfRange, v.Week, p.MinWeek)
	}
	if p.MaxWeek != 0 && v.Week > p.MaxWeek {
		return fmt.Errorf("%w: week %d is after %d", ErrWeekOutOfRange, v.Week, p.MaxWeek)
	}
	return nil
}
