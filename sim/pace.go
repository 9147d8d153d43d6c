package sim

import "time"

// Pace buckets an animation delay the way a speed slider labels it.
type Pace int

const (
	PaceNormal Pace = iota
	PaceFast
	PaceSlow
)

// Pace thresholds.
const (
	FastBelow = 400 * time.Millisecond
	SlowAbove = 1200 * time.Millisecond
)

// PaceOf classifies d: below FastBelow is fast, above SlowAbove is slow.
func PaceOf(d time.Duration) Pace {
	switch {
	case d < FastBelow:
		return PaceFast
	case d > SlowAbove:
		return PaceSlow
	default:
		return PaceNormal
	}
}

func (p Pace) String() string {
	switch p {
	case PaceFast:
		return "fast"
	case PaceSlow:
		return "slow"
	default:
		return "normal"
	}
}
