package network

import (
	"fmt"
)

// Delay is the modeled queuing delay of a link. A saturated link has an
// infinite delay, represented by a dedicated state rather than by a numeric
// value.
type Delay struct {
	value     float64
	saturated bool
}

// Saturated is the delay of a link whose flow reached its capacity.
var Saturated = Delay{saturated: true}

// FiniteDelay returns a finite delay of the given value.
func FiniteDelay(v float64) Delay {
	return Delay{value: v}
}

// LinkDelay returns the delay of a link carrying flow with the given packet
// size over a cable of the given capacity: packet / (capacity - flow), or
// Saturated if flow >= capacity.
func LinkDelay(flow float64, packet float64, capacity int) Delay {
	gap := float64(capacity) - flow
	if gap <= 0 {
		return Saturated
	}
	return Delay{value: packet / gap}
}

// IsSaturated returns true if the delay is infinite.
func (d Delay) IsSaturated() bool {
	return d.saturated
}

// Value returns the delay's value. The second returned value is false if the
// delay is infinite.
func (d Delay) Value() (float64, bool) {
	if d.saturated {
		return 0, false
	}
	return d.value, true
}

// String returns "∞" for an infinite delay and the value with four decimals
// otherwise.
func (d Delay) String() string {
	if d.saturated {
		return "∞"
	}
	return fmt.Sprintf("%.4f", d.value)
}

// AverageDelay returns the average of the finite delays. Infinite delays are
// excluded from the average. The second returned value is false if there is
// no finite delay to average, which is distinct from a zero average.
func AverageDelay(delays []Delay) (float64, bool) {
	sum := 0.0
	n := 0
	for _, d := range delays {
		if d.saturated {
			continue
		}
		sum += d.value
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
