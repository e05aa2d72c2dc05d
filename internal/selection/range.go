package selection

import "math"

// Unbounded marks an open range end, as in "2:".
const Unbounded = math.MaxInt

type strategy int

const (
	forwardStrategy strategy = iota
	reverseStrategy
	negativeStrategy
)

// Range is an immutable selection descriptor. Start and End keep their
// original signed values; negative bounds are resolved against the actual
// token count at selection time. A Range is safe to share across any number
// of concurrent Select calls.
type Range struct {
	Start, End int

	negative bool
	reversed bool
	strategy strategy
}

// New derives the negative and reversed flags from the raw signed bounds and
// fixes the selection strategy once. Reversal is a raw numeric comparison on
// the original values, so a range can be both reversed and negative; the
// negative strategy owns any range with a negative bound because resolving it
// needs the total token count either way.
func New(start, end int) Range {
	r := Range{
		Start:    start,
		End:      end,
		negative: start < 0 || end < 0,
		reversed: end < start,
	}
	switch {
	case r.reversed && !r.negative:
		r.strategy = reverseStrategy
	case r.negative:
		r.strategy = negativeStrategy
	default:
		r.strategy = forwardStrategy
	}
	return r
}

// Reversed reports whether the range's end is numerically below its start.
func (r Range) Reversed() bool {
	return r.reversed
}

// Negative reports whether either bound is end-relative.
func (r Range) Negative() bool {
	return r.negative
}
