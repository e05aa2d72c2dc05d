package selection

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/k0kubun/pp"
)

var parseDebugLog = false

func init() {
	if v, err := strconv.ParseBool(os.Getenv("PICK_DEBUG")); v && err == nil {
		parseDebugLog = true
	}
}

// ParseRange parses one range argument: "N", "N:M", "N:", ":M" or ":".
// N and M are signed; negative values are end-relative. A missing start is 0
// and a missing end is Unbounded.
//
// Exclusive mode drops the end bound of two-bound ranges at parse time:
// ascending ranges lose their last index, descending ranges their first.
// Single indices, equal bounds and unbounded ends are untouched.
func ParseRange(s string, exclusive bool) (Range, error) {
	rawStart, rawEnd, isRange := strings.Cut(s, ":")
	if !isRange {
		n, err := strconv.Atoi(rawStart)
		if err != nil {
			return Range{}, fmt.Errorf("invalid range %q: %w", s, err)
		}
		return New(n, n), nil
	}

	start := 0
	if rawStart != "" {
		n, err := strconv.Atoi(rawStart)
		if err != nil {
			return Range{}, fmt.Errorf("invalid range %q: %w", s, err)
		}
		start = n
	}

	end := Unbounded
	if rawEnd != "" {
		n, err := strconv.Atoi(rawEnd)
		if err != nil {
			return Range{}, fmt.Errorf("invalid range %q: %w", s, err)
		}
		end = n
	}

	if exclusive && end != Unbounded {
		switch {
		case end > start:
			end--
		case end < start:
			start--
		}
	}
	return New(start, end), nil
}

// ParseRanges parses the positional range arguments in order.
func ParseRanges(args []string, exclusive bool) ([]Range, error) {
	ranges := make([]Range, 0, len(args))
	for _, arg := range args {
		r, err := ParseRange(arg, exclusive)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}

	if parseDebugLog {
		pp.Println(ranges)
	}
	return ranges, nil
}
