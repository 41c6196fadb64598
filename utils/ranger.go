package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is an inclusive interval of indices.
type Range struct {
	A, B int
}

func (r Range) Length() int { return r.B - r.A + 1 }

func (r Range) Contains(i int) bool { return i >= r.A && i <= r.B }

func (r Range) String() string { return fmt.Sprintf("[%d, %d]", r.A, r.B) }

/*
ParseRange converts an index phrase into an inclusive Range over [0,max).

	":"   every index
	"end" the last index
	"N"   index N alone
	"a:b" a up to b, b excluded; "a:a" is index a alone
	":b"  0 up to b, b excluded
	"a:"  a up to the last index
*/
func ParseRange(dim string, max int) (r Range, err error) {
	var (
		lo, hi = 0, max
		bad    = func() error { return fmt.Errorf("range %q outside [0, %d): %w", dim, max, ErrInvalidArgument) }
	)
	dim = strings.TrimSpace(dim)
	switch first, last, split := strings.Cut(dim, ":"); {
	case dim == "end":
		lo = max - 1
	case !split:
		if lo, err = strconv.Atoi(dim); err != nil {
			return r, bad()
		}
		hi = lo + 1
	default:
		if first != "" {
			if lo, err = strconv.Atoi(first); err != nil {
				return r, bad()
			}
		}
		if last != "" {
			if hi, err = strconv.Atoi(last); err != nil {
				return r, bad()
			}
		}
		if hi == lo {
			hi = lo + 1
		}
	}
	if lo < 0 || hi > max || hi <= lo {
		return r, bad()
	}
	return Range{lo, hi - 1}, nil
}
