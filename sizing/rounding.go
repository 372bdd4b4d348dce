package sizing

import (
	"fmt"
	"math"
	"strings"
)

// Rounding is a caller-selected rule for turning an estimate into a layer width.
type Rounding string

const (
	RoundNone  Rounding = "none"
	RoundFloor Rounding = "floor"
	RoundHalf  Rounding = "round"
	RoundCeil  Rounding = "ceil"
	RoundPow2  Rounding = "pow2"
)

// Roundings lists every supported policy in display order.
var Roundings = []Rounding{RoundNone, RoundFloor, RoundHalf, RoundCeil, RoundPow2}

// ParseRounding parses a policy name. The empty string means RoundNone.
func ParseRounding(s string) (Rounding, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return RoundNone, nil
	}
	for _, r := range Roundings {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown rounding %q (want one of %v)", s, Roundings)
}

// Apply converts x according to the policy. RoundNone returns x unchanged.
func (r Rounding) Apply(x float64) float64 {
	switch r {
	case RoundFloor:
		return math.Floor(x)
	case RoundHalf:
		return math.Round(x)
	case RoundCeil:
		return math.Ceil(x)
	case RoundPow2:
		return float64(SmallestPowerOfTwo(x))
	default:
		return x
	}
}

// SmallestPowerOfTwo returns the smallest power of two >= x. Values <= 1 give 1.
func SmallestPowerOfTwo(x float64) int {
	if x <= 1 {
		return 1
	}
	return int(math.Pow(2, math.Ceil(math.Log2(x))))
}
