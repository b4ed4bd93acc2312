package interval

import (
	"math"
	"strconv"
	"strings"

	"github.com/leapstack-labs/leaprange/pkg/core"
)

// Count converts a dynamically typed count argument to a non-negative int.
// Integer kinds are taken as is and floats are truncated toward zero.
// Strings hold a number written either way and follow the same rule, so
// "3" and "3.9" both give 3. Anything else, or a negative value, fails with
// core.ErrInvalidArgument.
func Count(v any) (int, error) {
	var n int64
	switch x := v.(type) {
	case int:
		n = int64(x)
	case int8:
		n = int64(x)
	case int16:
		n = int64(x)
	case int32:
		n = int64(x)
	case int64:
		n = x
	case uint:
		if uint64(x) > math.MaxInt64 {
			return 0, tooBig(v)
		}
		n = int64(x)
	case uint8:
		n = int64(x)
	case uint16:
		n = int64(x)
	case uint32:
		n = int64(x)
	case uint64:
		if x > math.MaxInt64 {
			return 0, tooBig(v)
		}
		n = int64(x)
	case float32:
		return Count(float64(x))
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) || math.Abs(x) >= math.MaxInt64 {
			return 0, core.Errorf(core.ErrInvalidArgument, "count", "%v out of integer range", x)
		}
		n = int64(x)
	case string:
		digits := strings.ReplaceAll(strings.TrimSpace(x), "_", "")
		parsed, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			f, ferr := strconv.ParseFloat(digits, 64)
			if ferr != nil {
				return 0, core.Errorf(core.ErrInvalidArgument, "count", "no implicit conversion of %q into Integer", x)
			}
			return Count(f)
		}
		n = parsed
	default:
		return 0, core.Errorf(core.ErrInvalidArgument, "count", "no implicit conversion of %T into Integer", v)
	}

	if n < 0 || n > math.MaxInt {
		return 0, tooBig(v)
	}
	return int(n), nil
}

func tooBig(v any) error {
	return core.Errorf(core.ErrInvalidArgument, "count", "negative array size (or size too big): %v", v)
}
