package vecmath

import (
	"math"
	"strconv"
	"strings"
)

// sign mirrors the usual scalar sign: ±0 and NaN are returned unchanged.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return x
}

func clamp(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}

func frac(x float64) float64 {
	return x - math.Floor(x)
}

func exp2(x float64) float64 {
	return math.Pow(2, x)
}

func degrees(radians float64) float64 {
	return 180 * radians / math.Pi
}

func bool2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func formatComponents(cs ...float64) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = strconv.FormatFloat(c, 'f', -1, 64)
	}
	return strings.Join(parts, " ")
}

func parseComponents(s string, n int) ([]float64, error) {
	fields := strings.Fields(s)
	if len(fields) < n {
		return nil, errorf("need %d components, got %d in %q", n, len(fields), s)
	}
	out := make([]float64, n)
	for i := range out {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errorf("component %d: %v", i, err)
		}
		out[i] = f
	}
	return out, nil
}

// toFloat reports the float64 value of a numeric scalar.
func toFloat(a any) (float64, bool) {
	switch n := a.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// toFloats converts a numeric sequence into a []float64.
func toFloats(a any) ([]float64, bool) {
	switch s := a.(type) {
	case []float64:
		return s, true
	case []float32:
		out := make([]float64, len(s))
		for i, f := range s {
			out[i] = float64(f)
		}
		return out, true
	case []int:
		out := make([]float64, len(s))
		for i, n := range s {
			out[i] = float64(n)
		}
		return out, true
	case []any:
		out := make([]float64, len(s))
		for i, e := range s {
			f, ok := toFloat(e)
			if !ok {
				return nil, false
			}
			out[i] = f
		}
		return out, true
	case [2]float64:
		return s[:], true
	case [3]float64:
		return s[:], true
	case [4]float64:
		return s[:], true
	case [9]float64:
		return s[:], true
	}
	return nil, false
}

// scalars converts every argument to float64, failing on the first
// non-numeric one.
func scalars(args []any) ([]float64, bool) {
	out := make([]float64, len(args))
	for i, a := range args {
		f, ok := toFloat(a)
		if !ok {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

func hasKeys(m map[string]float64, keys ...string) bool {
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			return false
		}
	}
	return true
}
