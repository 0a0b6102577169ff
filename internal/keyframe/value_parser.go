// Package keyframe parses the value strings used by data/valentine.yaml.
//
// Two formats are supported:
//   - Range: "3" (fixed) or "[2 5]" (uniform random between min and max)
//   - Keyframes: "0,0 -10,20 10,40 0,100": value,timePercent pairs,
//     optionally prefixed with an interpolation keyword ("EaseOut 0,0 1,100")
package keyframe

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strconv"
	"strings"
)

// Keyframe represents a single point of an animation curve.
type Keyframe struct {
	Time  float64 // Normalized time (0-1)
	Value float64 // Value at this keyframe
}

// Range is a closed interval sampled uniformly.
type Range struct {
	Min float64
	Max float64
}

// Fixed returns a Range that always samples v.
func Fixed(v float64) Range {
	return Range{Min: v, Max: v}
}

// Sample returns a random value in [Min, Max).
// rng may be nil, in which case the global source is used.
func (r Range) Sample(rng *rand.Rand) float64 {
	return RandomInRange(rng, r.Min, r.Max)
}

// String formats the range the way ParseRange accepts it.
func (r Range) String() string {
	if r.Min == r.Max {
		return strconv.FormatFloat(r.Min, 'g', -1, 64)
	}
	return fmt.Sprintf("[%s %s]",
		strconv.FormatFloat(r.Min, 'g', -1, 64),
		strconv.FormatFloat(r.Max, 'g', -1, 64))
}

// ParseRange parses "3", "[3]" or "[2 5]".
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Range{}, fmt.Errorf("empty range")
	}

	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return Range{}, fmt.Errorf("unterminated range %q", s)
		}
		parts := strings.Fields(strings.TrimSuffix(strings.TrimPrefix(s, "["), "]"))
		switch len(parts) {
		case 1:
			v, err := strconv.ParseFloat(parts[0], 64)
			if err != nil {
				return Range{}, fmt.Errorf("invalid range %q: %w", s, err)
			}
			return Fixed(v), nil
		case 2:
			lo, err := strconv.ParseFloat(parts[0], 64)
			if err != nil {
				return Range{}, fmt.Errorf("invalid range min %q: %w", s, err)
			}
			hi, err := strconv.ParseFloat(parts[1], 64)
			if err != nil {
				return Range{}, fmt.Errorf("invalid range max %q: %w", s, err)
			}
			if lo > hi {
				return Range{}, fmt.Errorf("range %q has min > max", s)
			}
			return Range{Min: lo, Max: hi}, nil
		default:
			return Range{}, fmt.Errorf("range %q must have one or two values", s)
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Range{}, fmt.Errorf("invalid value %q: %w", s, err)
	}
	return Fixed(v), nil
}

// interpolationKeywords are the names accepted in front of a keyframe list.
var interpolationKeywords = []string{"Linear", "EaseIn", "EaseOut", "FastInOutWeak"}

// ParseKeyframes parses "value,timePercent" pairs.
//
// Times greater than 1 are treated as percentages and divided by 100,
// so "0,0 1,100" and "0,0 1,1" describe the same curve. The result is
// sorted by time.
func ParseKeyframes(s string) ([]Keyframe, string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, "", fmt.Errorf("empty keyframes")
	}

	interpolation := ""
	fields := strings.Fields(s)
	for _, keyword := range interpolationKeywords {
		if fields[0] == keyword {
			interpolation = keyword
			fields = fields[1:]
			break
		}
	}

	keyframes := make([]Keyframe, 0, len(fields))
	for _, part := range fields {
		pair := strings.Split(part, ",")
		if len(pair) != 2 {
			return nil, "", fmt.Errorf("keyframe %q must be value,time", part)
		}
		val, err := strconv.ParseFloat(pair[0], 64)
		if err != nil {
			return nil, "", fmt.Errorf("invalid keyframe value %q: %w", part, err)
		}
		tm, err := strconv.ParseFloat(pair[1], 64)
		if err != nil {
			return nil, "", fmt.Errorf("invalid keyframe time %q: %w", part, err)
		}
		if tm > 1 {
			tm /= 100.0
		}
		keyframes = append(keyframes, Keyframe{Time: tm, Value: val})
	}

	sort.SliceStable(keyframes, func(i, j int) bool { return keyframes[i].Time < keyframes[j].Time })
	return keyframes, interpolation, nil
}

// EvaluateKeyframes returns the curve value at normalized time t.
func EvaluateKeyframes(keyframes []Keyframe, t float64, interpolation string) float64 {
	if len(keyframes) == 0 {
		return 0
	}
	if len(keyframes) == 1 {
		return keyframes[0].Value
	}

	t = math.Max(0, math.Min(1, t))

	if t < keyframes[0].Time {
		return keyframes[0].Value
	}

	for i := 0; i < len(keyframes)-1; i++ {
		k0 := keyframes[i]
		k1 := keyframes[i+1]

		if t >= k0.Time && t <= k1.Time {
			duration := k1.Time - k0.Time
			if duration <= 0 {
				return k0.Value
			}
			ratio := (t - k0.Time) / duration

			switch interpolation {
			case "EaseIn":
				ratio = ratio * ratio
			case "EaseOut":
				ratio = 1 - (1-ratio)*(1-ratio)
			case "FastInOutWeak":
				ratio = ratio * ratio * (3 - 2*ratio)
			}
			return k0.Value + ratio*(k1.Value-k0.Value)
		}
	}

	return keyframes[len(keyframes)-1].Value
}

// RandomInRange returns a random float64 in [min, max).
func RandomInRange(rng *rand.Rand, min, max float64) float64 {
	if min >= max {
		return min
	}
	if rng == nil {
		return min + rand.Float64()*(max-min)
	}
	return min + rng.Float64()*(max-min)
}
