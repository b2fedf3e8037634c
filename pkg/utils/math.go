// pkg/utils/math.go
package utils

import "math"

// Unsigned covers the counter types used for life, gold and lives.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// SaturatingSub returns a-b, or 0 when b > a.
func SaturatingSub[T Unsigned](a, b T) T {
	if b > a {
		return 0
	}
	return a - b
}

// SaturatingAdd returns a+b, clamped to limit on overflow.
func SaturatingAdd[T Unsigned](a, b, limit T) T {
	if b > limit || a > limit-b {
		return limit
	}
	return a + b
}

// RoundUint32 rounds x half away from zero and clamps it into the uint32 range.
func RoundUint32(x float64) uint32 {
	r := math.Round(x)
	if r <= 0 || math.IsNaN(r) {
		return 0
	}
	if r >= math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(r)
}
