package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaturatingSub(t *testing.T) {
	assert.Equal(t, uint32(5), SaturatingSub[uint32](15, 10))
	assert.Equal(t, uint32(0), SaturatingSub[uint32](10, 15))
	assert.Equal(t, uint8(0), SaturatingSub[uint8](0, 1))
}

func TestSaturatingAdd(t *testing.T) {
	assert.Equal(t, uint32(25), SaturatingAdd[uint32](10, 15, math.MaxUint32))
	assert.Equal(t, uint32(math.MaxUint32), SaturatingAdd[uint32](math.MaxUint32-1, 5, math.MaxUint32))
	assert.Equal(t, uint16(100), SaturatingAdd[uint16](90, 20, 100))
}

func TestRoundUint32(t *testing.T) {
	assert.Equal(t, uint32(60), RoundUint32(60.0))
	assert.Equal(t, uint32(3), RoundUint32(2.5))
	assert.Equal(t, uint32(0), RoundUint32(-4))
	assert.Equal(t, uint32(0), RoundUint32(math.NaN()))
	assert.Equal(t, uint32(math.MaxUint32), RoundUint32(1e12))
}
