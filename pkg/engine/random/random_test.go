package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameSeedSameStream(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Range(3, 17), b.Range(3, 17))
		assert.Equal(t, a.Float64(), b.Float64())
	}
	assert.Equal(t, int64(42), a.Seed())
}

func TestRangeBounds(t *testing.T) {
	r := New(1)
	for i := 0; i < 1000; i++ {
		v := r.Range(5, 8)
		assert.GreaterOrEqual(t, v, 5)
		assert.Less(t, v, 8)
	}
	assert.Equal(t, 4, r.Range(4, 5))
	assert.Panics(t, func() { r.Range(3, 3) })
}

func TestChanceExtremes(t *testing.T) {
	r := New(9)
	for i := 0; i < 100; i++ {
		assert.False(t, r.Chance(0))
		assert.True(t, r.Chance(1))
	}
}
