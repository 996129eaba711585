package mathutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xeptore/jamlist/mathutil"
)

func TestRoundDiv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     int
		expected int
	}{
		{name: "zero", a: 0, b: 60, expected: 0},
		{name: "exact", a: 300, b: 60, expected: 5},
		{name: "below_half", a: 29, b: 60, expected: 0},
		{name: "half", a: 30, b: 60, expected: 1},
		{name: "above_half", a: 269, b: 60, expected: 4},
		{name: "half_above_four", a: 270, b: 60, expected: 5},
		{name: "negative_half", a: -90, b: 60, expected: -2},
		{name: "negative_below_half", a: -80, b: 60, expected: -1},
		{name: "negative_divisor", a: 90, b: -60, expected: -2},
		{name: "both_negative", a: -90, b: -60, expected: 2},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.expected, mathutil.RoundDiv(test.a, test.b))
		})
	}

	t.Run("unsigned", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, uint(3), mathutil.RoundDiv(uint(150), uint(60)))
		assert.Equal(t, uint(2), mathutil.RoundDiv(uint(149), uint(60)))
	})
}
