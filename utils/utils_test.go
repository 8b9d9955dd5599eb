package utils_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edu-luc-cs-leo/comp-271-su-2025-week-05-jknott1/utils"
)

func TestGetZero(t *testing.T) {
	assert.Equal(t, "", utils.GetZero[string]())
	assert.Equal(t, 0, utils.GetZero[int]())
	assert.Nil(t, utils.GetZero[*int]())
}

func TestCheckedMul(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want int
		ok   bool
	}{
		{name: "small values", a: 4, b: 2, want: 8, ok: true},
		{name: "zero operand", a: 0, b: 2, want: 0, ok: true},
		{name: "negative operand", a: -3, b: 2, want: -6, ok: true},
		{name: "doubling the largest half", a: math.MaxInt / 2, b: 2, want: math.MaxInt - 1, ok: true},
		{name: "doubling past max int", a: math.MaxInt/2 + 1, b: 2, ok: false},
		{name: "min int times minus one", a: math.MinInt, b: -1, ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := utils.CheckedMul(tc.a, tc.b)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}

	t.Run("unsigned overflow", func(t *testing.T) {
		_, ok := utils.CheckedMul[uint8](200, 2)
		assert.False(t, ok)

		got, ok := utils.CheckedMul[uint8](100, 2)
		assert.True(t, ok)
		assert.Equal(t, uint8(200), got)
	})
}
