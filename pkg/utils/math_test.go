package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundDecimal_HalfToEven(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.125, 0.12},
		{0.135, 0.14},
		{2.675, 2.68},
		{1.005, 1.0},
		{-0.125, -0.12},
		{74.0, 74.0},
		{69.999, 70.0},
		{33.333333, 33.33},
		{66.666666, 66.67},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundDecimal(tt.in, 2), "RoundDecimal(%v, 2)", tt.in)
	}
}

func TestRoundDecimal_IsDeterministic(t *testing.T) {
	v := 70*0.6 + 80*0.4
	first := RoundDecimal(v, 2)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, RoundDecimal(v, 2))
	}
}

func TestRoundDecimal_NonFinitePassThrough(t *testing.T) {
	assert.True(t, math.IsNaN(RoundDecimal(math.NaN(), 2)))
	assert.True(t, math.IsInf(RoundDecimal(math.Inf(1), 2), 1))
}

func TestRemoveEmptyStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, RemoveEmptyStrings([]string{"", "a", "", "b"}))
	assert.Nil(t, RemoveEmptyStrings([]string{"", ""}))
}
