package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFormFloat(t *testing.T) {
	cases := map[string]float64{
		"175":    175,
		" 70.5 ": 70.5,
		"1e2":    100,
		"":       0,
		"abc":    0,
		"70kg":   0,
		"NaN":    0,
		"Inf":    0,
		"-Inf":   0,
		"-12":    -12,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseFormFloat(in), "input %q", in)
	}
}

func TestParseFormInt(t *testing.T) {
	cases := map[string]int{
		"30":    30,
		"30.9":  30,
		"-0.5":  0,
		"":      0,
		"x":     0,
		"1e12":  0,
		" 120 ": 120,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseFormInt(in), "input %q", in)
	}
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 3, RoundHalfUp(2.5))
	assert.Equal(t, -2, RoundHalfUp(-2.5))
	assert.Equal(t, -84, RoundHalfUp(-84.5))
	assert.Equal(t, 1696, RoundHalfUp(1695.667))
	assert.Equal(t, 1384, RoundHalfUp(1383.683))
	assert.Equal(t, 1383, RoundHalfUp(1383.49))
	assert.Equal(t, 0, RoundHalfUp(-0.4))
}
