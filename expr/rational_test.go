package expr

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRational(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascas.expr")
	defer teardown()
	//
	for _, tc := range []struct {
		literal string
		printed string
		num     int64
		den     int64
	}{
		{"7", "7", 7, 1},
		{"0", "0", 0, 1},
		{"1.5", "15/10", 15, 10},
		{"0.001", "1/1000", 1, 1000},
		{"24.56", "2456/100", 2456, 100},
		{"0.0", "0", 0, 10},
		{"007", "7", 7, 1},
	} {
		r, err := ParseRational(tc.literal)
		require.NoError(t, err, tc.literal)
		assert.Equal(t, tc.printed, r.String(), tc.literal)
		assert.True(t, r.Equal(NewRational(tc.num, tc.den)), "%s is %s", tc.literal, r)
	}
}

func TestParseRationalMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascas.expr")
	defer teardown()
	//
	for _, literal := range []string{"", ".", "1.", ".5", "1.2.3", "-1", "1e5", "x"} {
		_, err := ParseRational(literal)
		assert.Error(t, err, "%q should not parse", literal)
	}
}

func TestRationalPredicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascas.expr")
	defer teardown()
	//
	var zero Rational
	assert.True(t, zero.IsZero())
	assert.Equal(t, "0", zero.String())
	assert.True(t, NewRational(0, 5).IsZero())
	assert.False(t, NewRational(0, 5).IsOne())
	assert.True(t, NewRational(5, 5).IsOne())
	assert.True(t, NewRational(-3, -3).IsOne())
	assert.False(t, NewRational(1, 2).IsOne())
	assert.False(t, NewRational(3, 6).Equal(NewRational(1, 2)))
	assert.Equal(t, "3/6", NewRational(3, 6).String())
}

func TestRationalSign(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascas.expr")
	defer teardown()
	//
	assert.Equal(t, 0, NewRational(0, -4).Sign())
	assert.Equal(t, 1, NewRational(3, 4).Sign())
	assert.Equal(t, 1, NewRational(-3, -4).Sign())
	assert.Equal(t, -1, NewRational(-3, 4).Sign())
	assert.Equal(t, -1, NewRational(3, -4).Sign())
}

func TestRationalFloat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascas.expr")
	defer teardown()
	//
	assert.InDelta(t, 0.5, NewRational(15, 30).Float64(), 1e-12)
	assert.True(t, math.IsInf(NewRational(1, 0).Float64(), 1))
	assert.True(t, math.IsInf(NewRational(-1, 0).Float64(), -1))
	assert.True(t, math.IsNaN(NewRational(0, 0).Float64()))
	//
	r, err := RationalFromFloat(0.75)
	require.NoError(t, err)
	assert.Equal(t, "3/4", r.String())
	r, err = RationalFromFloat(-2)
	require.NoError(t, err)
	assert.Equal(t, "-2", r.String())
	_, err = RationalFromFloat(math.NaN())
	assert.True(t, errors.Is(err, ErrNotANumber))
	_, err = RationalFromFloat(math.Inf(-1))
	assert.True(t, errors.Is(err, ErrNotANumber))
}
