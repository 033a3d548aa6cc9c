package rupee

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundHalfAwayFromZero(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  int64
	}{
		{"exact", "100", 100},
		{"rounds down", "100.49", 100},
		{"ties round up", "100.50", 101},
		{"rounds up", "100.51", 101},
		{"negative ties round away from zero", "-100.50", -101},
		{"zero", "0", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d, err := decimal.NewFromString(c.in)
			assert.NoError(t, err)
			assert.Equal(t, c.out, int64(RoundHalfAwayFromZero(d)))
		})
	}
}

func TestClampNonNegative(t *testing.T) {
	assert.Equal(t, Zero, Amount(-500).ClampNonNegative())
	assert.Equal(t, Amount(500), Amount(500).ClampNonNegative())
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, Amount(10), Min(Amount(10), Amount(20)))
	assert.Equal(t, Amount(20), Max(Amount(10), Amount(20)))
}

func TestDecimalRoundTrip(t *testing.T) {
	a := FromInt(150000)
	assert.True(t, a.Decimal().Equal(decimal.NewFromInt(150000)))
}
