package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/dispatch/internal/money"
)

func TestRound(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.005", "1.01"},
		{"1.004", "1.00"},
		{"2.5", "2.50"},
		{"0", "0.00"},
		{"19.995", "20.00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, money.Format(money.Round(decimal.RequireFromString(tt.in))))
		})
	}
}

func TestPercentOf(t *testing.T) {
	got := money.PercentOf(decimal.RequireFromString("123.45"), decimal.RequireFromString("19"))
	assert.Equal(t, "23.46", money.Format(got))

	assert.True(t, money.PercentOf(decimal.NewFromInt(500), decimal.Zero).IsZero())
}

func TestSum(t *testing.T) {
	got := money.Sum(decimal.RequireFromString("60.00"), decimal.RequireFromString("40.00"), decimal.RequireFromString("0.10"))
	assert.Equal(t, "100.10", money.Format(got))
	assert.True(t, money.Sum().IsZero())
}

func TestWithinScale(t *testing.T) {
	tests := []struct {
		in     string
		places int32
		want   bool
	}{
		{"3.34", 2, true},
		{"3.335", 2, false},
		{"3.335", 3, true},
		{"19.125", 2, false},
		{"19.10", 2, true},
		{"-0.001", 2, false},
		{"1200", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, money.WithinScale(decimal.RequireFromString(tt.in), tt.places))
		})
	}
}
