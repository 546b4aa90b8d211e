package util

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatUnits(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		decimals uint8
		places   int32
		want     string
	}{
		{
			name:     "whole token",
			amount:   "1000000000000000000",
			decimals: 18,
			places:   4,
			want:     "1.0000",
		},
		{
			name:     "half token",
			amount:   "500000000000000000",
			decimals: 18,
			places:   4,
			want:     "0.5000",
		},
		{
			name:     "sub-display dust rounds half up",
			amount:   "150000000000000",
			decimals: 18,
			places:   4,
			want:     "0.0002",
		},
		{
			name:     "zero decimals",
			amount:   "42",
			decimals: 0,
			places:   2,
			want:     "42.00",
		},
		{
			name:     "six decimal token",
			amount:   "1234567",
			decimals: 6,
			places:   4,
			want:     "1.2346",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, ok := new(big.Int).SetString(tt.amount, 10)
			require.True(t, ok)

			got, err := FormatUnits(amount, tt.decimals, tt.places)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseUnits(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		decimals uint8
		want     string
	}{
		{
			name:     "whole token",
			value:    "1",
			decimals: 18,
			want:     "1000000000000000000",
		},
		{
			name:     "fractional",
			value:    "1.5",
			decimals: 6,
			want:     "1500000",
		},
		{
			name:     "truncates below token resolution",
			value:    "0.1234567",
			decimals: 6,
			want:     "123456",
		},
		{
			name:     "zero",
			value:    "0",
			decimals: 18,
			want:     "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUnits(tt.value, tt.decimals)
			require.NoError(t, err)
			require.Equal(t, tt.want, got.String())
		})
	}

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := ParseUnits("not-a-number", 18)
		require.Error(t, err)
	})
}

func TestFormatParseRoundTrip(t *testing.T) {
	amount, ok := new(big.Int).SetString("2500000000000000000", 10) // 2.5 at 18 decimals
	require.True(t, ok)

	display, err := FormatUnits(amount, 18, 4)
	require.NoError(t, err)

	back, err := ParseUnits(display, 18)
	require.NoError(t, err)
	require.Equal(t, amount, back)
}
