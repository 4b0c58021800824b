package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Kunal1519/blind-invoice-creator-pro/internal/pricing"
)

func TestSquareFeet(t *testing.T) {
	type args struct {
		width  float64
		height float64
		unit   pricing.Unit
	}

	tests := []struct {
		name string
		args args
		want float64
	}{
		{
			name: "InchesStandardWindow",
			args: args{width: 36, height: 60, unit: pricing.UnitInches},
			want: 15.0,
		},
		{
			name: "InchesOneSquareFoot",
			args: args{width: 12, height: 12, unit: pricing.UnitInches},
			want: 1.0,
		},
		{
			name: "CmStandardWindow",
			args: args{width: 100, height: 150, unit: pricing.UnitCm},
			want: 16.145869,
		},
		{
			name: "ZeroPassesThrough",
			args: args{width: 0, height: 60, unit: pricing.UnitInches},
			want: 0,
		},
		{
			name: "NegativePassesThrough",
			args: args{width: -12, height: 12, unit: pricing.UnitInches},
			want: -1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.SquareFeet(tt.args.width, tt.args.height, tt.args.unit)
			assert.InDelta(t, tt.want, got, 0.000001)
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "Exact", in: 15.0, want: 15.0},
		{name: "RoundsDown", in: 16.144, want: 16.14},
		{name: "HalfRoundsUp", in: 16.145, want: 16.15},
		{name: "CmAreaExample", in: 100 * 150 / 929.0304, want: 16.15},
		{name: "RoundsUp", in: 2399.999, want: 2400.0},
		{name: "NegativeHalfAwayFromZero", in: -1.005, want: -1.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, pricing.Round2(tt.in), 0.0000001)
		})
	}
}
