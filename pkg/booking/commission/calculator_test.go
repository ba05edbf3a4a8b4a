package commission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name         string
		serviceCost  float64
		extraCharges float64
		want         Split
	}{
		{"round thousand", 1000, 0, Split{Total: 1000, Platform: 300, Shop: 700}},
		{"with extra charges", 800, 200, Split{Total: 1000, Platform: 300, Shop: 700}},
		{"zero", 0, 0, Split{}},
		{"fractional total", 333.33, 0, Split{Total: 333.33, Platform: 100, Shop: 233}},
		{"shares need not add up to total", 10, 0.5, Split{Total: 10.5, Platform: 3, Shop: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Calculate(tt.serviceCost, tt.extraCharges))
		})
	}
}
