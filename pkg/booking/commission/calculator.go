package commission

import "math"

const (
	PlatformRate = 0.30
	ShopRate     = 0.70
)

// Split is the commission breakdown of a completed booking, in whole currency units.
type Split struct {
	Total    float64
	Platform float64
	Shop     float64
}

// Calculate rounds each share independently, so Platform+Shop may differ from Total by one unit.
func Calculate(serviceCost, extraCharges float64) Split {
	total := serviceCost + extraCharges
	return Split{
		Total:    total,
		Platform: math.Round(total * PlatformRate),
		Shop:     math.Round(total * ShopRate),
	}
}
