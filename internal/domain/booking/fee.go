package booking

import "math"

const DefaultPlatformFeePercent = 10

// PlatformFee is charged on top of the service price and kept apart from it.
func PlatformFee(price, percent float64) float64 {
	if price <= 0 || percent <= 0 {
		return 0
	}
	return round2(price * percent / 100)
}

func ChargeAmount(price, percent float64) float64 {
	return round2(price + PlatformFee(price, percent))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
