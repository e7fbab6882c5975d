package booking

import "math"

// TaxRate is applied to every booking subtotal.
const TaxRate = 0.10

type PriceBreakdown struct {
	UnitPrice float64 `json:"unitPrice"`
	Travelers int     `json:"travelers"`
	Subtotal  float64 `json:"subtotal"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
}

// CalculatePrice derives the breakdown for travelers at unitPrice. Tax is
// rounded half-up to a whole currency unit.
func CalculatePrice(unitPrice float64, travelers int) PriceBreakdown {
	subtotal := unitPrice * float64(travelers)
	tax := roundHalfUp(subtotal * TaxRate)
	return PriceBreakdown{
		UnitPrice: unitPrice,
		Travelers: travelers,
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     subtotal + tax,
	}
}

func roundHalfUp(x float64) float64 {
	// Absorb float noise such as 125.00000000000001 or 24.999999999999996
	// before rounding.
	x = math.Round(x*1e6) / 1e6
	return math.Floor(x + 0.5)
}
