package pricing

import (
	"github.com/shopspring/decimal"

	"moving_pricing/internal/domain/entities"
)

// CurrencyPlaces is the number of fractional digits of a final price.
const CurrencyPlaces = 2

// RoundCurrency rounds v to two places, half away from zero, on the
// shortest decimal representation of v: 2.675 rounds to 2.68 and -2.675 to
// -2.68. Banker's rounding is never used. NaN and infinities are returned
// unchanged.
func RoundCurrency(v float64) float64 {
	if !isFinite(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(CurrencyPlaces).InexactFloat64()
}

// assembleBreakdown expresses each category to the cent and folds the
// rounding residue into the largest category so the six categories sum to
// finalPrice exactly. finalPrice itself is rounded once, from the unrounded
// running total; the per-category cents are presentation only and never feed
// back into it. raw must hold finite amounts, which Accumulate guarantees.
func assembleBreakdown(raw entities.Breakdown, finalPrice float64) entities.Breakdown {
	var out entities.Breakdown
	final := decimal.NewFromFloat(finalPrice)

	sum := decimal.Zero
	largest := entities.Category("")
	largestAbs := decimal.Zero
	rounded := make(map[entities.Category]decimal.Decimal, len(entities.Categories))
	for _, c := range entities.Categories {
		src, _ := categorySlot(&raw, c)
		d := decimal.NewFromFloat(*src).Round(CurrencyPlaces)
		rounded[c] = d
		sum = sum.Add(d)
		if largest == "" || d.Abs().GreaterThan(largestAbs) {
			largest = c
			largestAbs = d.Abs()
		}
	}
	if residue := final.Sub(sum); !residue.IsZero() {
		rounded[largest] = rounded[largest].Add(residue)
	}

	for _, c := range entities.Categories {
		dst, _ := categorySlot(&out, c)
		*dst = rounded[c].InexactFloat64()
	}
	out.Total = finalPrice
	return out
}
