package orderservice

import (
	"strings"

	"github.com/samber/lo"
)

const (
	bundlePrefix     = "bundle_"
	bundlePriceCents = 899
	defaultCents     = 299
)

var priceCents = map[string]int64{
	"apple":  299,
	"banana": 199,
	"lemon":  349,
	"pear":   329,
}

func itemPrice(item string) int64 {
	if strings.HasPrefix(item, bundlePrefix) {
		return bundlePriceCents
	}
	if price, ok := priceCents[item]; ok {
		return price
	}
	return defaultCents
}

// CalculateTotal prices items from the shop's price list. Sums are kept in
// cents so the result is exact to two decimals.
func CalculateTotal(items []string) float64 {
	return float64(lo.SumBy(items, itemPrice)) / 100
}
