package models

import "sort"

// priceTable maps lesson package codes to their price in minor units (grosz).
// Adding a package means shipping a new build.
var priceTable = map[string]int64{
	"single60": 11000,
	"single90": 16000,
	"trial":    6000,
}

// PackagePrice returns the price of a lesson package.
func PackagePrice(code string) (int64, bool) {
	amount, ok := priceTable[code]
	if !ok || amount <= 0 {
		return 0, false
	}
	return amount, true
}

// PackageCodes lists the known package codes in sorted order.
func PackageCodes() []string {
	codes := make([]string, 0, len(priceTable))
	for code := range priceTable {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
