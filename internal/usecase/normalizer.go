package usecase

import (
	"regexp"
	"strconv"
	"strings"
)

// Package-level compiled regex patterns for performance
var (
	punctuationRegex    = regexp.MustCompile(`[^\w\s]`)
	multipleSpacesRegex = regexp.MustCompile(`\s+`)

	// Matches a quantity followed by a unit token, e.g. "400 g", "1.5kg", "2 pcs"
	weightRegex = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(g|kg|ml|l|gm|gram|piece|pcs)`)

	// Matches the first numeric amount in a price string, e.g. "₹45", "Rs. 1,050.50"
	priceRegex = regexp.MustCompile(`(\d+(?:,\d+)?(?:\.\d+)?)`)
)

// NormalizeName canonicalizes a product name for comparison: lowercase, strip
// punctuation, collapse whitespace. Pure and idempotent; empty in, empty out.
func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = punctuationRegex.ReplaceAllString(name, "")
	name = multipleSpacesRegex.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// NormalizeWeight standardizes a scraped weight string to a canonical form like
// "400g", "1kg" or "6pc". Volume units (ml, l) are recognized by the scan but
// carry no canonical suffix, so the lower-cased original passes through
// unchanged; same when no quantity+unit is found at all.
func NormalizeWeight(weight string) string {
	if weight == "" {
		return ""
	}
	weight = strings.ToLower(weight)

	m := weightRegex.FindStringSubmatch(weight)
	if m != nil {
		value, unit := m[1], m[2]
		switch unit {
		case "g", "gm", "gram":
			return value + "g"
		case "kg":
			return value + "kg"
		case "piece", "pcs":
			return value + "pc"
		}
	}

	return weight
}

// CleanPrice extracts the numeric amount from a scraped price string, ignoring
// currency symbols and thousands separators. Unparseable input yields 0.0,
// never an error: a zero-priced product still participates in matching.
func CleanPrice(price string) float64 {
	if price == "" {
		return 0.0
	}

	m := priceRegex.FindStringSubmatch(price)
	if m == nil {
		return 0.0
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return 0.0
	}
	return value
}

// ExtractBrand finds the brand for a product name by case-insensitive substring
// containment over the known-brand list, first match wins. Falls back to the
// first whitespace-delimited token, then to "Unknown".
func ExtractBrand(name string, knownBrands []string) string {
	nameLower := strings.ToLower(name)
	for _, brand := range knownBrands {
		if brand != "" && strings.Contains(nameLower, strings.ToLower(brand)) {
			return brand
		}
	}

	if words := strings.Fields(name); len(words) > 0 {
		return words[0]
	}
	return "Unknown"
}
