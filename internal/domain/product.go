package domain

// Product represents a single scraped bread listing from a delivery platform.
// Fields mirror what the scraping collaborator extracts from a product card;
// Brand, WeightClean and PriceNumeric are derived and may arrive empty/zero,
// in which case the product service fills them in on ingest.
type Product struct {
	Name         string  `json:"name"`
	Brand        string  `json:"brand"`
	Weight       string  `json:"weight"`
	WeightClean  string  `json:"weightClean"`
	Price        string  `json:"price"`
	PriceNumeric float64 `json:"priceNumeric"`
	Image        string  `json:"image,omitempty"`
	Platform     string  `json:"platform"`
}
