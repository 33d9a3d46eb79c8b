package domain

// PlatformStats holds descriptive price statistics for a single platform.
type PlatformStats struct {
	TotalProducts int     `json:"totalProducts"`
	AvgPrice      float64 `json:"avgPrice"`
	MinPrice      float64 `json:"minPrice"`
	MaxPrice      float64 `json:"maxPrice"`
	MedianPrice   float64 `json:"medianPrice"`
}

// OverallStats holds descriptive price statistics across the whole working set.
// PriceStd is the sample (N-1) standard deviation; it is nil when fewer than
// two products are present, which renders as JSON null rather than a silent 0.
type OverallStats struct {
	TotalProducts  int      `json:"totalProducts"`
	TotalPlatforms int      `json:"totalPlatforms"`
	TotalBrands    int      `json:"totalBrands"`
	AvgPrice       float64  `json:"avgPrice"`
	MedianPrice    float64  `json:"medianPrice"`
	MinPrice       float64  `json:"minPrice"`
	MaxPrice       float64  `json:"maxPrice"`
	PriceStd       *float64 `json:"priceStd"`
}

// CheapestPlatform identifies the platform with the lowest mean price.
type CheapestPlatform struct {
	Platform     string             `json:"platform"`
	AvgPrice     float64            `json:"avgPrice"`
	AllPlatforms map[string]float64 `json:"allPlatforms"`
}

// SavingsPotential summarizes the savings available across a set of matches.
type SavingsPotential struct {
	TotalSavings float64 `json:"totalSavings"`
	AvgSavings   float64 `json:"avgSavings"`
	NumMatches   int     `json:"numMatches"`
	MaxSaving    float64 `json:"maxSaving"`
}

// BrandStats holds per-brand, per-platform price aggregates.
type BrandStats struct {
	Brand    string  `json:"brand"`
	Platform string  `json:"platform"`
	Count    int     `json:"count"`
	AvgPrice float64 `json:"avgPrice"`
	MinPrice float64 `json:"minPrice"`
	MaxPrice float64 `json:"maxPrice"`
}
