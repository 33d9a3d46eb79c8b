package domain

// ProductMatch represents one cross-platform product pair whose similarity met
// the matching threshold. ProductName, Brand and Weight are taken from the
// Platform1 side of the pair.
//
// Matches exist only for Platform1 < Platform2 (lexicographically), so a pair
// of platforms is never compared twice and a platform is never compared with
// itself.
type ProductMatch struct {
	ProductName     string  `json:"productName"`
	Brand           string  `json:"brand"`
	Weight          string  `json:"weight"`
	Platform1       string  `json:"platform1"`
	Price1          float64 `json:"price1"`
	Platform2       string  `json:"platform2"`
	Price2          float64 `json:"price2"`
	PriceDiff       float64 `json:"priceDiff"`
	PriceDiffPct    float64 `json:"priceDiffPct"`
	Similarity      float64 `json:"similarity"`
	CheaperPlatform string  `json:"cheaperPlatform"`
	Savings         float64 `json:"savings"`
}
