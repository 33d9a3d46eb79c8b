package usecase

import (
	"context"
	"log"
	"sort"
	"strings"

	"github.com/breadlens/backend/internal/domain"
)

// Scoring defaults, overridable via MatcherConfig
const (
	defaultThreshold   = 75.0 // Minimum similarity for a cross-platform match
	defaultWeightBonus = 20.0 // Added when both weight strings agree exactly
	defaultTopDeals    = 10   // Best-deals list length
	maxScore           = 100.0
)

// MatcherConfig holds configuration for the matcher service
type MatcherConfig struct {
	Threshold          float64
	WeightBonus        float64
	TopDeals           int
	EnableDebugLogging bool
}

// MatcherService finds duplicate products across platforms and ranks the
// savings opportunity between them
type MatcherService struct {
	threshold          float64
	weightBonus        float64
	topDeals           int
	enableDebugLogging bool
}

// NewMatcherService creates a new matcher service with the given configuration
func NewMatcherService(config MatcherConfig) *MatcherService {
	threshold := config.Threshold
	if threshold <= 0 {
		threshold = defaultThreshold
	}

	weightBonus := config.WeightBonus
	if weightBonus <= 0 {
		weightBonus = defaultWeightBonus
	}

	topDeals := config.TopDeals
	if topDeals <= 0 {
		topDeals = defaultTopDeals
	}

	return &MatcherService{
		threshold:          threshold,
		weightBonus:        weightBonus,
		topDeals:           topDeals,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Similarity computes a 0-100 match confidence between two products from their
// names and cleaned weight strings. Name similarity is a token-sort edit
// distance ratio over normalized names; exact weight agreement adds a fixed
// bonus since identical pack sizes are a strong same-product signal that name
// similarity alone under-weights. The total is capped at 100.
func (s *MatcherService) Similarity(name1, name2, weight1, weight2 string) float64 {
	score := tokenSortRatio(NormalizeName(name1), NormalizeName(name2))

	if weight1 != "" && weight2 != "" && weight1 == weight2 {
		score += s.weightBonus
	}

	if score > maxScore {
		score = maxScore
	}
	return score
}

// MatchProducts finds matching products across platforms. The whole working
// set is enumerated pairwise per unordered platform pair (Platform1 strictly
// below Platform2), emitting one ProductMatch per pair whose similarity meets
// the threshold. Fewer than two distinct platforms is a valid empty result,
// not an error. A threshold of zero or below falls back to the configured one.
func (s *MatcherService) MatchProducts(ctx context.Context, products []domain.Product, threshold float64) ([]domain.ProductMatch, error) {
	if threshold <= 0 {
		threshold = s.threshold
	}

	matches := []domain.ProductMatch{}

	// Distinct platforms in first-appearance order keeps emission deterministic
	var platforms []string
	byPlatform := make(map[string][]domain.Product)
	for _, p := range products {
		if _, seen := byPlatform[p.Platform]; !seen {
			platforms = append(platforms, p.Platform)
		}
		byPlatform[p.Platform] = append(byPlatform[p.Platform], p)
	}

	if len(platforms) < 2 {
		return matches, nil
	}

	for _, platform1 := range platforms {
		for _, platform2 := range platforms {
			if platform1 >= platform2 {
				continue
			}

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}

			for _, p1 := range byPlatform[platform1] {
				for _, p2 := range byPlatform[platform2] {
					similarity := s.Similarity(p1.Name, p2.Name, p1.WeightClean, p2.WeightClean)
					if similarity < threshold {
						continue
					}

					priceDiff := p1.PriceNumeric - p2.PriceNumeric
					if priceDiff < 0 {
						priceDiff = -priceDiff
					}

					maxPrice := p1.PriceNumeric
					if p2.PriceNumeric > maxPrice {
						maxPrice = p2.PriceNumeric
					}
					priceDiffPct := 0.0
					if maxPrice > 0 {
						priceDiffPct = priceDiff / maxPrice * 100
					}

					// Strict <, so a price tie stays with platform1
					cheaper := platform1
					if p2.PriceNumeric < p1.PriceNumeric {
						cheaper = platform2
					}

					if s.enableDebugLogging {
						log.Printf("[MATCH] %q (%s) ~ %q (%s) | score=%.1f diff=%.2f",
							p1.Name, platform1, p2.Name, platform2, similarity, priceDiff)
					}

					matches = append(matches, domain.ProductMatch{
						ProductName:     p1.Name,
						Brand:           p1.Brand,
						Weight:          p1.WeightClean,
						Platform1:       platform1,
						Price1:          p1.PriceNumeric,
						Platform2:       platform2,
						Price2:          p2.PriceNumeric,
						PriceDiff:       priceDiff,
						PriceDiffPct:    priceDiffPct,
						Similarity:      similarity,
						CheaperPlatform: cheaper,
						Savings:         priceDiff,
					})
				}
			}
		}
	}

	return matches, nil
}

// BestDeals returns the topN matches with the largest savings. The sort is
// stable so that equal savings retain their match-emission order. topN of
// zero or below falls back to the configured deals count.
func (s *MatcherService) BestDeals(matches []domain.ProductMatch, topN int) []domain.ProductMatch {
	if topN <= 0 {
		topN = s.topDeals
	}

	sorted := make([]domain.ProductMatch, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Savings > sorted[j].Savings
	})

	if len(sorted) > topN {
		sorted = sorted[:topN]
	}
	return sorted
}

// tokenSortRatio computes a token-order-insensitive similarity ratio between
// two normalized strings, scaled to 0-100. Tokens are sorted alphabetically
// and rejoined before taking a Levenshtein ratio, so "white bread britannia"
// and "britannia white bread" score as identical.
func tokenSortRatio(a, b string) float64 {
	sortedA := sortTokens(a)
	sortedB := sortTokens(b)

	maxLen := len([]rune(sortedA))
	if n := len([]rune(sortedB)); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 0
	}

	dist := levenshteinDistance(sortedA, sortedB)
	return (1 - float64(dist)/float64(maxLen)) * 100
}

// sortTokens splits on whitespace, sorts the tokens alphabetically and rejoins
func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// levenshteinDistance calculates the edit distance between two strings
func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	m := len(r1)
	n := len(r2)

	// Use two rows instead of the full matrix for space efficiency
	prev := make([]int, n+1)
	curr := make([]int, n+1)

	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}
