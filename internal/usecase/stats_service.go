package usecase

import (
	"log"
	"math"
	"sort"

	"github.com/breadlens/backend/internal/domain"
)

// StatsService aggregates descriptive price statistics over the working set.
// All aggregates run over PriceNumeric; zero-priced products count as data
// points, not as missing values.
type StatsService struct {
	enableDebugLogging bool
}

// NewStatsService creates a new stats service
func NewStatsService(enableDebugLogging bool) *StatsService {
	return &StatsService{enableDebugLogging: enableDebugLogging}
}

// PlatformStats computes per-platform price statistics
func (s *StatsService) PlatformStats(products []domain.Product) map[string]domain.PlatformStats {
	stats := make(map[string]domain.PlatformStats)

	byPlatform := make(map[string][]float64)
	for _, p := range products {
		byPlatform[p.Platform] = append(byPlatform[p.Platform], p.PriceNumeric)
	}

	for platform, prices := range byPlatform {
		minPrice, maxPrice := minMax(prices)
		stats[platform] = domain.PlatformStats{
			TotalProducts: len(prices),
			AvgPrice:      mean(prices),
			MinPrice:      minPrice,
			MaxPrice:      maxPrice,
			MedianPrice:   median(prices),
		}
	}

	if s.enableDebugLogging {
		log.Printf("[STATS] Platform stats for %d platforms over %d products", len(stats), len(products))
	}

	return stats
}

// OverallStats computes statistics across the whole working set. The standard
// deviation uses the sample (N-1) formula and stays nil below two products;
// an empty set yields zeroed aggregates, never an error.
func (s *StatsService) OverallStats(products []domain.Product) domain.OverallStats {
	stats := domain.OverallStats{TotalProducts: len(products)}
	if len(products) == 0 {
		return stats
	}

	prices := make([]float64, 0, len(products))
	platforms := make(map[string]bool)
	brands := make(map[string]bool)
	for _, p := range products {
		prices = append(prices, p.PriceNumeric)
		platforms[p.Platform] = true
		brands[p.Brand] = true
	}

	stats.TotalPlatforms = len(platforms)
	stats.TotalBrands = len(brands)
	stats.AvgPrice = mean(prices)
	stats.MedianPrice = median(prices)
	stats.MinPrice, stats.MaxPrice = minMax(prices)

	if len(prices) >= 2 {
		std := sampleStdDev(prices)
		stats.PriceStd = &std
	}

	return stats
}

// CheapestPlatform finds the platform with the lowest mean price.
// Returns nil when the working set is empty.
func (s *StatsService) CheapestPlatform(products []domain.Product) *domain.CheapestPlatform {
	byPlatform := make(map[string][]float64)
	for _, p := range products {
		byPlatform[p.Platform] = append(byPlatform[p.Platform], p.PriceNumeric)
	}
	if len(byPlatform) == 0 {
		return nil
	}

	averages := make(map[string]float64, len(byPlatform))
	cheapest := ""
	for platform, prices := range byPlatform {
		avg := mean(prices)
		averages[platform] = avg
		if cheapest == "" || avg < averages[cheapest] ||
			(avg == averages[cheapest] && platform < cheapest) {
			cheapest = platform
		}
	}

	return &domain.CheapestPlatform{
		Platform:     cheapest,
		AvgPrice:     averages[cheapest],
		AllPlatforms: averages,
	}
}

// SavingsPotential summarizes total, average and maximum savings across
// matches. An empty match list yields a zero-valued summary.
func (s *StatsService) SavingsPotential(matches []domain.ProductMatch) domain.SavingsPotential {
	potential := domain.SavingsPotential{NumMatches: len(matches)}
	if len(matches) == 0 {
		return potential
	}

	for _, m := range matches {
		potential.TotalSavings += m.PriceDiff
		if m.PriceDiff > potential.MaxSaving {
			potential.MaxSaving = m.PriceDiff
		}
	}
	potential.AvgSavings = potential.TotalSavings / float64(len(matches))

	return potential
}

// BrandStats computes per-brand, per-platform price aggregates, sorted by
// brand then platform for deterministic output.
func (s *StatsService) BrandStats(products []domain.Product) []domain.BrandStats {
	type key struct{ brand, platform string }
	byKey := make(map[key][]float64)
	for _, p := range products {
		k := key{p.Brand, p.Platform}
		byKey[k] = append(byKey[k], p.PriceNumeric)
	}

	stats := make([]domain.BrandStats, 0, len(byKey))
	for k, prices := range byKey {
		minPrice, maxPrice := minMax(prices)
		stats = append(stats, domain.BrandStats{
			Brand:    k.brand,
			Platform: k.platform,
			Count:    len(prices),
			AvgPrice: mean(prices),
			MinPrice: minPrice,
			MaxPrice: maxPrice,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Brand != stats[j].Brand {
			return stats[i].Brand < stats[j].Brand
		}
		return stats[i].Platform < stats[j].Platform
	})

	return stats
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func minMax(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	minV, maxV := values[0], values[0]
	for _, v := range values[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	return minV, maxV
}

// sampleStdDev computes the sample (N-1 denominator) standard deviation.
// Callers must guarantee len(values) >= 2.
func sampleStdDev(values []float64) float64 {
	m := mean(values)
	sumSq := 0.0
	for _, v := range values {
		d := v - m
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)-1))
}
