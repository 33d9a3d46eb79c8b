package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/breadlens/backend/internal/domain"
	"github.com/breadlens/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	products *usecase.ProductService
	matcher  *usecase.MatcherService
	stats    *usecase.StatsService
}

// NewHandler creates a new HTTP handler
func NewHandler(products *usecase.ProductService, matcher *usecase.MatcherService, stats *usecase.StatsService) *Handler {
	return &Handler{
		products: products,
		matcher:  matcher,
		stats:    stats,
	}
}

// replaceProductsRequest is the ingest payload pushed by the scraping collaborator
type replaceProductsRequest struct {
	Products []productPayload `json:"products" binding:"dive"`
}

// productPayload mirrors domain.Product without requiring derived fields
type productPayload struct {
	Name         string  `json:"name" binding:"required"`
	Brand        string  `json:"brand"`
	Weight       string  `json:"weight"`
	WeightClean  string  `json:"weightClean"`
	Price        string  `json:"price"`
	PriceNumeric float64 `json:"priceNumeric"`
	Image        string  `json:"image"`
	Platform     string  `json:"platform" binding:"required"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "breadlens-backend",
		"version": "1.0.0",
	})
}

// ReplaceProducts replaces the working set with a freshly scraped batch.
// Derived fields (brand, clean weight, numeric price) are filled in for
// records where the scraper left them empty.
func (h *Handler) ReplaceProducts(c *gin.Context) {
	var req replaceProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidRequest.Error() + ": " + err.Error()})
		return
	}

	products := make([]domain.Product, 0, len(req.Products))
	for _, p := range req.Products {
		products = append(products, domain.Product{
			Name:         p.Name,
			Brand:        p.Brand,
			Weight:       p.Weight,
			WeightClean:  p.WeightClean,
			Price:        p.Price,
			PriceNumeric: p.PriceNumeric,
			Image:        p.Image,
			Platform:     p.Platform,
		})
	}

	count, err := h.products.ReplaceAll(c.Request.Context(), products)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "working set replaced",
		"count":   count,
	})
}

// ClearProducts empties the working set
func (h *Handler) ClearProducts(c *gin.Context) {
	if err := h.products.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "working set cleared"})
}

// Compare runs cross-platform matching and returns best deals plus statistics.
// Optional query params: threshold (similarity cutoff), top_n (deal count).
// An empty working set is a client error; too few platforms to compare is a
// valid response with zero matches.
func (h *Handler) Compare(c *gin.Context) {
	threshold, ok := parseFloatParam(c, "threshold")
	if !ok {
		return
	}
	topN, ok := parseIntParam(c, "top_n")
	if !ok {
		return
	}

	products, err := h.products.Products(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load products"})
		return
	}
	if len(products) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrNoData.Error()})
		return
	}

	matches, err := h.matcher.MatchProducts(c.Request.Context(), products, threshold)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "matching aborted"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalProducts":    len(products),
		"matchesFound":     len(matches),
		"bestDeals":        h.matcher.BestDeals(matches, topN),
		"statistics":       h.stats.OverallStats(products),
		"platformStats":    h.stats.PlatformStats(products),
		"cheapestPlatform": h.stats.CheapestPlatform(products),
		"savingsPotential": h.stats.SavingsPotential(matches),
	})
}

// Stats returns descriptive statistics without running the matcher
func (h *Handler) Stats(c *gin.Context) {
	products, err := h.products.Products(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load products"})
		return
	}
	if len(products) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrNoData.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"statistics":    h.stats.OverallStats(products),
		"platformStats": h.stats.PlatformStats(products),
		"brandStats":    h.stats.BrandStats(products),
	})
}

// parseFloatParam reads an optional float query param; zero means "use the
// configured default". Writes a 400 response and returns ok=false on garbage.
func parseFloatParam(c *gin.Context, name string) (float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " parameter"})
		return 0, false
	}
	return value, true
}

// parseIntParam reads an optional int query param; zero means "use the
// configured default". Writes a 400 response and returns ok=false on garbage.
func parseIntParam(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " parameter"})
		return 0, false
	}
	return value, true
}
