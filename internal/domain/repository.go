package domain

import "context"

// ProductStore defines the interface for the session-scoped product working set.
// A scrape cycle replaces the set wholesale; it is never merged or expired.
type ProductStore interface {
	Replace(ctx context.Context, products []Product) error
	Products(ctx context.Context) ([]Product, error)
	Count(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
}
