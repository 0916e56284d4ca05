package ports

import (
	"context"
	"errors"

	"loadboard-service/internal/domain"
)

// ErrLoadNotFound is returned when no load exists for a requested ID.
// The API layer recovers it into a 404.
var ErrLoadNotFound = errors.New("load not found")

// Port: a boundary for retrieving Load entities from a data source.
type LoadRepository interface {
	// Retrieve the load with the given ID, or ErrLoadNotFound.
	GetByID(ctx context.Context, loadID int) (*domain.Load, error)

	// Number of loads available for lookup.
	Count() int
}
