package relationship

import (
	"context"

	"bbws/internal/entity"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=relationship

// Repository lists stored relationships.
type Repository interface {
	// ListByEntity returns every relationship with bbid on either side,
	// ordered by relationship id.
	ListByEntity(ctx context.Context, bbid string) ([]Relationship, error)
}

// EntityLoader is the subset of entity.Service the relationship views need.
type EntityLoader interface {
	Load(ctx context.Context, kind entity.Kind, rawBBID string) (entity.Entity, error)
	LoadMany(ctx context.Context, bbids []string) ([]entity.Entity, error)
}
