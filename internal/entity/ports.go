package entity

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=entity

// Repository loads hydrated entities. Every method returns entities with the
// full eager-load set populated.
type Repository interface {
	// FindByBBID loads one entity. KindAny matches any kind.
	FindByBBID(ctx context.Context, kind Kind, bbid string) (Entity, error)
	// FindMany loads the given entities in request order, skipping ids that
	// do not resolve.
	FindMany(ctx context.Context, bbids []string) ([]Entity, error)
	ListAliases(ctx context.Context, bbid string) ([]Alias, error)
	ListIdentifiers(ctx context.Context, bbid string) ([]Identifier, error)
}
