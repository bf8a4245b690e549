package browse

import (
	"context"

	"bbws/internal/entity"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=browse

// AssociationRepository answers the foreign-key associations that are not
// stored as relationships. Each method returns bbids in a stable order.
type AssociationRepository interface {
	// EditionsInGroup lists the editions whose edition group is groupBBID.
	EditionsInGroup(ctx context.Context, groupBBID string) ([]string, error)
	// EditionsByPublisher lists the editions published by publisherBBID.
	EditionsByPublisher(ctx context.Context, publisherBBID string) ([]string, error)
	// PublishersOfEdition lists the publishers of editionBBID in their
	// stored order.
	PublishersOfEdition(ctx context.Context, editionBBID string) ([]string, error)
}

// EntityLoader is the subset of entity.Service the browse pipeline needs.
type EntityLoader interface {
	Load(ctx context.Context, kind entity.Kind, rawBBID string) (entity.Entity, error)
	LoadMany(ctx context.Context, bbids []string) ([]entity.Entity, error)
}
