package relationship

import (
	"context"

	"bbws/internal/entity"
)

// View is one relationship as seen from the requested entity.
type View struct {
	ID           int                `json:"id"`
	TypeID       int                `json:"relationshipTypeId"`
	Type         string             `json:"relationshipType"`
	Direction    Direction          `json:"direction"`
	SourceBBID   string             `json:"sourceBbid"`
	TargetBBID   string             `json:"targetBbid"`
	LinkedEntity *entity.Projection `json:"linkedEntity"`
}

// List is the response body of a relationships lookup.
type List struct {
	BBID          string `json:"bbid"`
	Relationships []View `json:"relationships"`
}

// Service lists the relationships of a single entity.
type Service struct {
	loader EntityLoader
	repo   Repository
}

// NewService returns a Service reading edges from repo.
func NewService(loader EntityLoader, repo Repository) *Service {
	return &Service{loader: loader, repo: repo}
}

// ForEntity lists every relationship of an entity, read from its side, with
// the entity at the other end projected. Edges whose other end no longer
// resolves carry a nil linkedEntity.
func (s *Service) ForEntity(ctx context.Context, kind entity.Kind, rawBBID string) (List, error) {
	anchor, err := s.loader.Load(ctx, kind, rawBBID)
	if err != nil {
		return List{}, err
	}
	rels, err := s.repo.ListByEntity(ctx, anchor.BBID)
	if err != nil {
		return List{}, err
	}

	others := make([]string, 0, len(rels))
	for _, rel := range rels {
		other, _, _ := rel.Other(anchor.BBID)
		others = append(others, other)
	}
	linked, err := s.loader.LoadMany(ctx, others)
	if err != nil {
		return List{}, err
	}
	byID := make(map[string]entity.Projection, len(linked))
	for _, e := range linked {
		byID[e.BBID] = entity.Project(e)
	}

	out := List{BBID: anchor.BBID, Relationships: make([]View, 0, len(rels))}
	for _, rel := range rels {
		other, _, dir := rel.Other(anchor.BBID)
		v := View{
			ID:         rel.ID,
			TypeID:     rel.TypeID,
			Type:       rel.Phrase(dir),
			Direction:  dir,
			SourceBBID: rel.SourceBBID,
			TargetBBID: rel.TargetBBID,
		}
		if p, ok := byID[other]; ok {
			v.LinkedEntity = &p
		}
		out.Relationships = append(out.Relationships, v)
	}
	return out, nil
}
