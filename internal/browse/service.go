package browse

import (
	"context"
	"encoding/json"
	"fmt"

	"bbws/internal/entity"
	"bbws/internal/relationship"

	"golang.org/x/sync/errgroup"
)

// Record is one browse result.
type Record struct {
	Entity       entity.Projection `json:"entity"`
	Relationship Edge              `json:"relationship"`
}

// Result is the browse response body. It encodes as
// {"bbid": ..., "<target plural>": [...]}.
type Result struct {
	AnchorBBID string
	TargetKind entity.Kind
	Records    []Record
}

func (r Result) MarshalJSON() ([]byte, error) {
	records := r.Records
	if records == nil {
		records = []Record{}
	}
	return json.Marshal(map[string]any{
		"bbid":                r.AnchorBBID,
		r.TargetKind.Plural(): records,
	})
}

// Service answers browse requests.
type Service struct {
	loader        EntityLoader
	relationships relationship.Repository
	associations  AssociationRepository
}

// NewService wires the entity loader and both edge sources.
func NewService(loader EntityLoader, relationships relationship.Repository, associations AssociationRepository) *Service {
	return &Service{loader: loader, relationships: relationships, associations: associations}
}

// Browse loads the anchor, runs every applicable association concurrently,
// then projects and filters the candidates. Records keep association order
// and, within an association, storage order. Duplicates are kept.
func (s *Service) Browse(ctx context.Context, c Criteria) (Result, error) {
	anchor, err := s.loader.Load(ctx, c.AnchorKind, c.AnchorID)
	if err != nil {
		return Result{}, err
	}

	assocs := AssociationsFor(anchor.Kind, c.TargetKind)
	batches := make([][]Candidate, len(assocs))

	g, gctx := errgroup.WithContext(ctx)
	for i, a := range assocs {
		g.Go(func() error {
			cands, err := s.resolve(gctx, a, anchor, c.TargetKind)
			if err != nil {
				return err
			}
			batches[i] = cands
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	keep := BuildPredicate(c)
	records := []Record{}
	for _, batch := range batches {
		for _, cand := range batch {
			p := entity.Project(cand.Entity)
			if !keep(p) {
				continue
			}
			records = append(records, Record{Entity: p, Relationship: cand.Edge})
		}
	}

	return Result{AnchorBBID: c.AnchorID, TargetKind: c.TargetKind, Records: records}, nil
}

func (s *Service) resolve(ctx context.Context, a Association, anchor entity.Entity, target entity.Kind) ([]Candidate, error) {
	switch a {
	case Generic:
		return s.generic(ctx, anchor, target)
	case Containment:
		return s.containment(ctx, anchor)
	case Ownership:
		return s.ownership(ctx, anchor)
	}
	return nil, fmt.Errorf("unknown association %d", a)
}

type hit struct {
	bbid string
	edge Edge
}

func (s *Service) generic(ctx context.Context, anchor entity.Entity, target entity.Kind) ([]Candidate, error) {
	rels, err := s.relationships.ListByEntity(ctx, anchor.BBID)
	if err != nil {
		return nil, err
	}
	hits := make([]hit, 0, len(rels))
	for _, rel := range rels {
		other, kind, dir := rel.Other(anchor.BBID)
		if kind != target {
			continue
		}
		hits = append(hits, hit{
			bbid: other,
			edge: Edge{TypeID: rel.TypeID, TypeName: rel.TypeName, Direction: dir},
		})
	}
	return s.hydrate(ctx, hits)
}

func (s *Service) containment(ctx context.Context, anchor entity.Entity) ([]Candidate, error) {
	switch anchor.Kind {
	case entity.KindEditionGroup:
		bbids, err := s.associations.EditionsInGroup(ctx, anchor.BBID)
		if err != nil {
			return nil, err
		}
		return s.hydrate(ctx, bare(bbids))
	case entity.KindEdition:
		if anchor.EditionGroupBBID == nil {
			return nil, nil
		}
		return s.hydrate(ctx, bare([]string{*anchor.EditionGroupBBID}))
	}
	return nil, nil
}

func (s *Service) ownership(ctx context.Context, anchor entity.Entity) ([]Candidate, error) {
	var (
		bbids []string
		err   error
	)
	switch anchor.Kind {
	case entity.KindPublisher:
		bbids, err = s.associations.EditionsByPublisher(ctx, anchor.BBID)
	case entity.KindEdition:
		bbids, err = s.associations.PublishersOfEdition(ctx, anchor.BBID)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, bare(bbids))
}

func bare(bbids []string) []hit {
	hits := make([]hit, len(bbids))
	for i, id := range bbids {
		hits[i] = hit{bbid: id}
	}
	return hits
}

// hydrate loads every hit with the full eager-load set, keeping hit order
// and repeats. Hits whose entity is gone are dropped.
func (s *Service) hydrate(ctx context.Context, hits []hit) ([]Candidate, error) {
	if len(hits) == 0 {
		return nil, nil
	}
	ids := make([]string, len(hits))
	for i, h := range hits {
		ids[i] = h.bbid
	}
	loaded, err := s.loader.LoadMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entity.Entity, len(loaded))
	for _, e := range loaded {
		byID[e.BBID] = e
	}

	out := make([]Candidate, 0, len(hits))
	for _, h := range hits {
		e, ok := byID[h.bbid]
		if !ok {
			continue
		}
		out = append(out, Candidate{Entity: e, Edge: h.edge})
	}
	return out, nil
}
