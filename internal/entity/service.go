package entity

import (
	"context"
)

type IdentifierView struct {
	TypeID int    `json:"typeId"`
	Type   string `json:"type"`
	Value  string `json:"value"`
}

type AliasList struct {
	BBID    string      `json:"bbid"`
	Aliases []AliasView `json:"aliases"`
}

type IdentifierList struct {
	BBID        string           `json:"bbid"`
	Identifiers []IdentifierView `json:"identifiers"`
}

// Service is the entity loader and the single-entity lookups built on it.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Load validates rawBBID and loads the hydrated entity. Malformed ids fail
// before storage is touched.
func (s *Service) Load(ctx context.Context, kind Kind, rawBBID string) (Entity, error) {
	bbid, err := ParseBBID(rawBBID)
	if err != nil {
		return Entity{}, err
	}
	return s.repo.FindByBBID(ctx, kind, bbid)
}

// LoadMany hydrates already-validated bbids with the same eager-load set as
// Load.
func (s *Service) LoadMany(ctx context.Context, bbids []string) ([]Entity, error) {
	if len(bbids) == 0 {
		return []Entity{}, nil
	}
	return s.repo.FindMany(ctx, bbids)
}

func (s *Service) Get(ctx context.Context, kind Kind, rawBBID string) (Projection, error) {
	e, err := s.Load(ctx, kind, rawBBID)
	if err != nil {
		return Projection{}, err
	}
	return Project(e), nil
}

func (s *Service) Aliases(ctx context.Context, kind Kind, rawBBID string) (AliasList, error) {
	e, err := s.Load(ctx, kind, rawBBID)
	if err != nil {
		return AliasList{}, err
	}
	aliases, err := s.repo.ListAliases(ctx, e.BBID)
	if err != nil {
		return AliasList{}, err
	}
	out := AliasList{BBID: e.BBID, Aliases: make([]AliasView, 0, len(aliases))}
	for _, a := range aliases {
		out.Aliases = append(out.Aliases, ProjectAlias(a))
	}
	return out, nil
}

func (s *Service) Identifiers(ctx context.Context, kind Kind, rawBBID string) (IdentifierList, error) {
	e, err := s.Load(ctx, kind, rawBBID)
	if err != nil {
		return IdentifierList{}, err
	}
	ids, err := s.repo.ListIdentifiers(ctx, e.BBID)
	if err != nil {
		return IdentifierList{}, err
	}
	out := IdentifierList{BBID: e.BBID, Identifiers: make([]IdentifierView, 0, len(ids))}
	for _, i := range ids {
		out.Identifiers = append(out.Identifiers, IdentifierView{TypeID: i.TypeID, Type: i.Type, Value: i.Value})
	}
	return out, nil
}
