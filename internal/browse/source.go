package browse

import (
	"bbws/internal/entity"
	"bbws/internal/relationship"
)

// Association names where candidates come from.
type Association int

const (
	// Generic follows stored relationships of any type.
	Generic Association = iota
	// Containment follows the edition to edition group foreign key.
	Containment
	// Ownership follows the edition to publisher set.
	Ownership
)

func (a Association) String() string {
	switch a {
	case Generic:
		return "generic"
	case Containment:
		return "containment"
	case Ownership:
		return "ownership"
	}
	return "unknown"
}

// Edge describes how a candidate was reached. Candidates found through a
// foreign-key association carry the zero Edge, which encodes as {}.
type Edge struct {
	TypeID    int                    `json:"relationshipTypeId,omitempty"`
	TypeName  string                 `json:"relationshipType,omitempty"`
	Direction relationship.Direction `json:"direction,omitempty"`
}

// Candidate is an unfiltered result produced by one association.
type Candidate struct {
	Entity entity.Entity
	Edge   Edge
}

type kindPair struct {
	a, b entity.Kind
}

// special maps unordered kind pairs to the extra association they open.
var special = map[kindPair]Association{
	{entity.KindEditionGroup, entity.KindEdition}: Containment,
	{entity.KindPublisher, entity.KindEdition}:    Ownership,
}

// AssociationsFor lists, in output order, the associations consulted when
// browsing target entities from an anchor of the given kind. Generic is
// always first.
func AssociationsFor(anchor, target entity.Kind) []Association {
	out := []Association{Generic}
	if a, ok := special[kindPair{anchor, target}]; ok {
		return append(out, a)
	}
	if a, ok := special[kindPair{target, anchor}]; ok {
		return append(out, a)
	}
	return out
}
