package relationship

import (
	"bbws/internal/entity"
)

type Direction string

const (
	DirectionForward  Direction = "forward"
	DirectionBackward Direction = "backward"
)

// Relationship is a stored, typed, directed edge between two entities.
type Relationship struct {
	ID                int
	TypeID            int
	TypeName          string
	LinkPhrase        string
	ReverseLinkPhrase string
	SourceBBID        string
	SourceKind        entity.Kind
	TargetBBID        string
	TargetKind        entity.Kind
}

// Other returns the endpoint opposite to bbid and the edge direction as seen
// from bbid. A self-referencing edge reads as forward.
func (r Relationship) Other(bbid string) (string, entity.Kind, Direction) {
	if r.SourceBBID == bbid {
		return r.TargetBBID, r.TargetKind, DirectionForward
	}
	return r.SourceBBID, r.SourceKind, DirectionBackward
}

// Phrase is the human-readable label for the given reading direction.
func (r Relationship) Phrase(dir Direction) string {
	phrase := r.LinkPhrase
	if dir == DirectionBackward {
		phrase = r.ReverseLinkPhrase
	}
	if phrase == "" {
		return r.TypeName
	}
	return phrase
}
