package entity

import (
	"fmt"

	"bbws/internal/apperr"

	"github.com/google/uuid"
)

// Kind is the entity type as stored in entities.kind and reported as
// "entityType".
type Kind string

const (
	KindAny          Kind = ""
	KindAuthor       Kind = "Author"
	KindEdition      Kind = "Edition"
	KindEditionGroup Kind = "EditionGroup"
	KindPublisher    Kind = "Publisher"
	KindWork         Kind = "Work"
)

var kinds = []Kind{KindAuthor, KindEdition, KindEditionGroup, KindPublisher, KindWork}

var kindKeys = map[Kind]string{
	KindAuthor:       "author",
	KindEdition:      "edition",
	KindEditionGroup: "edition-group",
	KindPublisher:    "publisher",
	KindWork:         "work",
}

var kindPlurals = map[Kind]string{
	KindAuthor:       "authors",
	KindEdition:      "editions",
	KindEditionGroup: "editionGroups",
	KindPublisher:    "publishers",
	KindWork:         "works",
}

// Kinds lists every concrete kind in a stable order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Valid reports whether k is a concrete kind.
func (k Kind) Valid() bool {
	_, ok := kindKeys[k]
	return ok
}

// Key is the URL path segment and browse query key, e.g. "edition-group".
func (k Kind) Key() string {
	return kindKeys[k]
}

// Plural is the JSON field holding browse results of this kind.
func (k Kind) Plural() string {
	return kindPlurals[k]
}

func (k Kind) String() string {
	if k == KindAny {
		return "Entity"
	}
	return string(k)
}

// KindFromKey maps a path segment or query key back to its Kind.
func KindFromKey(key string) (Kind, bool) {
	for k, v := range kindKeys {
		if v == key {
			return k, true
		}
	}
	return KindAny, false
}

// Entity is a hydrated entity row. It is never mutated after loading.
type Entity struct {
	BBID             string
	Kind             Kind
	DefaultAlias     *Alias
	Disambiguation   *string
	TypeName         *string
	FormatName       *string
	StatusName       *string
	Languages        []string
	Dimensions       Dimensions
	ReleaseDates     []string
	BeginDate        *string
	EndDate          *string
	Ended            bool
	EditionGroupBBID *string
}

type Dimensions struct {
	Height *int
	Width  *int
	Depth  *int
	Weight *int
	Pages  *int
}

type Alias struct {
	Name     string
	SortName string
	Language *string
	Primary  bool
}

type Identifier struct {
	TypeID int
	Type   string
	Value  string
}

// ParseBBID validates the canonical 36 character UUID form and returns it in
// lower case.
func ParseBBID(raw string) (string, error) {
	if len(raw) != 36 {
		return "", fmt.Errorf("%w: %q", apperr.ErrInvalidIdentifier, raw)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q", apperr.ErrInvalidIdentifier, raw)
	}
	return id.String(), nil
}
