package browse

import (
	"fmt"
	"net/url"
	"strings"

	"bbws/internal/apperr"
	"bbws/internal/entity"
)

// Criteria is one browse request. It is built once by ParseCriteria and
// passed by value.
type Criteria struct {
	AnchorID   string      `validate:"required"`
	AnchorKind entity.Kind `validate:"required,entity_kind"`
	TargetKind entity.Kind `validate:"required,entity_kind"`
	Format     string      `validate:"max=255"`
	Language   string      `validate:"max=255"`
}

// ParseCriteria reads the anchor key, format and language from a query
// string. Exactly one anchor key must be present. The anchor id itself is
// checked by the entity loader.
func ParseCriteria(q url.Values, target entity.Kind) (Criteria, error) {
	var anchors []entity.Kind
	for _, k := range entity.Kinds() {
		if q.Has(k.Key()) {
			anchors = append(anchors, k)
		}
	}

	switch {
	case len(anchors) == 0:
		return Criteria{}, apperr.InvalidQuery("anchor", fmt.Sprintf("one of %s is required", anchorKeys()))
	case len(anchors) > 1:
		return Criteria{}, apperr.InvalidQuery("anchor", fmt.Sprintf("only one of %s may be given", anchorKeys()))
	}

	anchor := anchors[0]
	if len(q[anchor.Key()]) > 1 {
		return Criteria{}, apperr.InvalidQuery(anchor.Key(), anchor.Key()+" must be given once")
	}

	c := Criteria{
		AnchorID:   q.Get(anchor.Key()),
		AnchorKind: anchor,
		TargetKind: target,
		Format:     strings.TrimSpace(q.Get("format")),
		Language:   strings.TrimSpace(q.Get("language")),
	}
	if fields := validateStruct(c); len(fields) > 0 {
		return Criteria{}, &apperr.QueryError{Fields: fields}
	}
	return c, nil
}

func anchorKeys() string {
	keys := make([]string, 0, len(entity.Kinds()))
	for _, k := range entity.Kinds() {
		keys = append(keys, k.Key())
	}
	return strings.Join(keys, ", ")
}
