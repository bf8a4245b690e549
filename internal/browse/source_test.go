package browse

import (
	"encoding/json"
	"testing"

	"bbws/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestAssociationsFor(t *testing.T) {
	tests := []struct {
		anchor, target entity.Kind
		want           []Association
	}{
		{entity.KindEditionGroup, entity.KindEdition, []Association{Generic, Containment}},
		{entity.KindEdition, entity.KindEditionGroup, []Association{Generic, Containment}},
		{entity.KindPublisher, entity.KindEdition, []Association{Generic, Ownership}},
		{entity.KindEdition, entity.KindPublisher, []Association{Generic, Ownership}},
		{entity.KindEdition, entity.KindEdition, []Association{Generic}},
		{entity.KindAuthor, entity.KindWork, []Association{Generic}},
		{entity.KindPublisher, entity.KindEditionGroup, []Association{Generic}},
	}

	for _, tt := range tests {
		t.Run(string(tt.anchor)+"->"+string(tt.target), func(t *testing.T) {
			assert.Equal(t, tt.want, AssociationsFor(tt.anchor, tt.target))
		})
	}
}

func TestEdge_JSON(t *testing.T) {
	empty, err := json.Marshal(Edge{})
	assert.NoError(t, err)
	assert.JSONEq(t, `{}`, string(empty))

	full, err := json.Marshal(Edge{TypeID: 3, TypeName: "Translation", Direction: "backward"})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"relationshipTypeId":3,"relationshipType":"Translation","direction":"backward"}`, string(full))
}

func TestAssociation_String(t *testing.T) {
	assert.Equal(t, "generic", Generic.String())
	assert.Equal(t, "containment", Containment.String())
	assert.Equal(t, "ownership", Ownership.String())
}
