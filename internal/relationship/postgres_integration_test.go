package relationship

import (
	"context"
	"testing"
	"time"

	"bbws/internal/entity"
	"bbws/internal/seed"
	"bbws/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgres_ListByEntity(t *testing.T) {
	repo := NewPostgresRepo(testutil.Pool(t), 3*time.Second)

	rels, err := repo.ListByEntity(context.Background(), seed.PrideBBID)
	require.NoError(t, err)
	require.Len(t, rels, 4)

	types := make([]string, 0, len(rels))
	for i, rel := range rels {
		types = append(types, rel.TypeName)
		assert.Equal(t, seed.PrideBBID, rel.TargetBBID)
		assert.Equal(t, entity.KindWork, rel.TargetKind)
		if i > 0 {
			assert.Greater(t, rel.ID, rels[i-1].ID, "edges are ordered by id")
		}
	}
	assert.Equal(t, []string{"Author", "Contains", "Contains", "Translation"}, types)

	author := rels[0]
	assert.Equal(t, seed.AustenBBID, author.SourceBBID)
	assert.Equal(t, entity.KindAuthor, author.SourceKind)
	assert.Equal(t, "wrote", author.LinkPhrase)
	assert.Equal(t, "was written by", author.ReverseLinkPhrase)

	other, kind, dir := author.Other(seed.PrideBBID)
	assert.Equal(t, seed.AustenBBID, other)
	assert.Equal(t, entity.KindAuthor, kind)
	assert.Equal(t, DirectionBackward, dir)

	assert.Equal(t, seed.EbookFRBBID, rels[3].SourceBBID)
	assert.Equal(t, entity.KindEdition, rels[3].SourceKind)
}

func TestPostgres_ListByEntity_BothSides(t *testing.T) {
	repo := NewPostgresRepo(testutil.Pool(t), 3*time.Second)

	rels, err := repo.ListByEntity(context.Background(), seed.AnnotatedBBID)
	require.NoError(t, err)
	require.Len(t, rels, 1)
	assert.Equal(t, "Inspiration", rels[0].TypeName)
	assert.Equal(t, entity.KindEditionGroup, rels[0].TargetKind)
	_, _, dir := rels[0].Other(seed.AnnotatedBBID)
	assert.Equal(t, DirectionForward, dir)

	none, err := repo.ListByEntity(context.Background(), seed.PenguinBBID)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
