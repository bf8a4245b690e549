package relationship

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"bbws/internal/apperr"
	"bbws/internal/entity"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	workBBID    = "5c2a1a44-0d55-4d8b-9d34-0c8cc6e4a001"
	authorBBID  = "5c2a1a44-0d55-4d8b-9d34-0c8cc6e4a002"
	editionBBID = "5c2a1a44-0d55-4d8b-9d34-0c8cc6e4a003"
)

func TestService_ForEntity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	loader := NewMockEntityLoader(ctrl)
	repo := NewMockRepository(ctrl)
	service := NewService(loader, repo)
	ctx := context.Background()

	loader.EXPECT().Load(gomock.Any(), entity.KindWork, workBBID).Return(entity.Entity{BBID: workBBID, Kind: entity.KindWork}, nil)
	repo.EXPECT().ListByEntity(gomock.Any(), workBBID).Return([]Relationship{
		{ID: 1, TypeID: 8, TypeName: "Author", LinkPhrase: "wrote", ReverseLinkPhrase: "was written by",
			SourceBBID: authorBBID, SourceKind: entity.KindAuthor, TargetBBID: workBBID, TargetKind: entity.KindWork},
		{ID: 2, TypeID: 10, TypeName: "Contains", LinkPhrase: "contains", ReverseLinkPhrase: "is contained by",
			SourceBBID: editionBBID, SourceKind: entity.KindEdition, TargetBBID: workBBID, TargetKind: entity.KindWork},
	}, nil)
	loader.EXPECT().LoadMany(gomock.Any(), []string{authorBBID, editionBBID}).Return([]entity.Entity{
		{BBID: authorBBID, Kind: entity.KindAuthor},
	}, nil)

	list, err := service.ForEntity(ctx, entity.KindWork, workBBID)
	require.NoError(t, err)
	assert.Equal(t, workBBID, list.BBID)
	require.Len(t, list.Relationships, 2)

	first := list.Relationships[0]
	assert.Equal(t, DirectionBackward, first.Direction)
	assert.Equal(t, "was written by", first.Type)
	assert.Equal(t, 8, first.TypeID)
	require.NotNil(t, first.LinkedEntity)
	assert.Equal(t, entity.KindAuthor, first.LinkedEntity.Kind)

	assert.Nil(t, list.Relationships[1].LinkedEntity, "dangling endpoint")
}

func TestService_ForEntity_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	loader := NewMockEntityLoader(ctrl)
	service := NewService(loader, NewMockRepository(ctrl))

	loader.EXPECT().Load(gomock.Any(), entity.KindWork, workBBID).Return(entity.Entity{}, apperr.ErrEntityNotFound)

	_, err := service.ForEntity(context.Background(), entity.KindWork, workBBID)
	assert.ErrorIs(t, err, apperr.ErrEntityNotFound)
}

func TestHTTPHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	loader := NewMockEntityLoader(ctrl)
	repo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(loader, repo), entity.KindEdition)

	t.Run("no relationships", func(t *testing.T) {
		loader.EXPECT().Load(gomock.Any(), entity.KindEdition, editionBBID).Return(entity.Entity{BBID: editionBBID, Kind: entity.KindEdition}, nil)
		repo.EXPECT().ListByEntity(gomock.Any(), editionBBID).Return([]Relationship{}, nil)
		loader.EXPECT().LoadMany(gomock.Any(), []string{}).Return([]entity.Entity{}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/edition/"+editionBBID+"/relationships", nil)
		r.SetPathValue("bbid", editionBBID)

		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"relationships":[]`)
	})

	t.Run("malformed id", func(t *testing.T) {
		loader.EXPECT().Load(gomock.Any(), entity.KindEdition, "nope").Return(entity.Entity{}, apperr.ErrInvalidIdentifier)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/edition/nope/relationships", nil)
		r.SetPathValue("bbid", "nope")

		handler.List(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
