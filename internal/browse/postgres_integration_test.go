package browse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bbws/internal/entity"
	"bbws/internal/relationship"
	"bbws/internal/seed"
	"bbws/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func integrationService(t *testing.T) *Service {
	pool := testutil.Pool(t)
	entities := entity.NewService(entity.NewPostgresRepo(pool, 3*time.Second))
	return NewService(entities, relationship.NewPostgresRepo(pool, 3*time.Second), NewPostgresRepo(pool, 3*time.Second))
}

func browseBBIDs(t *testing.T, svc *Service, c Criteria) []string {
	t.Helper()
	result, err := svc.Browse(context.Background(), c)
	require.NoError(t, err)
	return bbidsOf(result.Records)
}

func TestPostgres_BrowseEditionGroup(t *testing.T) {
	svc := integrationService(t)
	c := Criteria{AnchorID: seed.GroupBBID, AnchorKind: entity.KindEditionGroup, TargetKind: entity.KindEdition}

	all := browseBBIDs(t, svc, c)
	assert.Equal(t, seed.AnnotatedBBID, all[0], "relationship records come first")
	assert.ElementsMatch(t, []string{seed.AnnotatedBBID, seed.HardcoverBBID, seed.EbookENBBID, seed.EbookFRBBID}, all)

	c.Format, c.Language = "ebook", "english"
	assert.Equal(t, []string{seed.EbookENBBID}, browseBBIDs(t, svc, c))
}

func TestPostgres_BrowseReverseAndOwnership(t *testing.T) {
	svc := integrationService(t)

	groups := browseBBIDs(t, svc, Criteria{AnchorID: seed.EbookFRBBID, AnchorKind: entity.KindEdition, TargetKind: entity.KindEditionGroup})
	assert.Equal(t, []string{seed.GroupBBID}, groups)

	editions := browseBBIDs(t, svc, Criteria{AnchorID: seed.PenguinBBID, AnchorKind: entity.KindPublisher, TargetKind: entity.KindEdition})
	assert.ElementsMatch(t, []string{seed.EbookENBBID, seed.AnnotatedBBID}, editions)

	publishers := browseBBIDs(t, svc, Criteria{AnchorID: seed.HardcoverBBID, AnchorKind: entity.KindEdition, TargetKind: entity.KindPublisher})
	assert.Equal(t, []string{seed.EgertonBBID}, publishers)
}

func TestPostgres_BrowseHTTP(t *testing.T) {
	handler := NewHTTPHandler(integrationService(t), entity.KindAuthor)

	w := httptest.NewRecorder()
	handler.Browse(w, httptest.NewRequest(http.MethodGet, "/author?work="+seed.PrideBBID, nil))
	res := testutil.RecordHTTPResponse(w)

	require.Equal(t, http.StatusOK, res.Code)
	authors, ok := res.Data()["authors"].([]interface{})
	require.True(t, ok)
	require.Len(t, authors, 1)
	record := authors[0].(map[string]interface{})
	assert.Equal(t, seed.AustenBBID, record["entity"].(map[string]interface{})["bbid"])
	assert.Equal(t, "backward", record["relationship"].(map[string]interface{})["direction"])

	w = httptest.NewRecorder()
	handler.Browse(w, httptest.NewRequest(http.MethodGet, "/author?work=00000000-0000-4000-8000-000000000000", nil))
	res = testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.Equal(t, "NOT_FOUND", res.ErrorCode())
}
