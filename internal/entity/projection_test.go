package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestProject_Edition(t *testing.T) {
	e := Entity{
		BBID:           "0f0e6f3c-5c7d-4d9a-9a43-2b7f3e8f1a01",
		Kind:           KindEdition,
		DefaultAlias:   &Alias{Name: "Dune", SortName: "Dune", Language: ptr("English"), Primary: true},
		Disambiguation: ptr("40th anniversary"),
		FormatName:     ptr("Hardcover"),
		StatusName:     ptr("Official"),
		Languages:      []string{"English", "French", "English"},
		Dimensions:     Dimensions{Height: ptr(240), Pages: ptr(612)},
		ReleaseDates:   []string{"2005-08-02", "2010-01-01"},
		Ended:          true,
	}

	p := Project(e)

	assert.Equal(t, e.BBID, p.BBID)
	assert.Equal(t, KindEdition, p.Kind)
	require.NotNil(t, p.DefaultAlias)
	assert.Equal(t, "Dune", p.DefaultAlias.Name)
	assert.Nil(t, p.DefaultAlias.Primary)
	assert.Equal(t, []string{"English", "French"}, p.Languages)
	assert.Equal(t, "Hardcover", *p.EditionFormat)
	assert.Equal(t, 612, *p.Pages)
	assert.Nil(t, p.Width)
	assert.Equal(t, "2005-08-02", *p.ReleaseDate)
	assert.Nil(t, p.Ended, "ended is only reported for authors and publishers")
}

func TestProject_MissingOptionalFields(t *testing.T) {
	p := Project(Entity{BBID: "b", Kind: KindWork})

	assert.Nil(t, p.DefaultAlias)
	assert.Nil(t, p.ReleaseDate)
	assert.NotNil(t, p.Languages)
	assert.Empty(t, p.Languages)

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"bbid":"b","entityType":"Work","languages":[]}`, string(raw))
}

func TestProject_Lifespan(t *testing.T) {
	p := Project(Entity{BBID: "a", Kind: KindAuthor, BeginDate: ptr("1920-10-08"), EndDate: ptr("1986-02-11"), Ended: true, TypeName: ptr("Person")})

	assert.Equal(t, "Person", *p.Type)
	assert.Equal(t, "1920-10-08", *p.BeginDate)
	require.NotNil(t, p.Ended)
	assert.True(t, *p.Ended)
}

func TestProject_DoesNotAliasInputLanguages(t *testing.T) {
	langs := []string{"English"}
	p := Project(Entity{BBID: "b", Kind: KindEdition, Languages: langs})
	p.Languages[0] = "French"
	assert.Equal(t, "English", langs[0])
}

func TestProjectAlias(t *testing.T) {
	v := ProjectAlias(Alias{Name: "Dune", SortName: "Dune", Primary: false})

	raw, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Dune","sortName":"Dune","aliasLanguage":null,"primary":false}`, string(raw))
}
