// Package seed holds the demo catalogue and the code that writes it.
package seed

import "bbws/internal/entity"

type EntitySeed struct {
	BBID           string
	Kind           entity.Kind
	Name           string
	SortName       string
	AliasLanguage  string
	Type           string
	Disambiguation string
	Languages      []string
	BeginDate      string
	EndDate        string
	Ended          bool
	Edition        *EditionSeed
}

type EditionSeed struct {
	Group        string
	Format       string
	Status       string
	Pages        int
	ReleaseDates []string
	Publishers   []string
}

type IdentifierSeed struct {
	BBID  string
	Type  string
	Value string
}

type RelationshipSeed struct {
	Type   string
	Source string
	Target string
}

type Catalogue struct {
	Entities      []EntitySeed
	Identifiers   []IdentifierSeed
	Relationships []RelationshipSeed
}

const (
	AustenBBID    = "0c7b9d1e-6f4a-4b8e-9a21-1f0e3d5c7a01"
	PrideBBID     = "0c7b9d1e-6f4a-4b8e-9a21-1f0e3d5c7a02"
	GroupBBID     = "0c7b9d1e-6f4a-4b8e-9a21-1f0e3d5c7a03"
	HardcoverBBID = "0c7b9d1e-6f4a-4b8e-9a21-1f0e3d5c7a04"
	EbookENBBID   = "0c7b9d1e-6f4a-4b8e-9a21-1f0e3d5c7a05"
	EbookFRBBID   = "0c7b9d1e-6f4a-4b8e-9a21-1f0e3d5c7a06"
	AnnotatedBBID = "0c7b9d1e-6f4a-4b8e-9a21-1f0e3d5c7a07"
	EgertonBBID   = "0c7b9d1e-6f4a-4b8e-9a21-1f0e3d5c7a08"
	PenguinBBID   = "0c7b9d1e-6f4a-4b8e-9a21-1f0e3d5c7a09"
)

// Demo is a small catalogue around one edition group with three
// member editions (Hardcover/English, eBook/English, eBook/French) and one
// non-member edition linked to the group by a relationship.
func Demo() Catalogue {
	return Catalogue{
		Entities: []EntitySeed{
			{
				BBID: AustenBBID, Kind: entity.KindAuthor, Name: "Jane Austen", SortName: "Austen, Jane",
				AliasLanguage: "English", Type: "Person", Languages: []string{"English"},
				BeginDate: "1775-12-16", EndDate: "1817-07-18", Ended: true,
			},
			{
				BBID: PrideBBID, Kind: entity.KindWork, Name: "Pride and Prejudice", SortName: "Pride and Prejudice",
				AliasLanguage: "English", Type: "Novel", Languages: []string{"English"},
			},
			{
				BBID: GroupBBID, Kind: entity.KindEditionGroup, Name: "Pride and Prejudice", SortName: "Pride and Prejudice",
				AliasLanguage: "English", Type: "Book",
			},
			{
				BBID: HardcoverBBID, Kind: entity.KindEdition, Name: "Pride and Prejudice", SortName: "Pride and Prejudice",
				AliasLanguage: "English", Languages: []string{"English"},
				Edition: &EditionSeed{Group: GroupBBID, Format: "Hardcover", Status: "Official", Pages: 432,
					ReleaseDates: []string{"1813-01-28"}, Publishers: []string{EgertonBBID}},
			},
			{
				BBID: EbookENBBID, Kind: entity.KindEdition, Name: "Pride and Prejudice", SortName: "Pride and Prejudice",
				AliasLanguage: "English", Languages: []string{"English"},
				Edition: &EditionSeed{Group: GroupBBID, Format: "eBook", Status: "Official",
					ReleaseDates: []string{"2008-06-01"}, Publishers: []string{PenguinBBID}},
			},
			{
				BBID: EbookFRBBID, Kind: entity.KindEdition, Name: "Orgueil et Préjugés", SortName: "Orgueil et Préjugés",
				AliasLanguage: "French", Languages: []string{"French"},
				Edition: &EditionSeed{Group: GroupBBID, Format: "eBook", Status: "Official",
					ReleaseDates: []string{"2011-03-15"}},
			},
			{
				BBID: AnnotatedBBID, Kind: entity.KindEdition, Name: "The Annotated Pride and Prejudice", SortName: "Annotated Pride and Prejudice, The",
				AliasLanguage: "English", Languages: []string{"English"}, Disambiguation: "Shapard annotations",
				Edition: &EditionSeed{Format: "Paperback", Status: "Official", Pages: 740,
					ReleaseDates: []string{"2007-10-09"}, Publishers: []string{PenguinBBID}},
			},
			{
				BBID: EgertonBBID, Kind: entity.KindPublisher, Name: "T. Egerton", SortName: "Egerton, T.",
				AliasLanguage: "English", Type: "Publisher", BeginDate: "1780", EndDate: "1830", Ended: true,
			},
			{
				BBID: PenguinBBID, Kind: entity.KindPublisher, Name: "Penguin Classics", SortName: "Penguin Classics",
				AliasLanguage: "English", Type: "Imprint", BeginDate: "1946",
			},
		},
		Identifiers: []IdentifierSeed{
			{BBID: HardcoverBBID, Type: "ISBN-13", Value: "9780141439518"},
			{BBID: PrideBBID, Type: "Wikidata ID", Value: "Q170583"},
			{BBID: AustenBBID, Type: "Wikidata ID", Value: "Q36322"},
		},
		Relationships: []RelationshipSeed{
			{Type: "Author", Source: AustenBBID, Target: PrideBBID},
			{Type: "Contains", Source: HardcoverBBID, Target: PrideBBID},
			{Type: "Contains", Source: EbookENBBID, Target: PrideBBID},
			{Type: "Translation", Source: EbookFRBBID, Target: PrideBBID},
			{Type: "Inspiration", Source: AnnotatedBBID, Target: GroupBBID},
		},
	}
}
