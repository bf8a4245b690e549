package entity

// AliasView is the public shape of an alias.
type AliasView struct {
	Name     string  `json:"name"`
	SortName string  `json:"sortName"`
	Language *string `json:"aliasLanguage"`
	Primary  *bool   `json:"primary,omitempty"`
}

// Projection is the public basic-info view of an entity.
type Projection struct {
	BBID           string     `json:"bbid"`
	Kind           Kind       `json:"entityType"`
	DefaultAlias   *AliasView `json:"defaultAlias,omitempty"`
	Disambiguation *string    `json:"disambiguation,omitempty"`
	Type           *string    `json:"type,omitempty"`
	EditionFormat  *string    `json:"editionFormat,omitempty"`
	Status         *string    `json:"status,omitempty"`
	Languages      []string   `json:"languages"`
	Height         *int       `json:"height,omitempty"`
	Width          *int       `json:"width,omitempty"`
	Depth          *int       `json:"depth,omitempty"`
	Weight         *int       `json:"weight,omitempty"`
	Pages          *int       `json:"pages,omitempty"`
	ReleaseDate    *string    `json:"releaseDate,omitempty"`
	BeginDate      *string    `json:"beginDate,omitempty"`
	EndDate        *string    `json:"endDate,omitempty"`
	Ended          *bool      `json:"ended,omitempty"`
}

// Project maps a hydrated entity to its public fields. It never fails;
// absent optional fields are left nil.
func Project(e Entity) Projection {
	p := Projection{
		BBID:           e.BBID,
		Kind:           e.Kind,
		Disambiguation: e.Disambiguation,
		Type:           e.TypeName,
		EditionFormat:  e.FormatName,
		Status:         e.StatusName,
		Languages:      distinct(e.Languages),
		Height:         e.Dimensions.Height,
		Width:          e.Dimensions.Width,
		Depth:          e.Dimensions.Depth,
		Weight:         e.Dimensions.Weight,
		Pages:          e.Dimensions.Pages,
		BeginDate:      e.BeginDate,
		EndDate:        e.EndDate,
	}
	if e.DefaultAlias != nil {
		p.DefaultAlias = &AliasView{
			Name:     e.DefaultAlias.Name,
			SortName: e.DefaultAlias.SortName,
			Language: e.DefaultAlias.Language,
		}
	}
	if len(e.ReleaseDates) > 0 {
		date := e.ReleaseDates[0]
		p.ReleaseDate = &date
	}
	if e.Kind == KindAuthor || e.Kind == KindPublisher {
		ended := e.Ended
		p.Ended = &ended
	}
	return p
}

// ProjectAlias maps an alias for the alias listing, where the primary flag
// is reported.
func ProjectAlias(a Alias) AliasView {
	primary := a.Primary
	return AliasView{
		Name:     a.Name,
		SortName: a.SortName,
		Language: a.Language,
		Primary:  &primary,
	}
}

// distinct keeps the first occurrence of each name. The result is never nil.
func distinct(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
