package seed

import (
	"context"
	"fmt"

	"bbws/internal/platform/postgres"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jackc/pgx/v5"
)

// Tables lists the catalogue tables in delete order. Reference data from
// the migrations is not included.
var Tables = []string{
	"relationships", "edition_publishers", "editions", "release_events",
	"entity_languages", "identifiers", "aliases", "entities",
}

// Reset deletes every catalogue row.
func Reset(ctx context.Context, tx pgx.Tx) error {
	for _, table := range Tables {
		if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("reset %s: %w", table, err)
		}
	}
	return nil
}

// Insert writes c inside tx. Reference labels (languages, formats, types)
// must already exist.
func Insert(ctx context.Context, tx pgx.Tx, c Catalogue) error {
	for _, e := range c.Entities {
		if err := insertEntity(ctx, tx, e); err != nil {
			return fmt.Errorf("entity %s: %w", e.BBID, err)
		}
	}
	// Publishers may be listed after the editions that reference them.
	for _, e := range c.Entities {
		if e.Edition == nil {
			continue
		}
		for i, publisher := range e.Edition.Publishers {
			err := execInsert(ctx, tx, postgres.Dialect.Insert("edition_publishers").Rows(goqu.Record{
				"edition_bbid":   e.BBID,
				"publisher_bbid": publisher,
				"position":       i,
			}))
			if err != nil {
				return fmt.Errorf("publisher of %s: %w", e.BBID, err)
			}
		}
	}
	for _, id := range c.Identifiers {
		err := execInsert(ctx, tx, postgres.Dialect.Insert("identifiers").Rows(goqu.Record{
			"bbid":    id.BBID,
			"type_id": lookup("identifier_types", "label", id.Type),
			"value":   id.Value,
		}))
		if err != nil {
			return fmt.Errorf("identifier %s: %w", id.Value, err)
		}
	}
	for _, rel := range c.Relationships {
		err := execInsert(ctx, tx, postgres.Dialect.Insert("relationships").Rows(goqu.Record{
			"type_id":     lookup("relationship_types", "label", rel.Type),
			"source_bbid": rel.Source,
			"target_bbid": rel.Target,
		}))
		if err != nil {
			return fmt.Errorf("relationship %s %s->%s: %w", rel.Type, rel.Source, rel.Target, err)
		}
	}
	return nil
}

func insertEntity(ctx context.Context, tx pgx.Tx, e EntitySeed) error {
	row := goqu.Record{
		"bbid":           e.BBID,
		"kind":           string(e.Kind),
		"disambiguation": nullable(e.Disambiguation),
		"begin_date":     nullable(e.BeginDate),
		"end_date":       nullable(e.EndDate),
		"ended":          e.Ended,
	}
	if e.Type != "" {
		row["type_id"] = goqu.L("(SELECT id FROM entity_types WHERE kind = ? AND label = ?)", string(e.Kind), e.Type)
	}
	if err := execInsert(ctx, tx, postgres.Dialect.Insert("entities").Rows(row)); err != nil {
		return err
	}

	alias := postgres.Dialect.Insert("aliases").Rows(goqu.Record{
		"bbid":        e.BBID,
		"name":        e.Name,
		"sort_name":   e.SortName,
		"language_id": lookup("languages", "name", e.AliasLanguage),
		"is_primary":  true,
	}).Returning("id")
	query, args, err := alias.Prepared(true).ToSQL()
	if err != nil {
		return err
	}
	var aliasID int
	if err := tx.QueryRow(ctx, query, args...).Scan(&aliasID); err != nil {
		return fmt.Errorf("alias: %w", err)
	}
	if _, err := tx.Exec(ctx, "UPDATE entities SET default_alias_id = $1 WHERE bbid = $2", aliasID, e.BBID); err != nil {
		return fmt.Errorf("default alias: %w", err)
	}

	for i, lang := range e.Languages {
		err := execInsert(ctx, tx, postgres.Dialect.Insert("entity_languages").Rows(goqu.Record{
			"bbid":        e.BBID,
			"language_id": lookup("languages", "name", lang),
			"position":    i,
		}))
		if err != nil {
			return fmt.Errorf("language %s: %w", lang, err)
		}
	}

	if e.Edition == nil {
		return nil
	}
	ed := goqu.Record{
		"bbid":               e.BBID,
		"edition_group_bbid": nullable(e.Edition.Group),
		"format_id":          lookup("edition_formats", "label", e.Edition.Format),
		"status_id":          lookup("edition_statuses", "label", e.Edition.Status),
	}
	if e.Edition.Pages > 0 {
		ed["pages"] = e.Edition.Pages
	}
	if err := execInsert(ctx, tx, postgres.Dialect.Insert("editions").Rows(ed)); err != nil {
		return fmt.Errorf("edition: %w", err)
	}
	for i, date := range e.Edition.ReleaseDates {
		err := execInsert(ctx, tx, postgres.Dialect.Insert("release_events").Rows(goqu.Record{
			"bbid":     e.BBID,
			"date":     date,
			"position": i,
		}))
		if err != nil {
			return fmt.Errorf("release event: %w", err)
		}
	}
	return nil
}

func lookup(table, column, value string) exp.LiteralExpression {
	return goqu.L(fmt.Sprintf("(SELECT id FROM %s WHERE %s = ?)", table, column), value)
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func execInsert(ctx context.Context, tx pgx.Tx, ds *goqu.InsertDataset) error {
	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, query, args...)
	return err
}
