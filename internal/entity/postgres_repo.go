package entity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bbws/internal/apperr"
	"bbws/internal/platform/postgres"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	languagesSubquery = `COALESCE((
		SELECT array_agg(l.name ORDER BY el.position)
		FROM entity_languages el JOIN languages l ON l.id = el.language_id
		WHERE el.bbid = e.bbid), '{}'::text[])`
	releaseDatesSubquery = `COALESCE((
		SELECT array_agg(re.date ORDER BY re.position)
		FROM release_events re
		WHERE re.bbid = e.bbid), '{}'::text[])`
)

// PostgresRepo reads entities from the catalogue schema.
type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

// NewPostgresRepo bounds every query by timeout.
func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// hydrateQuery selects an entity with its whole eager-load set: default
// alias and its language, disambiguation, type, edition format/status,
// dimensions, languages and release events.
func hydrateQuery() *goqu.SelectDataset {
	return postgres.Dialect.
		From(goqu.T("entities").As("e")).
		LeftJoin(goqu.T("aliases").As("a"), goqu.On(goqu.I("a.id").Eq(goqu.I("e.default_alias_id")))).
		LeftJoin(goqu.T("languages").As("al"), goqu.On(goqu.I("al.id").Eq(goqu.I("a.language_id")))).
		LeftJoin(goqu.T("entity_types").As("t"), goqu.On(goqu.I("t.id").Eq(goqu.I("e.type_id")))).
		LeftJoin(goqu.T("editions").As("ed"), goqu.On(goqu.I("ed.bbid").Eq(goqu.I("e.bbid")))).
		LeftJoin(goqu.T("edition_formats").As("f"), goqu.On(goqu.I("f.id").Eq(goqu.I("ed.format_id")))).
		LeftJoin(goqu.T("edition_statuses").As("s"), goqu.On(goqu.I("s.id").Eq(goqu.I("ed.status_id")))).
		Select(
			goqu.L("e.bbid::text"),
			goqu.I("e.kind"),
			goqu.I("a.name"),
			goqu.I("a.sort_name"),
			goqu.I("al.name"),
			goqu.I("e.disambiguation"),
			goqu.I("t.label"),
			goqu.I("f.label"),
			goqu.I("s.label"),
			goqu.L("ed.edition_group_bbid::text"),
			goqu.I("ed.height"),
			goqu.I("ed.width"),
			goqu.I("ed.depth"),
			goqu.I("ed.weight"),
			goqu.I("ed.pages"),
			goqu.I("e.begin_date"),
			goqu.I("e.end_date"),
			goqu.I("e.ended"),
			goqu.L(languagesSubquery),
			goqu.L(releaseDatesSubquery),
		)
}

func scanEntity(row pgx.Row) (Entity, error) {
	var (
		e                                   Entity
		kind                                string
		aliasName, aliasSort, aliasLanguage *string
	)
	err := row.Scan(
		&e.BBID, &kind,
		&aliasName, &aliasSort, &aliasLanguage,
		&e.Disambiguation, &e.TypeName, &e.FormatName, &e.StatusName,
		&e.EditionGroupBBID,
		&e.Dimensions.Height, &e.Dimensions.Width, &e.Dimensions.Depth, &e.Dimensions.Weight, &e.Dimensions.Pages,
		&e.BeginDate, &e.EndDate, &e.Ended,
		&e.Languages, &e.ReleaseDates,
	)
	if err != nil {
		return Entity{}, err
	}
	e.Kind = Kind(kind)
	if aliasName != nil {
		e.DefaultAlias = &Alias{Name: *aliasName, Language: aliasLanguage, Primary: true}
		if aliasSort != nil {
			e.DefaultAlias.SortName = *aliasSort
		}
	}
	return e, nil
}

func (r *PostgresRepo) FindByBBID(ctx context.Context, kind Kind, bbid string) (Entity, error) {
	ds := hydrateQuery().Where(goqu.I("e.bbid").Eq(bbid))
	if kind != KindAny {
		ds = ds.Where(goqu.I("e.kind").Eq(string(kind)))
	}
	query, args, err := postgres.ToSQL(ds)
	if err != nil {
		return Entity{}, err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	e, err := scanEntity(r.db.QueryRow(timeoutCtx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Entity{}, fmt.Errorf("%s %s: %w", kind, bbid, apperr.ErrEntityNotFound)
		}
		return Entity{}, apperr.Storage(fmt.Errorf("find entity %s: %w", bbid, err))
	}
	return e, nil
}

func (r *PostgresRepo) FindMany(ctx context.Context, bbids []string) ([]Entity, error) {
	ids := uniq(bbids)
	if len(ids) == 0 {
		return []Entity{}, nil
	}
	query, args, err := postgres.ToSQL(hydrateQuery().Where(goqu.I("e.bbid").In(ids)))
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, args...)
	if err != nil {
		return nil, apperr.Storage(fmt.Errorf("find entities: %w", err))
	}
	defer rows.Close()

	byID := make(map[string]Entity, len(ids))
	for rows.Next() {
		e, err := scanEntity(rows)
		if err != nil {
			return nil, apperr.Storage(fmt.Errorf("scan entity: %w", err))
		}
		byID[e.BBID] = e
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(err)
	}

	out := make([]Entity, 0, len(byID))
	for _, id := range ids {
		if e, ok := byID[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *PostgresRepo) ListAliases(ctx context.Context, bbid string) ([]Alias, error) {
	ds := postgres.Dialect.
		From(goqu.T("aliases").As("a")).
		LeftJoin(goqu.T("languages").As("l"), goqu.On(goqu.I("l.id").Eq(goqu.I("a.language_id")))).
		Select(goqu.I("a.name"), goqu.I("a.sort_name"), goqu.I("l.name"), goqu.I("a.is_primary")).
		Where(goqu.I("a.bbid").Eq(bbid)).
		Order(goqu.I("a.id").Asc())
	query, args, err := postgres.ToSQL(ds)
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, args...)
	if err != nil {
		return nil, apperr.Storage(fmt.Errorf("list aliases %s: %w", bbid, err))
	}
	defer rows.Close()

	out := []Alias{}
	for rows.Next() {
		var a Alias
		if err := rows.Scan(&a.Name, &a.SortName, &a.Language, &a.Primary); err != nil {
			return nil, apperr.Storage(err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(err)
	}
	return out, nil
}

func (r *PostgresRepo) ListIdentifiers(ctx context.Context, bbid string) ([]Identifier, error) {
	ds := postgres.Dialect.
		From(goqu.T("identifiers").As("i")).
		Join(goqu.T("identifier_types").As("it"), goqu.On(goqu.I("it.id").Eq(goqu.I("i.type_id")))).
		Select(goqu.I("i.type_id"), goqu.I("it.label"), goqu.I("i.value")).
		Where(goqu.I("i.bbid").Eq(bbid)).
		Order(goqu.I("i.id").Asc())
	query, args, err := postgres.ToSQL(ds)
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, args...)
	if err != nil {
		return nil, apperr.Storage(fmt.Errorf("list identifiers %s: %w", bbid, err))
	}
	defer rows.Close()

	out := []Identifier{}
	for rows.Next() {
		var i Identifier
		if err := rows.Scan(&i.TypeID, &i.Type, &i.Value); err != nil {
			return nil, apperr.Storage(err)
		}
		out = append(out, i)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(err)
	}
	return out, nil
}

func uniq(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
