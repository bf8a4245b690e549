package relationship

import (
	"context"
	"fmt"
	"time"

	"bbws/internal/apperr"
	"bbws/internal/entity"
	"bbws/internal/platform/postgres"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepo reads relationship edges from the catalogue schema.
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

func (r *PostgresRepo) ListByEntity(ctx context.Context, bbid string) ([]Relationship, error) {
	ds := postgres.Dialect.
		From(goqu.T("relationships").As("r")).
		Join(goqu.T("relationship_types").As("rt"), goqu.On(goqu.I("rt.id").Eq(goqu.I("r.type_id")))).
		Join(goqu.T("entities").As("se"), goqu.On(goqu.I("se.bbid").Eq(goqu.I("r.source_bbid")))).
		Join(goqu.T("entities").As("te"), goqu.On(goqu.I("te.bbid").Eq(goqu.I("r.target_bbid")))).
		Select(
			goqu.I("r.id"),
			goqu.I("r.type_id"),
			goqu.I("rt.label"),
			goqu.I("rt.link_phrase"),
			goqu.I("rt.reverse_link_phrase"),
			goqu.L("r.source_bbid::text"),
			goqu.I("se.kind"),
			goqu.L("r.target_bbid::text"),
			goqu.I("te.kind"),
		).
		Where(goqu.Or(
			goqu.I("r.source_bbid").Eq(bbid),
			goqu.I("r.target_bbid").Eq(bbid),
		)).
		Order(goqu.I("r.id").Asc())
	query, args, err := postgres.ToSQL(ds)
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, args...)
	if err != nil {
		return nil, apperr.Storage(fmt.Errorf("list relationships %s: %w", bbid, err))
	}
	defer rows.Close()

	out := []Relationship{}
	for rows.Next() {
		var (
			rel                    Relationship
			sourceKind, targetKind string
		)
		if err := rows.Scan(
			&rel.ID, &rel.TypeID, &rel.TypeName, &rel.LinkPhrase, &rel.ReverseLinkPhrase,
			&rel.SourceBBID, &sourceKind, &rel.TargetBBID, &targetKind,
		); err != nil {
			return nil, apperr.Storage(fmt.Errorf("scan relationship: %w", err))
		}
		rel.SourceKind = entity.Kind(sourceKind)
		rel.TargetKind = entity.Kind(targetKind)
		out = append(out, rel)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(err)
	}
	return out, nil
}
