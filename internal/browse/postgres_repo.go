package browse

import (
	"context"
	"fmt"
	"time"

	"bbws/internal/apperr"
	"bbws/internal/platform/postgres"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepo runs the association queries against the catalogue schema.
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

func (r *PostgresRepo) EditionsInGroup(ctx context.Context, groupBBID string) ([]string, error) {
	ds := postgres.Dialect.
		From(goqu.T("editions").As("ed")).
		Select(goqu.L("ed.bbid::text")).
		Where(goqu.I("ed.edition_group_bbid").Eq(groupBBID)).
		Order(goqu.I("ed.bbid").Asc())
	return r.bbids(ctx, ds, "editions in group "+groupBBID)
}

func (r *PostgresRepo) EditionsByPublisher(ctx context.Context, publisherBBID string) ([]string, error) {
	ds := postgres.Dialect.
		From(goqu.T("edition_publishers").As("ep")).
		Select(goqu.L("ep.edition_bbid::text")).
		Where(goqu.I("ep.publisher_bbid").Eq(publisherBBID)).
		Order(goqu.I("ep.edition_bbid").Asc())
	return r.bbids(ctx, ds, "editions by publisher "+publisherBBID)
}

func (r *PostgresRepo) PublishersOfEdition(ctx context.Context, editionBBID string) ([]string, error) {
	ds := postgres.Dialect.
		From(goqu.T("edition_publishers").As("ep")).
		Select(goqu.L("ep.publisher_bbid::text")).
		Where(goqu.I("ep.edition_bbid").Eq(editionBBID)).
		Order(goqu.I("ep.position").Asc())
	return r.bbids(ctx, ds, "publishers of edition "+editionBBID)
}

func (r *PostgresRepo) bbids(ctx context.Context, ds *goqu.SelectDataset, what string) ([]string, error) {
	query, args, err := postgres.ToSQL(ds)
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, args...)
	if err != nil {
		return nil, apperr.Storage(fmt.Errorf("%s: %w", what, err))
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, apperr.Storage(fmt.Errorf("scan %s: %w", what, err))
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(err)
	}
	return out, nil
}
