package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"moving_pricing/internal/domain/entities"
	"moving_pricing/internal/usecase/interfaces"
)

var ErrNoPublishedCatalog = errors.New("no active catalog row")

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresSource reads the newest active catalog document from a table of
// published catalogs:
//
//	CREATE TABLE rule_catalogs (
//	    rules_version TEXT PRIMARY KEY,
//	    document      JSONB NOT NULL,
//	    active        BOOLEAN NOT NULL DEFAULT false,
//	    published_at  TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
//
// The rules_version column is authoritative over the document's own field.
type PostgresSource struct {
	db    rowQuerier
	query string
}

var _ interfaces.ICatalogSource = (*PostgresSource)(nil)

// NewPostgresSource accepts a *pgxpool.Pool or any other pgx querier.
func NewPostgresSource(db rowQuerier, table string) *PostgresSource {
	return &PostgresSource{
		db: db,
		query: `SELECT rules_version, document FROM ` + pgx.Identifier{table}.Sanitize() + `
        WHERE active
        ORDER BY published_at DESC
        LIMIT 1`,
	}
}

func (s *PostgresSource) Load(ctx context.Context) (entities.RuleCatalog, error) {
	var version string
	var document []byte
	err := s.db.QueryRow(ctx, s.query).Scan(&version, &document)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.RuleCatalog{}, ErrNoPublishedCatalog
	}
	if err != nil {
		return entities.RuleCatalog{}, fmt.Errorf("query catalog: %w", err)
	}

	var c entities.RuleCatalog
	if err := json.Unmarshal(document, &c); err != nil {
		return entities.RuleCatalog{}, fmt.Errorf("decode catalog %s: %w", version, err)
	}
	c.RulesVersion = version
	return c, nil
}
