package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultPGQuery is the query run against a purchases table laid out like
// the CSV schema. Deployments with a different layout override it; the
// result must be (member, date, item) text columns.
const DefaultPGQuery = `SELECT member_number::text, purchase_date::text, item_description
FROM purchases ORDER BY member_number, purchase_date`

// PGSource reads transaction records from PostgreSQL.
type PGSource struct {
	pool  *pgxpool.Pool
	query string
}

// NewPGSource connects a pooled Postgres source. The URL is anything
// pgxpool.ParseConfig accepts.
func NewPGSource(ctx context.Context, databaseURL, query string) (*PGSource, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 1
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	if query == "" {
		query = DefaultPGQuery
	}
	return &PGSource{pool: pool, query: query}, nil
}

// Load runs the source query and merges the rows into transactions exactly
// as the CSV loader does.
func (p *PGSource) Load(ctx context.Context) ([]Transaction, error) {
	pgRows, err := p.pool.Query(ctx, p.query)
	if err != nil {
		return nil, fmt.Errorf("query purchases: %w", err)
	}
	defer pgRows.Close()

	var rows []Row
	for pgRows.Next() {
		var row Row
		if err := pgRows.Scan(&row.Member, &row.Date, &row.Item); err != nil {
			return nil, fmt.Errorf("scan purchase row: %w", err)
		}
		if row.Item == "" {
			continue
		}
		rows = append(rows, row)
	}
	if err := pgRows.Err(); err != nil {
		return nil, fmt.Errorf("read purchases: %w", err)
	}

	return mergeRows(rows), nil
}

// Ping checks database connectivity
func (p *PGSource) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Close closes the database connection pool
func (p *PGSource) Close() {
	p.pool.Close()
}
