package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"volunteerhub/internal/infra"
	"volunteerhub/internal/sqlinline"
)

// Postgres persists all buckets in a single records table keyed by
// (bucket, key); an identity column keeps insertion order. Queries go through
// the marker-checked SQL executor.
type Postgres struct {
	sql infra.SQLExecutor
}

func NewPostgres(sql infra.SQLExecutor) *Postgres {
	return &Postgres{sql: sql}
}

// EnsureSchema creates the records table when it does not exist yet.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := p.sql.Exec(ctx, sqlinline.QEnsureRecordsTable); err != nil {
		return fmt.Errorf("ensure records table: %w", err)
	}
	return nil
}

func (p *Postgres) Insert(ctx context.Context, bucket int, key string, value []byte) error {
	tag, err := p.sql.Exec(ctx, sqlinline.QInsertRecord, bucket, key, string(value))
	if err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDuplicateKey
	}
	return nil
}

func (p *Postgres) Get(ctx context.Context, bucket int, key string) ([]byte, error) {
	row := p.sql.QueryRow(ctx, sqlinline.QSelectRecord, bucket, key)
	var value []byte
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select record: %w", err)
	}
	return value, nil
}

func (p *Postgres) List(ctx context.Context, bucket int) ([][]byte, error) {
	rows, err := p.sql.Query(ctx, sqlinline.QListRecords, bucket)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var values [][]byte
	for rows.Next() {
		var value []byte
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		values = append(values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return values, nil
}

var _ KV = (*Postgres)(nil)
