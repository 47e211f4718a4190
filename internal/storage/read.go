package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/VictoriaMetrics/metrics"

	"github.com/roach88/keyspace/keyexpr"
)

var (
	getsTotal    = metrics.NewCounter("keyspace_storage_gets_total")
	queriesTotal = metrics.NewCounter("keyspace_storage_queries_total")
)

// Get returns the sample stored under key's local name.
func (b *Backend) Get(ctx context.Context, key keyexpr.KeyExpr) (Sample, error) {
	local, err := b.LocalKey(key)
	if err != nil {
		return Sample{}, err
	}

	var (
		value []byte
		seq   int64
	)
	err = b.db.QueryRowContext(ctx,
		`SELECT value, seq FROM samples WHERE key = ?`, local.String()).
		Scan(&value, &seq)
	if errors.Is(err, sql.ErrNoRows) {
		return Sample{}, fmt.Errorf("%w: %s", ErrNotFound, key.String())
	}
	if err != nil {
		return Sample{}, fmt.Errorf("failed to read sample %s: %w", local.String(), err)
	}
	getsTotal.Inc()
	return Sample{Key: local, Value: value, Seq: seq}, nil
}

// Query returns every sample whose local key matches selector, which may be
// wildcarded. The selector is stripped to residual patterns once (cached),
// and stored keys are matched against them with the set algebra.
//
// Matching runs in process over all rows, ordered by key for deterministic
// results. A larger backend would push the residuals' non-wild prefixes into
// the SQL; at this scale the full scan is simpler and fast enough.
func (b *Backend) Query(ctx context.Context, selector keyexpr.KeyExpr) ([]Sample, error) {
	queriesTotal.Inc()
	residuals := b.plan(selector)
	if len(residuals) == 0 {
		return nil, nil
	}

	rows, err := b.db.QueryContext(ctx,
		`SELECT key, value, seq FROM samples ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("failed to query samples: %w", err)
	}
	defer rows.Close()

	var out []Sample
	for rows.Next() {
		var (
			key   string
			value []byte
			seq   int64
		)
		if err := rows.Scan(&key, &value, &seq); err != nil {
			return nil, fmt.Errorf("failed to scan sample: %w", err)
		}
		// Keys were validated on Put, so the stored text is canonical.
		stored := keyexpr.FromStringUnchecked(key)
		for _, r := range residuals {
			if r.Intersects(stored) {
				out = append(out, Sample{Key: stored, Value: value, Seq: seq})
				break
			}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate samples: %w", err)
	}
	return out, nil
}
