package storage

import (
	"context"
	"fmt"

	"github.com/VictoriaMetrics/metrics"

	"github.com/roach88/keyspace/keyexpr"
)

var (
	putsTotal    = metrics.NewCounter("keyspace_storage_puts_total")
	deletesTotal = metrics.NewCounter("keyspace_storage_deletes_total")
)

// Put stores value under key's local name, replacing any previous sample.
// key must be concrete (non-wild) and covered by the backend root.
func (b *Backend) Put(ctx context.Context, key keyexpr.KeyExpr, value []byte) error {
	local, err := b.LocalKey(key)
	if err != nil {
		return err
	}

	seq := b.seq.Add(1)
	_, err = b.db.ExecContext(ctx,
		`INSERT INTO samples (key, value, seq) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, seq = excluded.seq`,
		local.String(), value, seq)
	if err != nil {
		return fmt.Errorf("failed to store sample %s: %w", local.String(), err)
	}
	putsTotal.Inc()
	return nil
}

// Delete removes the sample stored under key's local name. Deleting an
// absent key is not an error.
func (b *Backend) Delete(ctx context.Context, key keyexpr.KeyExpr) error {
	local, err := b.LocalKey(key)
	if err != nil {
		return err
	}

	if _, err := b.db.ExecContext(ctx,
		`DELETE FROM samples WHERE key = ?`, local.String()); err != nil {
		return fmt.Errorf("failed to delete sample %s: %w", local.String(), err)
	}
	deletesTotal.Inc()
	return nil
}
