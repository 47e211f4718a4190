package storage

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/roach88/keyspace/keyexpr"
)

//go:embed schema.sql
var schemaSQL string

var (
	// ErrWildKey is returned when a write or read targets a wildcarded key;
	// only selectors (Query) may carry wildcards.
	ErrWildKey = errors.New("storage: key contains wildcards")

	// ErrOutOfScope is returned when a key is not covered by the backend's
	// root expression, or names the bare root itself (which has no local
	// key).
	ErrOutOfScope = errors.New("storage: key is outside the backend root")

	// ErrNotFound is returned by Get for keys with no stored sample.
	ErrNotFound = errors.New("storage: key not found")
)

// Sample is one stored value, addressed by its local key.
type Sample struct {
	// Key is the local (prefix-stripped) key expression.
	Key keyexpr.KeyExpr

	// Value is the stored payload.
	Value []byte

	// Seq is the backend-local logical sequence of the write.
	Seq int64
}

// Backend stores samples under the local names induced by its root
// expression.
type Backend struct {
	db        *sql.DB
	id        string
	root      keyexpr.KeyExpr
	prefix    keyexpr.KeyExpr
	hasPrefix bool
	seq       atomic.Int64

	// plans caches selector -> residual patterns; StripPrefix is pure, so
	// entries never invalidate.
	plans *xsync.MapOf[string, []keyexpr.KeyExpr]
}

// Open creates or opens a SQLite database at path and registers a backend
// for root. The root's non-wild prefix is computed once here; when the
// root's first chunk is already wildcarded there is no prefix and samples
// are stored under their full keys.
//
// Use ":memory:" as the path for an ephemeral backend.
func Open(path string, root keyexpr.KeyExpr) (*Backend, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite supports one writer at a time; a single connection avoids
	// SQLITE_BUSY and keeps reads consistent with writes.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	b := &Backend{
		db:    db,
		id:    uuid.NewString(),
		root:  root.Clone(),
		plans: xsync.NewMapOf[string, []keyexpr.KeyExpr](),
	}
	b.prefix, b.hasPrefix = b.root.NonWildPrefix()

	var maxSeq int64
	if err := db.QueryRow(`SELECT COALESCE(MAX(seq), 0) FROM samples`).Scan(&maxSeq); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to read sequence: %w", err)
	}
	b.seq.Store(maxSeq)

	return b, nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		`PRAGMA journal_mode = WAL`,
		`PRAGMA synchronous = NORMAL`,
		`PRAGMA busy_timeout = 5000`,
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// Close closes the underlying database.
func (b *Backend) Close() error {
	return b.db.Close()
}

// ID returns the backend's registration identity.
func (b *Backend) ID() string {
	return b.id
}

// Root returns the root expression the backend was registered with.
func (b *Backend) Root() keyexpr.KeyExpr {
	return b.root
}

// Prefix returns the non-wild prefix stripped from incoming keys, and
// whether one exists.
func (b *Backend) Prefix() (keyexpr.KeyExpr, bool) {
	return b.prefix, b.hasPrefix
}

// LocalKey maps a concrete global key to the backend's local key.
// Returns ErrWildKey for wildcarded keys and ErrOutOfScope for keys the
// root does not cover — including the bare root key, which strips to
// nothing.
func (b *Backend) LocalKey(key keyexpr.KeyExpr) (keyexpr.KeyExpr, error) {
	if key.IsWild() {
		return keyexpr.KeyExpr{}, fmt.Errorf("%w: %s", ErrWildKey, key.String())
	}
	if !b.root.Intersects(key) {
		return keyexpr.KeyExpr{}, fmt.Errorf("%w: %s", ErrOutOfScope, key.String())
	}
	if !b.hasPrefix {
		return key, nil
	}
	residuals := key.StripPrefix(b.prefix)
	if len(residuals) == 0 {
		return keyexpr.KeyExpr{}, fmt.Errorf("%w: %s", ErrOutOfScope, key.String())
	}
	// A concrete key under a concrete prefix strips to exactly one residual.
	return residuals[0], nil
}

// plan resolves a selector to the residual patterns stored keys are matched
// against, caching the result. Cached values are cloned: they outlive the
// request that carried the selector's text.
func (b *Backend) plan(selector keyexpr.KeyExpr) []keyexpr.KeyExpr {
	if cached, ok := b.plans.Load(selector.String()); ok {
		return cached
	}

	var residuals []keyexpr.KeyExpr
	if b.hasPrefix {
		residuals = selector.StripPrefix(b.prefix)
	} else if b.root.Intersects(selector) {
		residuals = []keyexpr.KeyExpr{selector}
	}

	owned := make([]keyexpr.KeyExpr, len(residuals))
	for i, r := range residuals {
		owned[i] = r.Clone()
	}
	b.plans.Store(strings.Clone(selector.String()), owned)
	return owned
}
