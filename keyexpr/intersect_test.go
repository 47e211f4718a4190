package keyexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, s string) KeyExpr {
	t.Helper()
	ke, err := New(s)
	require.NoError(t, err)
	return ke
}

func TestIntersects(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		// Concrete keys.
		{"a/b/c", "a/b/c", true},
		{"a/b", "a/c", false},
		{"a", "a/b", false},

		// Single-chunk wildcard.
		{"a/*", "*/a", true}, // common key a/a
		{"a/*/c", "a/b/c", true},
		{"a/*/c", "a/c", false},
		{"*/**", "a/b/c", true},

		// Full wildcard, variable-length alignment.
		{"**", "a/b/c", true},
		{"**", "**", true},
		{"a/**", "a", true},
		{"a/**/c", "a/c", true},
		{"a/**/c", "a/b/b/c", true},
		{"a/**", "b/**", false},
		{"**/b", "a/c", false},
		{"a/**/c/*", "a/b/c/d", true},

		// Substring wildcard.
		{"a/b$*", "a/bc", true},
		{"a/b$*", "a/b", true},
		{"a/b$*", "a/c", false},
		{"a$*c/d", "abc/d", true},
		{"ex$*", "example", true},

		// Substring wildcards on both sides.
		{"a$*", "$*b", true},  // common chunk "ab"
		{"a$*b", "a$*c", false}, // no chunk ends with both b and c
		{"a$*b", "ab", true},

		// Mixed.
		{"demo/**/ex$*/*/xyz", "demo/example/test", false},
		{"demo/**/ex$*", "demo/example", true},
	}

	for _, tt := range tests {
		t.Run(tt.a+" ~ "+tt.b, func(t *testing.T) {
			a := mustNew(t, tt.a)
			b := mustNew(t, tt.b)
			assert.Equal(t, tt.want, a.Intersects(b))
			// Intersection is symmetric.
			assert.Equal(t, tt.want, b.Intersects(a))
		})
	}
}

// Alignment is memoized per chunk pair, so heavily wildcarded expressions
// must stay cheap instead of backtracking exponentially.
func TestIntersectsManyFullWildcards(t *testing.T) {
	a := "**/a/**/a/**/a/**/a/**/a/**/a/**/a/**/a/**/a/**"
	b := "**/b/**/b/**/b/**/b/**/b/**/b/**/b/**/b/**/b/**"
	ka := mustNew(t, a)
	kb := mustNew(t, b)
	assert.True(t, ka.Intersects(kb))
	assert.True(t, ka.Intersects(ka))
}
