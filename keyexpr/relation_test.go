package keyexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetIntersectionLevelOrder(t *testing.T) {
	assert.Less(t, Disjoint, Intersects)
	assert.Less(t, Intersects, Includes)
	assert.Less(t, Includes, Equals)
}

func TestSetIntersectionLevelString(t *testing.T) {
	assert.Equal(t, "Disjoint", Disjoint.String())
	assert.Equal(t, "Intersects", Intersects.String())
	assert.Equal(t, "Includes", Includes.String())
	assert.Equal(t, "Equals", Equals.String())
}

func TestRelationTo(t *testing.T) {
	tests := []struct {
		a, b string
		want SetIntersectionLevel
	}{
		{"a/b", "a/b", Equals},
		{"a/**", "a/**", Equals},
		{"a/**", "a/b", Includes},
		{"a/*/**", "a/b/**", Includes},
		{"a/b", "a/**", Intersects}, // inclusion runs the other way
		{"a/*", "*/a", Intersects},
		{"a/**", "b/**", Disjoint},
		{"a/b", "a/c", Disjoint},
	}

	for _, tt := range tests {
		t.Run(tt.a+" ? "+tt.b, func(t *testing.T) {
			a := mustNew(t, tt.a)
			b := mustNew(t, tt.b)
			assert.Equal(t, tt.want, a.RelationTo(b))
		})
	}
}

// The lattice: Equals implies Includes implies Intersects, and every
// expression relates to itself as Equals.
func TestRelationLatticeConsistency(t *testing.T) {
	exprs := []string{
		"a", "a/b", "a/b/c", "*", "**", "a/*", "a/**", "*/a",
		"a/*/**", "a/b/**", "a/**/c", "a$*", "a$*b", "demo/example/**",
	}
	for _, sa := range exprs {
		a := mustNew(t, sa)
		assert.Equal(t, Equals, a.RelationTo(a), sa)
		for _, sb := range exprs {
			b := mustNew(t, sb)
			rel := a.RelationTo(b)
			if rel >= Includes {
				assert.True(t, a.Includes(b), "%s %s", sa, sb)
			}
			if rel >= Intersects {
				assert.True(t, a.Intersects(b), "%s %s", sa, sb)
			}
			if a.Includes(b) {
				assert.True(t, a.Intersects(b), "%s %s", sa, sb)
			}
			// String equality iff set equality.
			assert.Equal(t, sa == sb, rel == Equals, "%s %s", sa, sb)
			// Symmetry of intersection.
			assert.Equal(t, a.Intersects(b), b.Intersects(a), "%s %s", sa, sb)
		}
	}
}
