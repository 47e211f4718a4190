package keyexpr

import "strings"

// KeyExpr is a key expression statically known to be valid and in canonical
// form. The zero value is not a valid key expression; construct through New,
// Autocanonize, or FromStringUnchecked.
//
// KeyExpr is an immutable view: New returns a value aliasing the caller's
// string, and operations that return sub-expressions (NonWildPrefix,
// StripPrefix) alias the receiver's text. Values are comparable; because
// construction guarantees canon form, == on KeyExpr is set equality.
type KeyExpr struct {
	s string
}

// New validates s and returns it as a KeyExpr without copying.
//
// To be valid, s must already be canonical; Autocanonize is the alternative
// constructor that canonizes first.
func New(s string) (KeyExpr, error) {
	if err := validate(s); err != nil {
		return KeyExpr{}, err
	}
	return KeyExpr{s}, nil
}

// FromStringUnchecked constructs a KeyExpr without validating s.
//
// The caller is responsible for s being a valid, canonical key expression.
// Breaking that contract does not corrupt memory, but every algebra
// operation on the result becomes meaningless.
func FromStringUnchecked(s string) KeyExpr {
	return KeyExpr{s}
}

// String returns the canonical text of the key expression.
func (k KeyExpr) String() string {
	return k.s
}

// Clone returns a KeyExpr backed by its own freshly copied buffer.
//
// Views produced by New, NonWildPrefix, or StripPrefix alias their source
// text and keep its whole backing allocation reachable; Clone is the
// explicit detach for values retained long-term.
func (k KeyExpr) Clone() KeyExpr {
	return KeyExpr{strings.Clone(k.s)}
}

// IsWild reports whether k contains any wildcard ("**", "*", or "$*").
func (k KeyExpr) IsWild() bool {
	return strings.IndexByte(k.s, '*') >= 0
}

// Chunks returns the '/'-separated chunks of k. The returned strings alias
// k's text.
func (k KeyExpr) Chunks() []string {
	return strings.Split(k.s, "/")
}

// Join concatenates k and other with a single '/' and canonizes the result.
// This is the preferred way to assemble path segments: other may itself be
// multi-chunk or wildcarded, and the join re-establishes canon form (for
// example "a".Join("**/**") is "a/**").
//
// Fails only if other cannot be canonized into a valid expression.
func (k KeyExpr) Join(other string) (KeyExpr, error) {
	return Autocanonize(k.s + "/" + other)
}

// NonWildPrefix returns the longest leading run of chunks containing no
// wildcard character, and true. When k's first chunk already contains a
// wildcard there is no such prefix and ok is false; when k contains no
// wildcard at all the whole of k is returned.
//
// A storage backend typically calls this once at registration to compute
// its storage root, then strips that prefix from incoming keys with
// StripPrefix.
func (k KeyExpr) NonWildPrefix() (prefix KeyExpr, ok bool) {
	i := strings.IndexByte(k.s, '*')
	if i < 0 {
		return k, true
	}
	j := strings.LastIndexByte(k.s[:i], '/')
	if j < 0 {
		// Wildcard in the first chunk: no invariant prefix.
		return KeyExpr{}, false
	}
	return KeyExpr{k.s[:j]}, true
}

// RelationTo returns the relation between k and other from k's point of
// view (Includes means k includes other).
//
// Note that this is slower than Intersects and Includes, so favor those
// when the extra resolution is not needed.
func (k KeyExpr) RelationTo(other KeyExpr) SetIntersectionLevel {
	switch {
	case !k.Intersects(other):
		return Disjoint
	// Canon form makes string equality equivalent to set equality, so a
	// textual comparison is the correct (and cheapest) equality test.
	case k.s == other.s:
		return Equals
	case k.Includes(other):
		return Includes
	default:
		return Intersects
	}
}
