package keyexpr

// WireExpr is the wire-addressable form of a key expression used by the
// session layer: a numeric scope identifier plus a suffix string. Scope 0
// with a full suffix is the fully spelled-out form; non-zero scopes are
// assigned by session-level declarations, which are outside this package.
type WireExpr struct {
	Scope  uint64
	Suffix string
}

// ToWire converts k to its fully spelled-out wire form (scope 0, full
// text). The suffix aliases k's text.
func (k KeyExpr) ToWire() WireExpr {
	return WireExpr{Scope: 0, Suffix: k.s}
}

// IsFullySpelled reports whether w carries the whole expression as its
// suffix rather than referencing a declared scope.
func (w WireExpr) IsFullySpelled() bool {
	return w.Scope == 0
}
