package keyexpr

import "strings"

// Intersects reports whether the key sets of k and other share at least one
// concrete key. Intersection is symmetric.
func (k KeyExpr) Intersects(other KeyExpr) bool {
	// Canon form: wildcard-free expressions intersect iff they are the
	// same key.
	if !k.IsWild() && !other.IsWild() {
		return k.s == other.s
	}
	return intersectChunks(k.Chunks(), other.Chunks())
}

// intersectChunks decides intersection by aligning the two chunk sequences.
// A "**" on either side may consume zero or more chunks from the other, so
// the alignment is a dynamic program over (i, j) chunk positions rather
// than a fixed pairing: dp[i][j] answers "do a[i:] and b[j:] intersect",
// filled backward from the fully consumed state.
func intersectChunks(a, b []string) bool {
	m, n := len(a), len(b)
	dp := make([]bool, (m+1)*(n+1))
	at := func(i, j int) bool { return dp[i*(n+1)+j] }

	dp[m*(n+1)+n] = true
	for i := m - 1; i >= 0; i-- {
		// b exhausted: the rest of a must be all "**".
		dp[i*(n+1)+n] = a[i] == "**" && at(i+1, n)
	}
	for j := n - 1; j >= 0; j-- {
		dp[m*(n+1)+j] = b[j] == "**" && at(m, j+1)
	}
	for i := m - 1; i >= 0; i-- {
		for j := n - 1; j >= 0; j-- {
			var ok bool
			switch {
			case a[i] == "**":
				// Match zero chunks of b, or absorb b[j] and stay.
				ok = at(i+1, j) || at(i, j+1)
			case b[j] == "**":
				ok = at(i, j+1) || at(i+1, j)
			default:
				ok = chunkIntersects(a[i], b[j]) && at(i+1, j+1)
			}
			dp[i*(n+1)+j] = ok
		}
	}
	return at(0, 0)
}

// chunkIntersects decides intersection of two single chunks, neither of
// which is "**". A "*" matches any chunk; otherwise the chunks intersect
// iff some concrete chunk matches both "$*" glob patterns.
func chunkIntersects(a, b string) bool {
	if a == "*" || b == "*" {
		return true
	}
	aw, bw := strings.IndexByte(a, '$') >= 0, strings.IndexByte(b, '$') >= 0
	if !aw && !bw {
		return a == b
	}
	return globIntersects(a, b)
}

// subWildAt reports whether position i of chunk s starts a "$*" token.
// Validation guarantees every '$' is the start of one.
func subWildAt(s string, i int) bool {
	return s[i] == '$'
}

// tokWidth is the byte width of the chunk token starting at i: 2 for "$*",
// 1 for a literal byte.
func tokWidth(s string, i int) int {
	if s[i] == '$' {
		return 2
	}
	return 1
}

const (
	memoUnknown = iota
	memoTrue
	memoFalse
)

// globIntersects decides whether two chunk patterns, each a sequence of
// literal bytes and "$*" substring wildcards, match at least one common
// chunk. Memoized over (byte position in a, byte position in b) to stay
// polynomial.
func globIntersects(a, b string) bool {
	la, lb := len(a), len(b)
	memo := make([]int8, (la+1)*(lb+1))
	var rec func(i, j int) bool
	rec = func(i, j int) bool {
		switch memo[i*(lb+1)+j] {
		case memoTrue:
			return true
		case memoFalse:
			return false
		}
		var ok bool
		switch {
		case i == la && j == lb:
			ok = true
		case i < la && subWildAt(a, i):
			// a's wildcard matches empty, or absorbs one token of b.
			ok = rec(i+2, j) || (j < lb && rec(i, j+tokWidth(b, j)))
		case j < lb && subWildAt(b, j):
			ok = rec(i, j+2) || (i < la && rec(i+tokWidth(a, i), j))
		case i < la && j < lb && a[i] == b[j]:
			ok = rec(i+1, j+1)
		default:
			ok = false
		}
		if ok {
			memo[i*(lb+1)+j] = memoTrue
		} else {
			memo[i*(lb+1)+j] = memoFalse
		}
		return ok
	}
	return rec(0, 0)
}
