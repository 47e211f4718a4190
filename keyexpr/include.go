package keyexpr

import "strings"

// Includes reports whether k includes other: every key in other's set is
// also in k's set. Inclusion is asymmetric.
func (k KeyExpr) Includes(other KeyExpr) bool {
	// A wildcard-free expression names exactly one key, so it includes
	// only itself; canon form makes that a string comparison.
	if !k.IsWild() {
		return k.s == other.s
	}
	return includeChunks(k.Chunks(), other.Chunks())
}

// includeChunks runs the same chunk alignment as intersectChunks, but with
// asymmetric acceptance: a "**" on the including side absorbs whatever
// construct other has (it covers every sequence), while any wildcard on the
// included side must be met by an equal-or-broader construct — a "**"
// appearing only in b can never be covered by a fixed-width chunk of a.
// dp[i][j] answers "does a[i:] include b[j:]".
func includeChunks(a, b []string) bool {
	m, n := len(a), len(b)
	dp := make([]bool, (m+1)*(n+1))
	at := func(i, j int) bool { return dp[i*(n+1)+j] }

	dp[m*(n+1)+n] = true
	for i := m - 1; i >= 0; i-- {
		dp[i*(n+1)+n] = a[i] == "**" && at(i+1, n)
	}
	// b remaining with a exhausted is never included: dp[m][j] stays false.
	for i := m - 1; i >= 0; i-- {
		for j := n - 1; j >= 0; j-- {
			var ok bool
			switch {
			case a[i] == "**":
				ok = at(i+1, j) || at(i, j+1)
			case b[j] == "**":
				ok = false
			default:
				ok = chunkIncludes(a[i], b[j]) && at(i+1, j+1)
			}
			dp[i*(n+1)+j] = ok
		}
	}
	return at(0, 0)
}

// chunkIncludes decides single-chunk inclusion, neither chunk being "**".
// "*" covers any single chunk; a literal or "$*" pattern can never cover
// "*". Two "$*" patterns reduce to glob-over-glob inclusion.
func chunkIncludes(a, b string) bool {
	if a == "*" {
		return true
	}
	if b == "*" {
		return false
	}
	if strings.IndexByte(a, '$') < 0 {
		// A fully literal chunk includes only the identical chunk; if b
		// carries a "$*" the strings differ anyway.
		return a == b
	}
	return globIncludes(a, b)
}

// globIncludes decides whether chunk pattern a matches every chunk that
// chunk pattern b matches. A "$*" in a may absorb any tokens of b; a "$*"
// in b that a meets with a literal is an immediate failure, since b ranges
// over content that literal cannot cover. Memoized like globIntersects.
func globIncludes(a, b string) bool {
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
			ok = rec(i+2, j) || (j < lb && rec(i, j+tokWidth(b, j)))
		case j < lb && subWildAt(b, j):
			ok = false
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
