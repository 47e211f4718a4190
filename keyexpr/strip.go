package keyexpr

import "strings"

// StripPrefix removes prefix from k, where prefix is typically a storage
// backend's wildcard-free root and k may contain wildcards.
//
// The result is the minimal set of residual expressions whose union, each
// joined back onto prefix, denotes exactly k's key set. There can be more
// than one residual because a prefix can match the leading portion of a
// wildcarded expression in more than one way: stripping "a/b/c" from
// "a/**/c/*" yields ["*", "**/c/*"], since the prefix may match "a/**/c"
// (leaving "*") or just "a/**" (leaving "**/c/*"). If prefix cannot match
// any leading portion of k, the result is empty.
//
// Candidate split points are scanned from the end of k toward the start; a
// residual of exactly "**" covers the entire remaining key space, so it
// replaces everything accumulated and ends the scan. Returned residuals
// alias k's text.
func (k KeyExpr) StripPrefix(prefix KeyExpr) []KeyExpr {
	var result []KeyExpr
	s := k.s
scan:
	for i := len(s); i >= 0; i-- {
		if i == len(s) {
			// The end of the string is a split point only for a trailing
			// "**", which may still be "in progress" across the boundary.
			if !strings.HasSuffix(s, "**") {
				continue
			}
		} else if s[i] != '/' {
			continue
		}

		// A chunk-boundary prefix of a canonical expression is canonical.
		subPart := KeyExpr{s[:i]}
		if !subPart.Intersects(prefix) {
			continue
		}

		// A trailing "**" of subPart keeps its zero-or-more semantics only
		// if it is retained in the residual.
		var remaining string
		if strings.HasSuffix(subPart.s, "**") {
			remaining = s[i-2:]
		} else {
			remaining = s[i+1:]
		}
		if remaining == "" {
			// Fully consumed by the prefix: nothing to report.
			continue
		}
		rem := KeyExpr{remaining}

		if remaining == "**" {
			// "**" denotes the whole residual key space; no other
			// candidate can add information.
			return []KeyExpr{rem}
		}

		// Keep the result set minimal: drop rem if an accumulated residual
		// already includes it, and evict accumulated residuals that rem
		// includes.
		for idx := len(result) - 1; idx >= 0; idx-- {
			if result[idx].Includes(rem) {
				continue scan
			}
			if rem.Includes(result[idx]) {
				result[idx] = result[len(result)-1]
				result = result[:len(result)-1]
			}
		}
		result = append(result, rem)
	}
	return result
}
