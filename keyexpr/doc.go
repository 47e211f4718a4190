// Package keyexpr implements hierarchical, slash-delimited key expressions:
// the grammar, the canonical form, and the set algebra (intersection,
// inclusion, relation classification, prefix stripping) that routing and
// storage layers compose.
//
// A key expression names a set of concrete keys. Chunks are separated by a
// single '/', and three wildcard forms exist:
//   - "**" matches zero or more whole chunks (only ever a whole chunk)
//   - "*" matches exactly one whole chunk
//   - "$*" inside a chunk matches any substring at that position
//
// Every KeyExpr is in canonical form by construction, which makes string
// equality equivalent to set equality. The canonical-form invariants:
//  1. No empty chunk (no leading/trailing '/' and no "//").
//  2. No chunk is the bare literal "$*" (it must be "*").
//  3. No two consecutive "**" chunks.
//  4. "**" is never immediately followed by a bare "*" (reordered to "*/**").
//  5. "**" appears only as a whole chunk.
//  6. '#' and '?' are forbidden; '$' appears only as the unit "$*", and "$*"
//     is never immediately followed by another '$'.
//  7. Text is well-formed UTF-8 throughout. No UTF normalization is
//     performed: two NFC/NFD spellings of the same glyph are distinct keys.
//
// All operations are pure and synchronous: each call reads only its inputs
// and returns a fresh result. A KeyExpr built by New aliases the caller's
// string; Clone is the explicit detach when a view must outlive a larger
// backing allocation.
package keyexpr
