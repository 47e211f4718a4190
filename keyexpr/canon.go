package keyexpr

import "bytes"

// Canonize rewrites buf toward canonical form in place and validates the
// result. The rewrites, applied to a fixed point:
//   - a bare "$*" chunk becomes "*"
//   - a run of consecutive "**" chunks collapses to a single "**"
//   - "**" immediately followed by a bare "*" reorders to "*" then "**"
//
// The rewritten text never grows, so buf is mutated in place and the
// (possibly shorter) canonical slice of it is returned. Rewriting cannot
// repair empty chunks or forbidden characters; those still fail validation
// with the usual taxonomy. Canonizing an already-canonical buffer is a
// no-op on its text.
func Canonize(buf []byte) ([]byte, error) {
	out := canonize(buf)
	if err := validate(string(out)); err != nil {
		return nil, err
	}
	return out, nil
}

// Autocanonize canonizes s and returns it as a KeyExpr.
//
// When s is already canonical this is zero-copy: the returned value aliases
// s. Otherwise a private copy is rewritten in place. Returns a
// ValidationError if s is invalid despite canonization.
func Autocanonize(s string) (KeyExpr, error) {
	if validate(s) == nil {
		return KeyExpr{s}, nil
	}
	canon := string(canonize([]byte(s)))
	if err := validate(canon); err != nil {
		return KeyExpr{}, err
	}
	return KeyExpr{canon}, nil
}

var (
	chunkSingleWild = []byte("*")
	chunkFullWild   = []byte("**")
)

// canonize applies the canon-form rewrites to b in place and returns the
// rewritten slice. A maximal run of chunks drawn from {"*", "$*", "**"}
// containing at least one "**" normalizes to all the "*"s first, then one
// "**"; this is the fixed point of the pairwise collapse/swap rules. Bare
// "$*" chunks count as "*". Every rewrite shrinks or preserves length, so
// the write cursor never overtakes the read cursor.
func canonize(b []byte) []byte {
	w := 0
	wrote := false
	writeChunk := func(c []byte) {
		if wrote {
			b[w] = '/'
			w++
		}
		copy(b[w:], c)
		w += len(c)
		wrote = true
	}

	stars := 0       // pending "*" chunks of the current wildcard run
	bigWild := false // pending "**" of the current wildcard run
	flush := func() {
		for ; stars > 0; stars-- {
			writeChunk(chunkSingleWild)
		}
		if bigWild {
			writeChunk(chunkFullWild)
			bigWild = false
		}
	}

	for start := 0; start <= len(b); {
		var chunk []byte
		next := len(b) + 1
		if i := bytes.IndexByte(b[start:], '/'); i >= 0 {
			chunk = b[start : start+i]
			next = start + i + 1
		} else {
			chunk = b[start:]
		}

		switch {
		case bytes.Equal(chunk, chunkFullWild):
			bigWild = true
		case bytes.Equal(chunk, chunkSingleWild), bytes.Equal(chunk, []byte("$*")):
			stars++
		default:
			flush()
			writeChunk(chunk)
		}

		start = next
	}
	flush()

	return b[:w]
}
