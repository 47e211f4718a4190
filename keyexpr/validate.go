package keyexpr

import (
	"strings"
	"unicode/utf8"
)

// validate checks s against the key-expression grammar, including the
// canonical-form invariants. It scans chunk by chunk without allocating and
// rejects on the first offending construct found.
//
// Canon form is part of validity: a string like "a/**/*" is a well-defined
// pattern but is rejected here because it is not the canonical spelling of
// its key set ("a/*/**" is).
func validate(s string) *ValidationError {
	if !utf8.ValidString(s) {
		return newValidationError(ErrCodeForbiddenCharacter, s,
			"text is not well-formed UTF-8")
	}

	inBigWild := false
	for start := 0; start <= len(s); {
		var chunk string
		next := len(s) + 1
		if i := strings.IndexByte(s[start:], '/'); i >= 0 {
			chunk = s[start : start+i]
			next = start + i + 1
		} else {
			chunk = s[start:]
		}

		switch chunk {
		case "":
			return newValidationError(ErrCodeEmptyChunk, s,
				"empty chunks are forbidden, as well as leading and trailing slashes")
		case "$*":
			return newValidationError(ErrCodeBareSubstringWildcard, s,
				"lone $* chunks must be replaced by * to reach canon form")
		}
		if inBigWild {
			switch chunk {
			case "**":
				return newValidationError(ErrCodeRepeatedFullWildcard, s,
					"**/** must be replaced by ** to reach canon form")
			case "*":
				return newValidationError(ErrCodeMisorderedWildcards, s,
					"**/* must be replaced by */** to reach canon form")
			}
		}
		if chunk == "**" {
			inBigWild = true
		} else {
			inBigWild = false
			if strings.Contains(chunk, "**") {
				return newValidationError(ErrCodeMalformedFullWildcard, s,
					"** may only be preceded and followed by /")
			}
		}

		start = next
	}

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '#', '?':
			return newValidationError(ErrCodeForbiddenCharacter, s,
				"# and ? are forbidden characters")
		case '$':
			// '$' is only valid as the two-byte unit "$*". End of string is
			// a valid terminator for "$*"; a '$' right after it is not.
			if i+1 >= len(s) || s[i+1] != '*' {
				return newValidationError(ErrCodeForbiddenCharacter, s,
					"$ is only allowed in $*")
			}
			if i+2 < len(s) && s[i+2] == '$' {
				return newValidationError(ErrCodeForbiddenCharacter, s,
					"$ is not allowed immediately after $*")
			}
			i++ // skip the '*' of this "$*"
		}
	}

	return nil
}
