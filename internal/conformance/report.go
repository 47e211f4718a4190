package conformance

import (
	"fmt"
	"strings"

	"github.com/roach88/keyspace/keyexpr"
)

// Report is the outcome of running a case file: one line per case in file
// order, plus the cases whose outcome differed from their expectation.
type Report struct {
	Lines    []string
	Failures []string
}

// Render returns the report as golden-comparable bytes.
func (r *Report) Render() []byte {
	return []byte(strings.Join(r.Lines, "\n") + "\n")
}

// Run executes every case in cf against the algebra.
//
// Expression construction errors inside relation and strip cases abort the
// run: the tables are meant to hold valid expressions, so a malformed one is
// a broken fixture, not a conformance failure. Canon cases are the
// exception, since canonization failures are themselves testable outcomes.
func Run(cf *CaseFile) (*Report, error) {
	rep := &Report{Lines: []string{"case " + cf.Name}}

	for _, c := range cf.Canons {
		var got string
		if ke, err := keyexpr.Autocanonize(c.Input); err != nil {
			got = "error:" + string(keyexpr.ErrorCode(err))
		} else {
			got = ke.String()
		}
		rep.record(fmt.Sprintf("canon(%s) = %s", c.Input, got), got, c.Expect)
	}

	for _, c := range cf.Relations {
		a, err := keyexpr.New(c.A)
		if err != nil {
			return nil, fmt.Errorf("relation case %q: %w", c.A, err)
		}
		b, err := keyexpr.New(c.B)
		if err != nil {
			return nil, fmt.Errorf("relation case %q: %w", c.B, err)
		}
		got := a.RelationTo(b).String()
		rep.record(fmt.Sprintf("relation(%s, %s) = %s", c.A, c.B, got), got, c.Expect)
	}

	for _, c := range cf.Strips {
		pattern, err := keyexpr.New(c.Pattern)
		if err != nil {
			return nil, fmt.Errorf("strip case %q: %w", c.Pattern, err)
		}
		prefix, err := keyexpr.New(c.Prefix)
		if err != nil {
			return nil, fmt.Errorf("strip case %q: %w", c.Prefix, err)
		}
		residuals := pattern.StripPrefix(prefix)
		parts := make([]string, len(residuals))
		for i, r := range residuals {
			parts[i] = r.String()
		}
		got := "[" + strings.Join(parts, " ") + "]"
		want := "[" + strings.Join(c.Expect, " ") + "]"
		rep.record(fmt.Sprintf("strip(%s, %s) = %s", c.Pattern, c.Prefix, got), got, want)
	}

	return rep, nil
}

func (r *Report) record(line, got, want string) {
	r.Lines = append(r.Lines, line)
	if got != want {
		r.Failures = append(r.Failures, fmt.Sprintf("%s (want %s)", line, want))
	}
}
