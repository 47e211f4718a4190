package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/keyspace/keyexpr"
)

// CheckResult holds the validation outcome for one expression.
type CheckResult struct {
	Expr  string `json:"expr"`
	Valid bool   `json:"valid"`
	Code  string `json:"code,omitempty"`
	Error string `json:"error,omitempty"`
	NFC   bool   `json:"nfc"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <expr>...",
		Short: "Validate key expressions",
		Long: `Validate key expressions against the grammar and canon-form invariants.

A valid expression must already be canonical; use "canon" to see the
canonical spelling of an almost-valid one. Expressions that are not
NFC-normalized are flagged: no UTF normalization is performed, so two
normalizations of the same glyph are distinct keys.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args, cmd)
		},
	}
}

func runCheck(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	results := make([]CheckResult, 0, len(args))
	failed := false
	for _, arg := range args {
		res := CheckResult{Expr: arg, NFC: norm.NFC.IsNormalString(arg)}
		if _, err := keyexpr.New(arg); err != nil {
			failed = true
			res.Code = string(keyexpr.ErrorCode(err))
			res.Error = err.Error()
		} else {
			res.Valid = true
		}
		results = append(results, res)
	}

	if formatter.JSON() {
		if err := formatter.Success(results); err != nil {
			return err
		}
	} else {
		for _, res := range results {
			if res.Valid {
				fmt.Fprintf(formatter.Writer, "ok %s\n", res.Expr)
			} else {
				fmt.Fprintf(formatter.Writer, "invalid [%s] %s\n", res.Code, res.Error)
			}
			if !res.NFC {
				formatter.Warn("%s is not NFC-normalized; other normalizations name different keys", res.Expr)
			}
		}
	}

	if failed {
		return NewExitError(ExitFailure, "one or more expressions are invalid")
	}
	return nil
}
