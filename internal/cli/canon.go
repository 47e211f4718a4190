package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/keyspace/keyexpr"
)

// CanonResult holds the canonization outcome for one expression.
type CanonResult struct {
	Input     string `json:"input"`
	Canonical string `json:"canonical,omitempty"`
	Code      string `json:"code,omitempty"`
	Error     string `json:"error,omitempty"`
}

// NewCanonCommand creates the canon command.
func NewCanonCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "canon <expr>...",
		Short: "Print the canonical form of key expressions",
		Long: `Rewrite key expressions into canonical form.

Bare $* chunks become *, runs of ** collapse, and **/* reorders to */**.
Expressions that stay invalid after rewriting (empty chunks, forbidden
characters) are reported with their validation code.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCanon(rootOpts, args, cmd)
		},
	}
}

func runCanon(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	results := make([]CanonResult, 0, len(args))
	failed := false
	for _, arg := range args {
		res := CanonResult{Input: arg}
		if ke, err := keyexpr.Autocanonize(arg); err != nil {
			failed = true
			res.Code = string(keyexpr.ErrorCode(err))
			res.Error = err.Error()
		} else {
			res.Canonical = ke.String()
		}
		results = append(results, res)
	}

	if formatter.JSON() {
		if err := formatter.Success(results); err != nil {
			return err
		}
	} else {
		for _, res := range results {
			if res.Error != "" {
				fmt.Fprintf(formatter.Writer, "invalid [%s] %s\n", res.Code, res.Error)
			} else {
				fmt.Fprintln(formatter.Writer, res.Canonical)
			}
		}
	}

	if failed {
		return NewExitError(ExitFailure, "one or more expressions cannot be canonized")
	}
	return nil
}
