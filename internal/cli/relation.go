package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/keyspace/keyexpr"
)

// RelationResult holds the classified relation between two expressions.
type RelationResult struct {
	A        string `json:"a"`
	B        string `json:"b"`
	Relation string `json:"relation"`
}

// NewRelationCommand creates the relation command.
func NewRelationCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "relation <a> <b>",
		Short: "Classify the set relation between two key expressions",
		Long: `Print the relation between the key sets of a and b, from a's point of
view: Disjoint, Intersects, Includes, or Equals.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRelation(rootOpts, args[0], args[1], cmd)
		},
	}
}

func runRelation(opts *RootOptions, rawA, rawB string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	a, err := keyexpr.New(rawA)
	if err != nil {
		return reportInvalid(formatter, err)
	}
	b, err := keyexpr.New(rawB)
	if err != nil {
		return reportInvalid(formatter, err)
	}

	result := RelationResult{
		A:        a.String(),
		B:        b.String(),
		Relation: a.RelationTo(b).String(),
	}
	if formatter.JSON() {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(formatter.Writer, result.Relation)
	}
	return nil
}

// reportInvalid renders a validation failure and converts it to a failure
// exit without letting cobra re-print it.
func reportInvalid(formatter *OutputFormatter, err error) error {
	code := string(keyexpr.ErrorCode(err))
	if ferr := formatter.Error(code, err.Error(), nil); ferr != nil {
		return ferr
	}
	return NewExitError(ExitFailure, "invalid key expression")
}
