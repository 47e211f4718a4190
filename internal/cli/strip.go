package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/keyspace/keyexpr"
)

// StripResult holds the residual patterns of a prefix strip.
type StripResult struct {
	Pattern   string   `json:"pattern"`
	Prefix    string   `json:"prefix"`
	Residuals []string `json:"residuals"`
}

// NewStripCommand creates the strip command.
func NewStripCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "strip <pattern> <prefix>",
		Short: "Strip a prefix from a key expression",
		Long: `Compute the residual patterns left when prefix is removed from pattern.

There may be several residuals, since a prefix can match the leading
portion of a wildcarded pattern in more than one way; an empty result
means the prefix cannot match pattern at all.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStrip(rootOpts, args[0], args[1], cmd)
		},
	}
}

func runStrip(opts *RootOptions, rawPattern, rawPrefix string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	pattern, err := keyexpr.New(rawPattern)
	if err != nil {
		return reportInvalid(formatter, err)
	}
	prefix, err := keyexpr.New(rawPrefix)
	if err != nil {
		return reportInvalid(formatter, err)
	}

	residuals := pattern.StripPrefix(prefix)
	result := StripResult{
		Pattern:   pattern.String(),
		Prefix:    prefix.String(),
		Residuals: make([]string, 0, len(residuals)),
	}
	for _, r := range residuals {
		result.Residuals = append(result.Residuals, r.String())
	}

	if formatter.JSON() {
		return formatter.Success(result)
	}
	if len(result.Residuals) == 0 {
		fmt.Fprintln(formatter.Writer, "(no residuals: prefix does not match pattern, or consumes it exactly)")
		return nil
	}
	for _, r := range result.Residuals {
		fmt.Fprintln(formatter.Writer, r)
	}
	return nil
}
