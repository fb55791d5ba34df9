package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewPoliciesCommand lists every eviction policy cachekit.New accepts.
func NewPoliciesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "policies",
		Short: "List supported eviction policies",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, p := range allPolicies {
				fmt.Fprintln(cmd.OutOrStdout(), p.String())
			}
			return nil
		},
	}
}
