package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCodecsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "codecs",
		Short: "List registered codecs in probe order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := registryFrom(cmd)
			if err != nil {
				return err
			}

			for i, c := range registry.Codecs() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%d\n", i, c, c.ByteSize())
			}
			return nil
		},
	}
}
