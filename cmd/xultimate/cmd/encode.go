package cmd

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

func newEncodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <value>",
		Short: "Encode a value and print it as hex",
		Long: `Encode a value with the codec registered for its type and print the
bytes as hex.

Example:
  xultimate encode --type int16 256
  xultimate encode --type int64 --stream -- -1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := registryFrom(cmd)
			if err != nil {
				return err
			}

			typeName, _ := cmd.Flags().GetString("type")
			t, err := lookupType(typeName)
			if err != nil {
				return err
			}

			v, err := parseValue(args[0], t)
			if err != nil {
				return err
			}

			var out []byte
			if stream, _ := cmd.Flags().GetBool("stream"); stream {
				var buf bytes.Buffer
				if err = registry.SerializeTo(v, &buf); err != nil {
					return err
				}
				out = buf.Bytes()
			} else if out, err = registry.Serialize(v); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(out))
			return nil
		},
	}

	cmd.Flags().StringP("type", "t", "int16", "type of the value")
	cmd.Flags().Bool("stream", false, "use the fixed-width stream encoding")

	return cmd
}
