package cmd

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newDecodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode hex bytes into a value",
		Long: `Decode hex bytes with the codec registered for a type. Packed and
unpacked input are both accepted; with --stream the input is read as a
sequence of fixed-width values.

Example:
  xultimate decode --type int16 0100
  xultimate decode --type int16 --stream 00010002`,
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

			data, err := hex.DecodeString(args[0])
			if err != nil {
				return errors.Wrap(err, "parsing hex input")
			}

			if stream, _ := cmd.Flags().GetBool("stream"); !stream {
				v, err := registry.Deserialize(data, t)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			}

			r := bytes.NewReader(data)
			for r.Len() > 0 {
				v, err := registry.DeserializeFrom(r, t)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}

	cmd.Flags().StringP("type", "t", "int16", "type to decode into")
	cmd.Flags().Bool("stream", false, "read a sequence of fixed-width values")

	return cmd
}
