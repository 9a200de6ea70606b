package cmd

import (
	"context"
	"os"

	"github.com/lslk89/xultimate-toolkit/encode"
	"github.com/lslk89/xultimate-toolkit/options"
	"github.com/mongodb/grip"
	"github.com/mongodb/grip/level"
	"github.com/mongodb/grip/send"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type registryKey struct{}

// NewRootCommand builds the xultimate command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "xultimate",
		Short: "Encode and decode primitive values with the binary codec registry",
		Long: `xultimate resolves a codec for a primitive type and converts values
to and from their big-endian binary form.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := setLogLevel(cmd); err != nil {
				return err
			}

			registry, err := buildRegistry(cmd)
			if err != nil {
				return err
			}

			cmd.SetContext(context.WithValue(cmd.Context(), registryKey{}, registry))
			return nil
		},
	}

	root.PersistentFlags().StringP("config", "c", "", "YAML file with registry options")
	root.PersistentFlags().String("log-level", "warning", "minimum level for log output")
	root.PersistentFlags().Bool("pack-zeros", true, "drop leading zero bytes from encoded values")

	root.AddCommand(newEncodeCommand(), newDecodeCommand(), newCodecsCommand())

	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func setLogLevel(cmd *cobra.Command) error {
	name, _ := cmd.Flags().GetString("log-level")
	threshold := level.FromString(name)
	if !threshold.IsValid() {
		return errors.Errorf("unrecognized log level '%s'", name)
	}

	return errors.Wrap(grip.GetSender().SetLevel(send.LevelInfo{
		Default:   level.Info,
		Threshold: threshold,
	}), "setting log level")
}

func buildRegistry(cmd *cobra.Command) (*encode.Registry, error) {
	opts := &options.Registry{}

	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		var err error
		if opts, err = options.ReadRegistryFile(path); err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("pack-zeros") {
		packZeros, _ := cmd.Flags().GetBool("pack-zeros")
		opts.PackZeros = &packZeros
	}

	return encode.NewDefaultRegistry(*opts)
}

func registryFrom(cmd *cobra.Command) (*encode.Registry, error) {
	registry, ok := cmd.Context().Value(registryKey{}).(*encode.Registry)
	if !ok {
		return nil, errors.New("codec registry not found in context")
	}
	return registry, nil
}
