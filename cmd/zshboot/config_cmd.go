package main

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/zshboot/pkg/paths"
)

// newConfigCmd creates the config command, which prints the effective
// settings (defaults merged with the settings file and ZSHBOOT_* env
// vars) as TOML.
func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			out, err := toml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf(MsgErrMarshalConfig, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), MsgConfigHeader, paths.ConfigFile())
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
