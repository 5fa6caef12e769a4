package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/zshboot/internal/version"
	"github.com/arthur-debert/zshboot/pkg/bootstrap"
	"github.com/arthur-debert/zshboot/pkg/config"
	"github.com/arthur-debert/zshboot/pkg/logging"
	"github.com/arthur-debert/zshboot/pkg/paths"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity     int
		strictInstall bool
	)

	rootCmd := &cobra.Command{
		Use:     "zshboot",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("strict-install") {
				cfg.StrictInstall = strictInstall
			}

			p, err := paths.New()
			if err != nil {
				return err
			}

			return bootstrap.New(p, cfg).Run(cmd.Context())
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.Flags().BoolVar(&strictInstall, "strict-install", false, MsgFlagStrictInstall)

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("zshboot version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}

// loadConfig reads the optional settings file and env overrides
func loadConfig() (*config.Config, error) {
	return config.Load(paths.ConfigFile())
}
