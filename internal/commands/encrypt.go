package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/idelchi/goseed/internal/config"
	"github.com/idelchi/goseed/internal/logger"
	"github.com/idelchi/goseed/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand() *cobra.Command {
	cfg := &config.Config{}

	cmd := &cobra.Command{
		Use:     "encrypt [flags] files...",
		Aliases: []string{"enc"},
		Short:   "Encrypt files",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: func(_ *cobra.Command, args []string) error {
			if err := unmarshal(cfg); err != nil {
				return err
			}

			cfg.Files = args

			return cfg.Validate()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.Run(cfg, logger.New(os.Stderr, cfg.Verbose))
		},
	}

	fileFlags(cmd)
	cipherFlags(cmd)

	return cmd
}
