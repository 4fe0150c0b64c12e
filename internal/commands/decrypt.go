package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/idelchi/goseed/internal/config"
	"github.com/idelchi/goseed/internal/logger"
	"github.com/idelchi/goseed/internal/logic"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
// Algorithm, mode and padding are read from each file.
func NewDecryptCommand() *cobra.Command {
	cfg := &config.Config{}

	cmd := &cobra.Command{
		Use:     "decrypt [flags] files...",
		Aliases: []string{"dec"},
		Short:   "Decrypt files",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: func(_ *cobra.Command, args []string) error {
			if err := unmarshal(cfg); err != nil {
				return err
			}

			cfg.Files = args
			cfg.Decrypt = true

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
