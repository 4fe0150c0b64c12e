package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/idelchi/goseed/internal/config"
	"github.com/idelchi/goseed/internal/logic"
)

// NewCheckCommand creates a new cobra command for the check subcommand.
func NewCheckCommand() *cobra.Command {
	cfg := &config.Check{}

	cmd := &cobra.Command{
		Use:   "check [flags]",
		Short: "Run known-answer vectors through the cipher",
		Args:  cobra.NoArgs,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			if err := unmarshal(cfg); err != nil {
				return err
			}

			return cfg.Validate()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.RunCheck(cfg, os.Stdout)
		},
	}

	cmd.Flags().String("vectors", "", "JSONC file with an array of {name, algorithm, key, plaintext, ciphertext}")
	cmd.Flags().BoolP("quiet", "q", false, "Only report failures")

	return cmd
}
