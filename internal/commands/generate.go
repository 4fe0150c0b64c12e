package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/idelchi/goseed/internal/logic"
)

// NewGenerateCommand creates a new cobra command that prints a random key.
func NewGenerateCommand() *cobra.Command {
	var algorithm string

	cmd := &cobra.Command{
		Use:     "generate [flags]",
		Aliases: []string{"gen"},
		Short:   "Generate a new encryption key",
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.RunGenerate(algorithm, os.Stdout)
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "seed", "Size the key for this block cipher: seed or aes")

	return cmd
}
