package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding (GOSEED_*) and flag handling.
func NewRootCommand(version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version)

	root.Use = "goseed [flags] command [flags]"
	root.Short = "SEED block cipher utility"
	root.Long = `A utility built around the SEED block cipher (RFC 4269).
Provides commands for key generation, file encryption and decryption,
OpenSSL-compatible text encryption and known-answer checks.`

	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		NewEncryptCommand(),
		NewDecryptCommand(),
		NewGenerateCommand(),
		NewTextCommand(),
		NewCheckCommand(),
	)

	return root
}
