package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// unmarshal loads the flags bound by the root command, overridden by GOSEED_* environment
// variables, into target.
func unmarshal(target any) error {
	if err := viper.Unmarshal(target); err != nil {
		return fmt.Errorf("parsing configuration: %w", err)
	}

	return nil
}

func keyFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("key", "k", "", "Master key, hex-encoded (at least 16 bytes)")
	cmd.Flags().StringP("key-file", "f", "", "Path to a file with the hex-encoded master key")
	cmd.Flags().StringP("password", "p", "", "Password to derive the key from")
}

func cipherFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("algorithm", "a", "seed", "Block cipher: seed or aes")
	cmd.Flags().StringP("mode", "m", "cbc", "Chaining mode: ecb or cbc")
	cmd.Flags().String("padding", "pkcs7", "Padding: none, zero, pkcs7, ansix923, iso10126 or iso97971")
	cmd.Flags().Int("iterations", 0, "Key derivation iterations when using --password (0 selects the default)")
}

func fileFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("show", "s", false, "Show the configuration and exit")
	cmd.Flags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress non-error output")
	cmd.Flags().BoolP("delete", "d", false, "Delete the original file after successful encryption/decryption")
	cmd.Flags().Bool("stats", false, "Print a summary after processing")
	cmd.Flags().Bool("preserve-timestamps", false, "Copy the modification time of the input to the output")

	cmd.Flags().String("encrypt-ext", ".enc", "Suffix to append to encrypted files")
	cmd.Flags().String("decrypt-ext", "", "Suffix to append to decrypted files, after stripping the encrypted suffix")

	keyFlags(cmd)
}
