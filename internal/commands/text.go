package commands

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/goseed/internal/config"
	"github.com/idelchi/goseed/internal/logic"
)

// NewTextCommand creates a new cobra command for the text subcommand.
func NewTextCommand() *cobra.Command {
	cfg := &config.Text{}

	cmd := &cobra.Command{
		Use:   "text [flags] [message]",
		Short: "Encrypt or decrypt a message in the OpenSSL \"Salted__\" format",
		Long: `Encrypt or decrypt a single message. Output is base64, compatible with
"openssl enc -base64" and CryptoJS when a password is used with the evp key derivation.
The message is read from stdin when no argument is given.`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(_ *cobra.Command, args []string) error {
			if err := unmarshal(cfg); err != nil {
				return err
			}

			message, err := cobraext.PipeOrArg(args)
			if err != nil {
				return err //nolint:wrapcheck
			}

			if message == "" {
				return errors.New("a message is required, as argument or on stdin")
			}

			cfg.Message = message

			return cfg.Validate()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.RunText(cfg, os.Stdout)
		},
	}

	cmd.Flags().BoolP("decrypt", "d", false, "Decrypt a base64 message instead of encrypting")
	cmd.Flags().String("iv", "", "IV, hex-encoded, required with --key in cbc mode")
	cmd.Flags().String("kdf", "evp", "Key derivation for --password: evp or pbkdf2")

	keyFlags(cmd)
	cipherFlags(cmd)

	return cmd
}
