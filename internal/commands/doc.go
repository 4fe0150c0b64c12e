// Package commands provides the command-line interface for the goseed tool.
//
// It implements commands for:
//   - file encryption and decryption
//   - key generation
//   - text encryption in the OpenSSL format
//   - known-answer checks of the cipher
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands
