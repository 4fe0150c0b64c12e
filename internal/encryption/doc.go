// Package encryption applies block ciphers to messages and files.
//
// It provides the mode and padding framework around a raw block primitive: incremental
// sessions that accept input in chunks, one-shot helpers, password-based key derivation,
// the OpenSSL "Salted__" text format, and an authenticated file envelope processed
// concurrently by a Processor.
package encryption
