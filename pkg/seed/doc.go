// Package seed implements the SEED block cipher (KS X 1213, RFC 4269).
//
// SEED is a 16-round Feistel network over 128-bit blocks with a 128-bit key.
// Keys longer than 16 bytes are accepted and truncated to their first 16 bytes,
// so that two keys sharing a 16-byte prefix encrypt identically.
//
// A Cipher holds only its derived round keys and implements crypto/cipher.Block,
// so it can be used with the standard library block modes and is safe for
// concurrent use.
package seed
