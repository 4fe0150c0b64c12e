package encryption

import (
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/goseed/internal/config"
	"github.com/idelchi/goseed/internal/fileutil"
)

// MinMasterKeySize is the shortest master key accepted for file encryption.
const MinMasterKeySize = 16

// masterKeySize is the length of a master key derived from a password.
const masterKeySize = 32

// Result represents the outcome of processing a single file.
type Result struct {
	// Input file path
	Input string

	// Output file path
	Output string

	// Output file size in bytes
	OutputSize int64

	// Any error that occurred during processing
	Error error
}

// Processor handles the encryption and decryption of files.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// key stores the raw master key, nil when a password is used
	key []byte

	// password derives a per-file master key when set
	password []byte

	algorithm Algorithm
	mode      Mode
	padding   Padding

	// random feeds salts and IVs
	random io.Reader

	log logrus.FieldLogger

	// results channels processing outcomes to the printer goroutine
	results chan Result
}

// Option customizes a Processor.
type Option func(*Processor)

// WithRandom sets the source of salts and IVs. A nil reader keeps crypto/rand.Reader.
func WithRandom(r io.Reader) Option {
	return func(p *Processor) {
		if r != nil {
			p.random = r
		}
	}
}

// NewProcessor creates a new Processor with the given configuration.
// The master key is resolved up front so a bad key fails before any file is touched.
func NewProcessor(cfg *config.Config, log logrus.FieldLogger, opts ...Option) (*Processor, error) {
	encryptionKey, err := cfg.KeyBytes()
	if err != nil {
		return nil, fmt.Errorf("reading key: %w", err)
	}

	if encryptionKey != nil && len(encryptionKey) < MinMasterKeySize {
		return nil, fmt.Errorf("%w: master key must be at least %d bytes (%d hex characters), got %d",
			ErrInvalidKeySize, MinMasterKeySize, 2*MinMasterKeySize, len(encryptionKey))
	}

	processor := &Processor{
		cfg:     cfg,
		key:     encryptionKey,
		random:  rand.Reader,
		log:     log,
		results: make(chan Result, len(cfg.Files)),
	}

	if cfg.Key.Password != "" {
		processor.password = []byte(cfg.Key.Password)
	}

	for _, opt := range opts {
		opt(processor)
	}

	if cfg.Decrypt {
		// Algorithm, mode and padding are read from each file's header.
		return processor, nil
	}

	if processor.algorithm, err = ParseAlgorithm(cfg.Cipher.Algorithm); err != nil {
		return nil, err
	}

	if processor.mode, err = ParseMode(cfg.Cipher.Mode); err != nil {
		return nil, err
	}

	if processor.padding, err = ParsePadding(cfg.Cipher.Padding); err != nil {
		return nil, err
	}

	// Unpadding must recover the exact length, which rules out schemes that
	// add nothing or strip bytes that may belong to the content.
	switch processor.padding {
	case NoPadding, ZeroPadding:
		return nil, fmt.Errorf("%w: padding %q cannot encode arbitrary file lengths",
			ErrUnsupportedOption, processor.padding)
	}

	return processor, nil
}

// ProcessFiles concurrently processes all files specified in the configuration.
// It encrypts or decrypts files based on the configuration settings.
// Returns the number of successfully processed files and the number of errors.
//
//nolint:cyclop,gocognit
func (p *Processor) ProcessFiles() (processed, errored int, totalSize int64, err error) {
	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range p.results {
			if result.Error != nil {
				errored++

				fmt.Fprintf(os.Stderr, "Error processing %q: %v\n", result.Input, result.Error)
			} else {
				processed++

				totalSize += result.OutputSize

				if !p.cfg.Quiet {
					fmt.Printf("Processed %q -> %q\n", result.Input, result.Output) //nolint:forbidigo
				}
			}

			if p.cfg.Delete && result.Error == nil {
				if err := os.Remove(result.Input); err != nil {
					fmt.Fprintf(os.Stderr, "Error deleting %q: %v\n", result.Input, err)

					continue
				}

				if !p.cfg.Quiet {
					fmt.Printf("Deleted %q\n", result.Input) //nolint:forbidigo
				}
			}
		}
	}()

	for _, file := range p.cfg.Files {
		group.Go(func() error {
			outPath := p.outputPath(file)

			p.log.WithField("file", file).WithField("output", outPath).Debug("processing")

			size, err := p.processFile(file, outPath)
			if err != nil {
				p.results <- Result{Input: file, Error: err}

				return err
			}

			p.results <- Result{Input: file, Output: outPath, OutputSize: size}

			return nil
		})
	}

	err = group.Wait()

	close(p.results)

	<-done // Wait for printer to finish

	if err != nil {
		return processed, errored, totalSize, fmt.Errorf("processing files: %w", err)
	}

	return processed, errored, totalSize, nil
}

// processFile handles the encryption or decryption of a single file through an atomic write.
func (p *Processor) processFile(filename, outPath string) (int64, error) {
	opts := fileutil.Options{PreserveTimestamps: p.cfg.PreserveTimestamps}

	size, err := fileutil.WriteAtomic(filename, outPath, opts,
		func(src io.Reader, dst io.Writer, executable bool) (bool, error) {
			if p.cfg.Decrypt {
				execOut, err := p.decrypt(src, dst)
				if err != nil {
					return false, fmt.Errorf("decrypting file: %w", err)
				}

				return execOut, nil
			}

			if err := p.encrypt(src, dst, executable); err != nil {
				return false, fmt.Errorf("encrypting file: %w", err)
			}

			return executable, nil
		})
	if err != nil {
		return 0, err
	}

	return size, nil
}

// encrypt reads data from reader, encrypts it with the configured algorithm, mode and padding,
// and writes the envelope to writer. The tag covers the header and the ciphertext.
func (p *Processor) encrypt(reader io.Reader, writer io.Writer, isExec bool) error {
	header := envelopeHeader{
		executable: isExec,
		algorithm:  p.algorithm,
		mode:       p.mode,
		padding:    p.padding,
	}

	master := p.key

	if p.password != nil {
		salt, err := randomBytes(p.random, envelopeSaltSize)
		if err != nil {
			return err
		}

		iterations := p.cfg.Cipher.Iterations
		if iterations < 1 {
			iterations = DefaultPBKDF2Iterations
		}

		header.salt = salt
		header.iterations = uint32(iterations) //nolint:gosec // positive

		if master, _, err = DeriveKey(PBKDF2, p.password, salt, masterKeySize, 0, iterations); err != nil {
			return err
		}
	}

	encKey, macKey, err := deriveEnvelopeKeys(master, header.algorithm)
	if err != nil {
		return err
	}

	if header.mode.NeedsIV() {
		if header.iv, err = GenerateIV(header.algorithm, p.random); err != nil {
			return err
		}
	}

	session, err := NewEncryptor(header.algorithm, encKey, p.sessionConfig(header))
	if err != nil {
		return err
	}

	var body bytes.Buffer

	body.Write(header.marshal())

	if err := pump(newStreamingWriter(&body, session), reader); err != nil {
		return err
	}

	primitive, err := newEnvelopeMAC(macKey)
	if err != nil {
		return err
	}

	tag, err := primitive.ComputeMAC(body.Bytes())
	if err != nil {
		return fmt.Errorf("computing tag: %w", err)
	}

	if _, err := writer.Write(body.Bytes()); err != nil {
		return fmt.Errorf("writing envelope: %w", err)
	}

	if _, err := writer.Write(tag); err != nil {
		return fmt.Errorf("writing tag: %w", err)
	}

	return nil
}

// decrypt reads an envelope from reader, verifies its tag and writes the plaintext to writer.
// It returns whether the original file was executable.
func (p *Processor) decrypt(reader io.Reader, writer io.Writer) (bool, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return false, fmt.Errorf("reading input: %w", err)
	}

	if len(data) < envelopeHeaderSize+envelopeTagSize {
		return false, fmt.Errorf("%w: input too short", ErrProcessing)
	}

	authenticated, tag := data[:len(data)-envelopeTagSize], data[len(data)-envelopeTagSize:]

	header, offset, err := parseEnvelopeHeader(authenticated)
	if err != nil {
		return false, err
	}

	master, err := p.masterKey(header)
	if err != nil {
		return false, err
	}

	encKey, macKey, err := deriveEnvelopeKeys(master, header.algorithm)
	if err != nil {
		return false, err
	}

	primitive, err := newEnvelopeMAC(macKey)
	if err != nil {
		return false, err
	}

	if err := primitive.VerifyMAC(tag, authenticated); err != nil {
		return false, fmt.Errorf("%w: authentication failed", ErrProcessing)
	}

	session, err := NewDecryptor(header.algorithm, encKey, p.sessionConfig(header))
	if err != nil {
		return false, err
	}

	if err := pump(newStreamingWriter(writer, session), bytes.NewReader(authenticated[offset:])); err != nil {
		return false, err
	}

	return header.executable, nil
}

// masterKey returns the key the envelope was sealed under, deriving it from the password when salted.
func (p *Processor) masterKey(header envelopeHeader) ([]byte, error) {
	if header.salt == nil {
		if p.key == nil {
			return nil, errors.New("file was encrypted with a key, use --key or --key-file")
		}

		return p.key, nil
	}

	if p.password == nil {
		return nil, errors.New("file was encrypted with a password, use --password")
	}

	if header.iterations == 0 {
		return nil, fmt.Errorf("%w: zero iteration count", ErrProcessing)
	}

	master, _, err := DeriveKey(PBKDF2, p.password, header.salt, masterKeySize, 0, int(header.iterations))

	return master, err
}

func (p *Processor) sessionConfig(header envelopeHeader) Config {
	return Config{
		Mode:     header.mode,
		Padding:  header.padding,
		IV:       header.iv,
		Parallel: p.cfg.Parallel,
		Random:   p.random,
	}
}

// outputPath generates the output file path based on the input filename
// and the configured suffixes for encryption/decryption.
func (p *Processor) outputPath(filename string) string {
	ext := p.cfg.Suffixes.Encrypt

	if p.cfg.Decrypt {
		filename = strings.TrimSuffix(filename, p.cfg.Suffixes.Encrypt)
		ext = p.cfg.Suffixes.Decrypt
	}

	return filepath.Join(filepath.Dir(filename),
		filepath.Base(filename)+ext)
}
