// Package logic implements the core business logic for the encryption/decryption.
package logic

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-yaml"
	"github.com/sirupsen/logrus"

	"github.com/idelchi/goseed/internal/config"
	"github.com/idelchi/goseed/internal/encryption"
)

// Run is the main logic of the application.
func Run(cfg *config.Config, log logrus.FieldLogger) error {
	if cfg.Show {
		return show(os.Stdout, cfg)
	}

	start := time.Now()

	scanned, err := resolveFiles(cfg)
	if err != nil {
		return fmt.Errorf("resolving files: %w", err)
	}

	log.WithField("files", len(cfg.Files)).WithField("scanned", scanned).Debug("resolved inputs")

	proc, err := encryption.NewProcessor(cfg, log)
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}

	processed, errored, totalSize, err := proc.ProcessFiles()

	if cfg.Stats {
		printStats(scanned, scanned-len(cfg.Files), processed, errored, totalSize, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("running logic: %w", err)
	}

	return nil
}

// resolveFiles expands directories among the positional args. Files named explicitly are
// always kept; files found by walking a directory are kept only if they carry the encrypted
// suffix when decrypting, or lack it when encrypting.
// Returns the total number of files scanned before filtering.
func resolveFiles(cfg *config.Config) (int, error) {
	var (
		files   []string
		scanned int
	)

	seen := make(map[string]struct{})

	add := func(path string) {
		clean := filepath.ToSlash(filepath.Clean(path))
		if _, ok := seen[clean]; !ok {
			seen[clean] = struct{}{}
			files = append(files, clean)
		}
	}

	for _, arg := range cfg.Files {
		info, err := os.Stat(arg)
		if err != nil {
			return scanned, fmt.Errorf("stat %q: %w", arg, err)
		}

		if !info.IsDir() {
			scanned++

			add(arg)

			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !d.Type().IsRegular() {
				return nil
			}

			scanned++

			if strings.HasSuffix(path, cfg.Suffixes.Encrypt) == cfg.Decrypt {
				add(path)
			}

			return nil
		})
		if err != nil {
			return scanned, fmt.Errorf("walking %q: %w", arg, err)
		}
	}

	cfg.Files = files

	return scanned, nil
}

// show prints the configuration as YAML with key material masked.
func show(w io.Writer, cfg *config.Config) error {
	masked := *cfg

	const redacted = "<redacted>"

	if masked.Key.String != "" {
		masked.Key.String = redacted
	}

	if masked.Key.Password != "" {
		masked.Key.Password = redacted
	}

	out, err := yaml.Marshal(masked)
	if err != nil {
		return fmt.Errorf("marshalling configuration: %w", err)
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("writing configuration: %w", err)
	}

	return nil
}

func printStats(scanned, excluded, processed, errored int, totalSize int64, duration time.Duration) {
	fmt.Fprintf(os.Stderr, "\nStats\n")
	fmt.Fprintf(os.Stderr, "  Scanned:   %d\n", scanned)
	fmt.Fprintf(os.Stderr, "  Skipped:   %d\n", excluded)
	fmt.Fprintf(os.Stderr, "  Processed: %d\n", processed)
	fmt.Fprintf(os.Stderr, "  Errors:    %d\n", errored)
	//nolint:gosec // totalSize is always non-negative (sum of file sizes)
	fmt.Fprintf(os.Stderr, "  Size:      %s\n", humanize.IBytes(uint64(max(0, totalSize))))
	fmt.Fprintf(os.Stderr, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
