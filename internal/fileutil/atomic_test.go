package fileutil_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/idelchi/goseed/internal/fileutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "in.txt")
	dst := filepath.Join(dir, "out.txt")

	if err := os.WriteFile(src, []byte("hello"), 0o755); err != nil { //nolint:gosec
		t.Fatal(err)
	}

	old := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	if err := os.Chtimes(src, old, old); err != nil {
		t.Fatal(err)
	}

	size, err := fileutil.WriteAtomic(src, dst, fileutil.Options{PreserveTimestamps: true},
		func(in io.Reader, out io.Writer, executable bool) (bool, error) {
			if !executable {
				t.Error("source executable bit not reported")
			}

			data, err := io.ReadAll(in)
			if err != nil {
				return false, err
			}

			_, err = out.Write([]byte(strings.ToUpper(string(data))))

			return executable, err
		})
	if err != nil {
		t.Fatalf("WriteAtomic: %v", err)
	}

	if size != 5 {
		t.Errorf("size = %d, want 5", size)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}

	if string(got) != "HELLO" {
		t.Errorf("output = %q, want %q", got, "HELLO")
	}

	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}

	if info.Mode()&0o111 == 0 {
		t.Error("output lost the executable bit")
	}

	if !info.ModTime().Equal(old) {
		t.Errorf("mod time = %v, want %v", info.ModTime(), old)
	}
}

func TestWriteAtomicCleansUpOnError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "in.txt")
	dst := filepath.Join(dir, "out.txt")

	if err := os.WriteFile(src, []byte("hello"), 0o600); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")

	_, err := fileutil.WriteAtomic(src, dst, fileutil.Options{}, func(_ io.Reader, out io.Writer, _ bool) (bool, error) {
		_, _ = out.Write([]byte("partial"))

		return false, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want %v", err, boom)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only the source", len(entries))
	}
}
