package encryption

import (
	"fmt"
	"io"
)

// streamingWriter pushes everything written to it through a Session and forwards
// the transformed bytes to w. Close finalizes the session.
type streamingWriter struct {
	w       io.Writer
	session *Session
}

func newStreamingWriter(w io.Writer, session *Session) *streamingWriter {
	return &streamingWriter{w: w, session: session}
}

// Write implements io.Writer. Output lags input by up to a block (two when decrypting with padding).
func (sw *streamingWriter) Write(data []byte) (int, error) {
	if out := sw.session.Process(data); len(out) > 0 {
		if _, err := sw.w.Write(out); err != nil {
			return 0, fmt.Errorf("writing transformed blocks: %w", err)
		}
	}

	return len(data), nil
}

// Close implements io.Closer, flushing the final blocks.
func (sw *streamingWriter) Close() error {
	out, err := sw.session.Finalize(nil)
	if err != nil {
		return fmt.Errorf("finalizing: %w", err)
	}

	if _, err := sw.w.Write(out); err != nil {
		return fmt.Errorf("writing final blocks: %w", err)
	}

	return nil
}

// pump copies reader into sw in pooled chunks and closes sw.
func pump(sw *streamingWriter, reader io.Reader) error {
	buf := getChunk()
	defer putChunk(buf)

	for {
		n, err := reader.Read(*buf)
		if n > 0 {
			if _, err := sw.Write((*buf)[:n]); err != nil {
				return err
			}
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}

	return sw.Close()
}
