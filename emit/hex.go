// Package emit formats accepted frames the way the receiver's external
// collaborator (standard output) expects them: lowercase hex, one frame
// per line, flushed immediately.
package emit

import (
	"encoding/hex"
	"io"
)

// Flusher is implemented by writers that buffer output and need an
// explicit flush, such as *bufio.Writer. WriteHex flushes after every
// line when the destination writer supports it, so an accepted frame
// reaches its destination immediately instead of waiting on a full
// buffer.
type Flusher interface {
	Flush() error
}

// WriteHex writes frame as lowercase hex followed by a single newline,
// then flushes w if it implements Flusher.
func WriteHex(w io.Writer, frame []byte) error {
	line := make([]byte, hex.EncodedLen(len(frame))+1)
	hex.Encode(line, frame)
	line[len(line)-1] = '\n'

	if _, err := w.Write(line); err != nil {
		return err
	}
	if f, ok := w.(Flusher); ok {
		return f.Flush()
	}
	return nil
}
