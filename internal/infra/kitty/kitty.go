// Package kitty transmits images over the Kitty terminal graphics protocol.
//
// The framing is ESC _ G <key>=<value>,... ; <base64 payload> ESC \.
// The whole encoded payload goes out in one escape sequence, which is
// enough for single static images; this is not a general protocol
// implementation.
package kitty

import (
	"bufio"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chonker8/harness/internal/domain"
)

// Escape-sequence framing bytes.
const (
	prefix     = "\x1b_G"
	terminator = "\x1b\\"
)

// Emitter implements domain.GraphicsEmitter.
type Emitter struct{}

// NewEmitter creates a new graphics emitter.
func NewEmitter() *Emitter {
	return &Emitter{}
}

// Ensure Emitter implements domain.GraphicsEmitter interface.
var _ domain.GraphicsEmitter = (*Emitter)(nil)

// Emit reads the image at path fully into memory, base64-encodes it,
// and writes the framed sequence to w, flushing before returning. A
// missing or unreadable file is fatal; nothing partial is emitted.
func (e *Emitter) Emit(w io.Writer, path string, frame domain.GraphicsFrame) error {
	data, err := os.ReadFile(path) // #nosec G304 - image path comes from the CLI user
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", domain.ErrImageNotFound, path)
		}
		return fmt.Errorf("read image %s: %w", path, err)
	}

	encoded := base64.StdEncoding.EncodeToString(data)

	bw := bufio.NewWriterSize(w, len(prefix)+len(encoded)+64)
	if _, err := fmt.Fprintf(bw, "%s%s;%s%s", prefix, frame.Header(), encoded, terminator); err != nil {
		return fmt.Errorf("write graphics sequence: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush graphics sequence: %w", err)
	}
	return nil
}
