package exec

import (
	"bytes"
	"sync"
)

// buffer is a bytes.Buffer safe for the concurrent writes os/exec performs
// when stdout and stderr are copied on separate goroutines.
type buffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// tee writes to the stream buffer and then to the combined buffer.
type tee struct {
	stream   *buffer
	combined *buffer
}

func (t tee) Write(p []byte) (int, error) {
	if n, err := t.stream.Write(p); err != nil {
		return n, err
	}
	return t.combined.Write(p)
}
