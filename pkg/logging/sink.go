package logging

import (
	"io"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
)

// Sink receives fully rendered log lines.
type Sink interface {
	WriteLine(line string) error
}

// WriterSink writes one line per call to an io.Writer, serializing
// concurrent writers so lines never interleave.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink wraps w. A nil w writes to io.Discard.
func NewWriterSink(w io.Writer) *WriterSink {
	if w == nil {
		w = io.Discard
	}
	return &WriterSink{w: w}
}

// Writer returns the underlying writer.
func (s *WriterSink) Writer() io.Writer {
	return s.w
}

// WriteLine implements Sink. A trailing newline is added if missing.
func (s *WriterSink) WriteLine(line string) error {
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := io.WriteString(s.w, line)
	return errors.Wrap(err, "writing log line")
}
