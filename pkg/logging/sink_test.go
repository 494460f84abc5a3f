package logging

import (
	"bytes"
	"errors"
	"testing"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("stream closed")
}

func TestWriterSink_WriteLine(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriterSink(&buf)

	if err := s.WriteLine("one"); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteLine("two\n"); err != nil {
		t.Fatal(err)
	}

	if got := buf.String(); got != "one\ntwo\n" {
		t.Errorf("output = %q", got)
	}
	if s.Writer() != &buf {
		t.Error("Writer() should return the wrapped writer")
	}
}

func TestWriterSink_Error(t *testing.T) {
	s := NewWriterSink(failingWriter{})
	if err := s.WriteLine("x"); err == nil {
		t.Error("expected error from failing writer")
	}
}

func TestWriterSink_NilWriter(t *testing.T) {
	s := NewWriterSink(nil)
	if err := s.WriteLine("x"); err != nil {
		t.Errorf("nil writer should discard, got %v", err)
	}
}
