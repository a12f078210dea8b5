package client

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// maxFrameSize caps a single streamed frame. Frames carry token-sized text
// chunks plus optional details, so a megabyte is generous.
const maxFrameSize = 1 << 20

// Stream is a lazy, finite, non-restartable sequence of generated text
// chunks. Each Recv performs one blocking read on the underlying connection.
// Partial consumption is valid: Close releases the connection at any point
// without error.
type Stream struct {
	body    io.ReadCloser
	scanner *bufio.Scanner
	err     error
	closed  bool
}

func newStream(body io.ReadCloser) *Stream {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxFrameSize)
	return &Stream{body: body, scanner: scanner}
}

// streamFrame is one line-delimited JSON frame of a streamed response. A
// frame carries either a text chunk or an error object; "details" on normal
// frames holds generation metadata and is not an error indicator.
type streamFrame struct {
	GeneratedText string          `json:"generated_text"`
	Error         json.RawMessage `json:"error"`
}

// errorDetail extracts the detail text from an error frame. The error field
// is either a plain string or an object with a details/message key.
func (f *streamFrame) errorDetail() (string, bool) {
	if len(f.Error) == 0 || bytes.Equal(f.Error, []byte("null")) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(f.Error, &s); err == nil {
		return s, true
	}
	if detail := errorDetail(f.Error); detail != "" {
		return detail, true
	}
	return string(f.Error), true
}

// Recv returns the next text chunk. It returns io.EOF when the runtime
// closes the stream cleanly, and a wrapped *ServiceError when a frame
// carries an error object; in both cases the underlying connection is
// released and subsequent calls return the same result.
func (s *Stream) Recv() (string, error) {
	if s.err != nil {
		return "", s.err
	}

	for s.scanner.Scan() {
		line := bytes.TrimSpace(s.scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		// Tolerate SSE-style framing.
		line = bytes.TrimSpace(bytes.TrimPrefix(line, []byte("data:")))

		var frame streamFrame
		if err := json.Unmarshal(line, &frame); err != nil {
			s.fail(fmt.Errorf("decode stream frame: %w", err))
			return "", s.err
		}
		if detail, ok := frame.errorDetail(); ok {
			s.fail(fmt.Errorf("Exception iterating responses: %w", &ServiceError{Detail: detail}))
			return "", s.err
		}
		return frame.GeneratedText, nil
	}

	if err := s.scanner.Err(); err != nil {
		s.fail(err)
		return "", s.err
	}
	s.fail(io.EOF)
	return "", io.EOF
}

// Text consumes the remainder of the stream and returns the concatenation
// of all chunks. On error the text received so far is returned with it.
func (s *Stream) Text() (string, error) {
	var b strings.Builder
	for {
		chunk, err := s.Recv()
		if errors.Is(err, io.EOF) {
			return b.String(), nil
		}
		if err != nil {
			return b.String(), err
		}
		b.WriteString(chunk)
	}
}

// Close releases the underlying connection. It is idempotent and safe to
// call mid-stream; subsequent Recv calls report io.EOF so a close-then-drain
// sequence ends cleanly.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.err == nil {
		s.err = io.EOF
	}
	return s.body.Close()
}

// fail latches a terminal state and releases the connection.
func (s *Stream) fail(err error) {
	s.err = err
	if !s.closed {
		s.closed = true
		_ = s.body.Close()
	}
}
