// Package stream cuts raw byte chunks from a serial port or socket
// into CRLF-terminated NMEA lines.
package stream

import (
	"bufio"
	"bytes"
	"io"
)

// Splitter accumulates chunks and emits one entry per "\r\n". Bytes
// after the last separator stay buffered for the next chunk.
type Splitter struct {
	buf []byte
}

// Push appends a chunk and returns every complete line it closed off,
// without the separators. Lines are copies, safe to retain.
func (s *Splitter) Push(chunk []byte) []string {
	s.buf = append(s.buf, chunk...)
	var lines []string
	for {
		i := bytes.Index(s.buf, []byte("\r\n"))
		if i < 0 {
			break
		}
		lines = append(lines, string(s.buf[:i]))
		s.buf = s.buf[i+2:]
	}
	if len(s.buf) == 0 {
		s.buf = nil
	}
	return lines
}

// Pending is the number of buffered bytes not yet terminated.
func (s *Splitter) Pending() int { return len(s.buf) }

// NewScanner wraps a reader in a bufio.Scanner that yields one NMEA
// line per scan, tolerating both "\r\n" and bare "\n" terminators.
func NewScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Split(func(data []byte, atEOF bool) (int, []byte, error) {
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			return i + 1, bytes.TrimRight(data[:i], "\r"), nil
		}
		if atEOF && len(data) > 0 {
			return len(data), bytes.TrimRight(data, "\r"), nil
		}
		return 0, nil, nil
	})
	return sc
}
