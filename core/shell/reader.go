package shell

import (
	"bufio"
	"bytes"
	"io"
)

// LineReader reads newline terminated commands from an input stream one
// byte at a time. It does no line editing and keeps no history.
type LineReader struct {
	in *bufio.Reader
}

// NewLineReader creates a LineReader over r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{in: bufio.NewReader(r)}
}

// ReadLine returns the next line without its terminating newline.
//
// Reaching the end of the stream returns io.EOF, even if some bytes of an
// unterminated line were already read; those bytes are dropped.
func (lr *LineReader) ReadLine() (string, error) {
	var line bytes.Buffer
	for {
		c, err := lr.in.ReadByte()
		if err != nil {
			return "", err
		}
		if c == '\n' {
			return line.String(), nil
		}
		// bytes.Buffer panics if it can't grow, the runtime treats running out
		// of memory as fatal so there's nothing to recover here.
		line.WriteByte(c)
	}
}
