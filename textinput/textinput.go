package textinput

import (
	"bufio"
	"io"

	"github.com/npillmayer/huffman"
)

const maxLineLength = 1 << 20

// Reader streams the symbols of the first line of a text source.
// The line terminator ("\n" or "\r\n") is not part of the line.
type Reader struct {
	scanner *bufio.Scanner
	line    []rune
	pos     int
	read    bool
}

// BuildLine reads one line of text from reader and builds a Huffman code
// for it.
//
// An empty line results in huffman.ErrEmptyInput.
func BuildLine(reader io.Reader) (*huffman.HuffmanCode, error) {
	return huffman.BuildFrom(NewReader(reader))
}

func NewReader(reader io.Reader) *Reader {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	return &Reader{scanner: scanner}
}

// Line returns the complete first line. It may be called before or after
// iterating with Next.
func (r *Reader) Line() (string, error) {
	if err := r.scan(); err != nil {
		return "", err
	}
	return string(r.line), nil
}

// Next returns the next symbol of the line.
// It returns io.EOF when the line is exhausted.
func (r *Reader) Next() (huffman.Symbol, error) {
	if err := r.scan(); err != nil {
		return 0, err
	}
	if r.pos >= len(r.line) {
		return 0, io.EOF
	}
	s := r.line[r.pos]
	r.pos++
	return s, nil
}

func (r *Reader) scan() error {
	if r.read {
		return nil
	}
	r.read = true
	if r.scanner.Scan() {
		r.line = []rune(r.scanner.Text())
		return nil
	}
	return r.scanner.Err() // nil at EOF, leaving an empty line
}
