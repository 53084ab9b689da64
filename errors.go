package huffman

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when a code is requested for an empty symbol
// sequence. There is nothing to build a code tree from.
var ErrEmptyInput = errors.New("huffman: empty input")

// UnknownSymbolError is returned by encoding if a symbol has no entry in the
// code table, i.e. the table has been derived from a different input.
type UnknownSymbolError struct {
	Symbol   Symbol
	Position int // index of the symbol within the input sequence
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("huffman: no code for symbol %q at position %d", e.Symbol, e.Position)
}

// InvalidCodeError is returned by decoding if the bit string contains a
// character other than '0' or '1', or a bit for which the code tree has no
// branch.
type InvalidCodeError struct {
	Char   rune
	Offset int // byte offset within the bit string
}

func (e *InvalidCodeError) Error() string {
	if e.Char == '0' || e.Char == '1' {
		return fmt.Sprintf("huffman: bit %q at offset %d does not start a code", e.Char, e.Offset)
	}
	return fmt.Sprintf("huffman: invalid bit character %q at offset %d", e.Char, e.Offset)
}

// TruncatedCodeError is returned by decoding if the bit string ends in the
// middle of a code.
type TruncatedCodeError struct {
	Offset  int // offset of the first bit of the incomplete code
	Pending int // number of bits consumed for the incomplete code
}

func (e *TruncatedCodeError) Error() string {
	return fmt.Sprintf("huffman: bit string truncated: incomplete code of %d bit(s) at offset %d",
		e.Pending, e.Offset)
}
