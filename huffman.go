package huffman

import (
	"fmt"

	"github.com/npillmayer/huffman/bitpack"
)

// fixedWidthBits is the size of an uncompressed symbol, used as a baseline
// for compression statistics.
const fixedWidthBits = 8

// HuffmanCode is a code built for one input sequence. It holds the code
// tree, the code table and the encoded form of the input.
//
// A HuffmanCode is immutable. It is safe for concurrent use once Build has
// returned.
type HuffmanCode struct {
	root    *CodeNode
	table   *CodeTable
	encoded string
	length  int // number of input symbols
}

// Build counts the symbols, builds the code tree and derives the code table,
// then encodes symbols with it.
// An empty input results in ErrEmptyInput.
func Build(symbols []Symbol) (*HuffmanCode, error) {
	freqs, err := CountFrequencies(symbols)
	if err != nil {
		return nil, err
	}
	return buildFromTable(freqs, symbols)
}

// BuildString is a convenience for Build([]rune(s)).
func BuildString(s string) (*HuffmanCode, error) {
	return Build([]Symbol(s))
}

// BuildFrom reads all symbols from a streaming source and builds a code
// for them.
func BuildFrom(reader SymbolReader) (*HuffmanCode, error) {
	freqs, symbols, err := CountFrom(reader)
	if err != nil {
		return nil, err
	}
	return buildFromTable(freqs, symbols)
}

func buildFromTable(freqs FrequencyTable, symbols []Symbol) (*HuffmanCode, error) {
	root := buildTree(freqs)
	table := deriveCodeTable(root)
	encoded, err := Encode(symbols, table)
	if err != nil { // cannot happen for a table derived from symbols
		return nil, fmt.Errorf("huffman: inconsistent code table: %w", err)
	}
	hc := &HuffmanCode{
		root:    root,
		table:   table,
		encoded: encoded,
		length:  len(symbols),
	}
	st := hc.Stats()
	tracer().Infof("huffman code built symbols=%d distinct=%d bits=%d baseline=%d ratio=%.2f",
		st.Symbols, st.DistinctSymbols, st.EncodedBits, st.FixedWidthBits, st.Ratio())
	return hc, nil
}

// Root returns the root of the code tree. For an input with a single
// distinct symbol, root is a leaf.
func (hc *HuffmanCode) Root() *CodeNode {
	return hc.root
}

// CodeTable returns the code table. Iterating over its entries is ordered by
// symbol.
func (hc *HuffmanCode) CodeTable() *CodeTable {
	return hc.table
}

// EncodedMessage returns the input the code has been built from, in encoded
// form.
func (hc *HuffmanCode) EncodedMessage() string {
	return hc.encoded
}

// Encode encodes a different sequence with this code. Symbols not present in
// the original input result in an *UnknownSymbolError.
func (hc *HuffmanCode) Encode(symbols []Symbol) (string, error) {
	return Encode(symbols, hc.table)
}

// Decode decodes a bit string with this code's tree.
func (hc *HuffmanCode) Decode(bits string) ([]Symbol, error) {
	return Decode(bits, hc.root)
}

// DecodeString decodes bits and returns the symbols as a string.
func (hc *HuffmanCode) DecodeString(bits string) (string, error) {
	symbols, err := hc.Decode(bits)
	if err != nil {
		return "", err
	}
	return string(symbols), nil
}

// PackedMessage returns the encoded message in octet form.
func (hc *HuffmanCode) PackedMessage() bitpack.Packed {
	p, err := bitpack.Pack(hc.encoded)
	assert(err == nil, "huffman: encoded message is not a valid bit string")
	return p
}

// DecodePacked unpacks p and decodes the resulting bit string.
func (hc *HuffmanCode) DecodePacked(p bitpack.Packed) ([]Symbol, error) {
	bits, err := p.Unpack()
	if err != nil {
		return nil, err
	}
	return hc.Decode(bits)
}

// Stats reports sizes of the encoded message.
type Stats struct {
	Symbols         int // length of the input
	DistinctSymbols int // size of the alphabet
	EncodedBits     int // length of the encoded message
	FixedWidthBits  int // size of the input at 8 bits per symbol
	PackedOctets    int // size of the encoded message in octet form
}

// Ratio returns EncodedBits / FixedWidthBits.
func (st Stats) Ratio() float64 {
	if st.FixedWidthBits == 0 {
		return 0
	}
	return float64(st.EncodedBits) / float64(st.FixedWidthBits)
}

// Stats reports sizes of the encoded message.
func (hc *HuffmanCode) Stats() Stats {
	return Stats{
		Symbols:         hc.length,
		DistinctSymbols: hc.table.Len(),
		EncodedBits:     len(hc.encoded),
		FixedWidthBits:  fixedWidthBits * hc.length,
		PackedOctets:    (len(hc.encoded) + 7) / 8,
	}
}
