package huffman

import (
	"strings"
	"unicode/utf8"
)

// Encode concatenates the codes of symbols, in input order.
// A symbol missing from table results in an *UnknownSymbolError; no partial
// output is returned in this case.
func Encode(symbols []Symbol, table *CodeTable) (string, error) {
	assert(table != nil, "huffman: cannot encode without a code table")
	var sb strings.Builder
	for i, s := range symbols {
		code, ok := table.codes[s]
		if !ok {
			tracer().Errorf("symbol %q at position %d not in code table", s, i)
			return "", &UnknownSymbolError{Symbol: s, Position: i}
		}
		sb.WriteString(code)
	}
	return sb.String(), nil
}

// Decode reconstructs a symbol sequence from a bit string by walking the code
// tree from root. Every time a leaf is reached, its symbol is emitted and the
// walk restarts at root.
//
// Errors:
//   - *InvalidCodeError for characters other than '0' and '1', or for a bit
//     without a branch in the tree
//   - *TruncatedCodeError if bits ends within a code
//
// An empty bit string decodes to an empty sequence.
func Decode(bits string, root *CodeNode) ([]Symbol, error) {
	assert(root != nil, "huffman: cannot decode without a code tree")
	if root.IsLeaf() {
		return decodeSingle(bits, root)
	}
	out := make([]Symbol, 0, len(bits)/2)
	cursor := root
	start := 0 // offset of the code currently being read
	for i := 0; i < len(bits); i++ {
		bit := bits[i]
		if bit != '0' && bit != '1' {
			return nil, invalidCharAt(bits, i)
		}
		if cursor == root {
			start = i
		}
		cursor = cursor.child(bit)
		if cursor.IsLeaf() {
			out = append(out, cursor.symbol)
			cursor = root
		}
	}
	if cursor != root {
		tracer().Errorf("bit string ends within code starting at offset %d", start)
		return nil, &TruncatedCodeError{Offset: start, Pending: len(bits) - start}
	}
	return out, nil
}

// decodeSingle decodes for a tree consisting of one leaf, having the code
// singleSymbolCode. Every bit stands for one occurrence of the symbol.
func decodeSingle(bits string, leaf *CodeNode) ([]Symbol, error) {
	out := make([]Symbol, 0, len(bits))
	for i := 0; i < len(bits); i++ {
		if bits[i] != singleSymbolCode[0] {
			return nil, invalidCharAt(bits, i)
		}
		out = append(out, leaf.symbol)
	}
	return out, nil
}

func invalidCharAt(bits string, i int) *InvalidCodeError {
	r, _ := utf8.DecodeRuneInString(bits[i:])
	tracer().Errorf("invalid bit %q at offset %d", r, i)
	return &InvalidCodeError{Char: r, Offset: i}
}
