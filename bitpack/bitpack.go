/*
Package bitpack converts textual bit strings, i.e. strings over the characters
'0' and '1', into compact octet form and back.

Bits are packed most significant first. The final octet is padded with zero
bits, so the exact bit length is kept alongside the octets.
*/
package bitpack

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/icza/bitio"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'huffman.bitpack'
func tracer() tracing.Trace {
	return tracing.Select("huffman.bitpack")
}

// Packed is a bit string in octet form.
//
// Invariants:
//   - 0 <= BitLength <= len(Octets)*8
//   - padding bits of the last octet are zero
type Packed struct {
	Octets    []byte
	BitLength int
}

// Pack packs a textual bit string. Any character other than '0' or '1'
// results in an error.
func Pack(bits string) (Packed, error) {
	var buf bytes.Buffer
	buf.Grow((len(bits) + 7) / 8)
	w := bitio.NewWriter(&buf)
	for i := 0; i < len(bits); i++ {
		var b bool
		switch bits[i] {
		case '0':
		case '1':
			b = true
		default:
			tracer().Errorf("cannot pack character %q at offset %d", bits[i], i)
			return Packed{}, fmt.Errorf("bitpack: invalid bit character %q at offset %d", bits[i], i)
		}
		if err := w.WriteBool(b); err != nil {
			return Packed{}, err
		}
	}
	if err := w.Close(); err != nil { // flushes a partial last octet
		return Packed{}, err
	}
	return Packed{Octets: buf.Bytes(), BitLength: len(bits)}, nil
}

// Unpack returns the textual form of p.
func (p Packed) Unpack() (string, error) {
	if p.BitLength < 0 || p.BitLength > len(p.Octets)*8 {
		return "", fmt.Errorf("bitpack: bit length %d does not fit %d octets", p.BitLength, len(p.Octets))
	}
	r := bitio.NewReader(bytes.NewReader(p.Octets))
	var sb strings.Builder
	sb.Grow(p.BitLength)
	for i := 0; i < p.BitLength; i++ {
		b, err := r.ReadBool()
		if err != nil {
			return "", fmt.Errorf("bitpack: reading bit %d: %w", i, err)
		}
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String(), nil
}

// Len returns the number of octets used.
func (p Packed) Len() int {
	return len(p.Octets)
}

// String formats p as hex octets followed by the bit length, e.g. "a5 80 (9 bits)".
func (p Packed) String() string {
	parts := make([]string, len(p.Octets))
	for i, o := range p.Octets {
		parts[i] = fmt.Sprintf("%02x", o)
	}
	return fmt.Sprintf("%s (%d bits)", strings.Join(parts, " "), p.BitLength)
}
