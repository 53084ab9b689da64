/*
Package huffman builds prefix-free binary codes from symbol frequencies and
uses them to transform a symbol sequence into a bit string and back.

The construction follows the classic greedy algorithm by David A. Huffman:
symbols are counted, every symbol becomes a leaf weighted by its frequency, and
the two lightest nodes are merged repeatedly until a single code tree remains.
Root-to-leaf paths of this tree (0 = left, 1 = right) are the codes.

Codes are deterministic. Nodes of equal weight are merged in the order they
entered the priority queue, and leaves enter the queue in ascending symbol
order. Building twice from the same input therefore yields the same table and
the same encoded message.

An input consisting of a single distinct symbol yields a tree without any
internal node. Such a symbol is assigned the code "0".

Bit strings are handled in textual form, i.e. as strings over '0' and '1'.
Package bitpack converts them to octets where a compact form is needed.

Further Reading

	https://en.wikipedia.org/wiki/Huffman_coding
	D.A. Huffman: A Method for the Construction of Minimum-Redundancy Codes (1952)

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package huffman

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'huffman'
func tracer() tracing.Trace {
	return tracing.Select("huffman")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
