package huffman

import (
	"github.com/npillmayer/huffman/pqueue"
)

type nodeKind uint8

const (
	leafNode nodeKind = iota
	internalNode
)

// CodeNode is a node of a code tree. It is either a leaf, holding a symbol,
// or an internal node with exactly two children. Nodes are never modified
// after the tree has been built.
type CodeNode struct {
	kind   nodeKind
	symbol Symbol // valid for leaves only
	weight int    // frequency of the symbol or sum of children's weights
	left   *CodeNode
	right  *CodeNode
}

func newLeaf(s Symbol, weight int) *CodeNode {
	return &CodeNode{kind: leafNode, symbol: s, weight: weight}
}

func newInternal(left, right *CodeNode) *CodeNode {
	return &CodeNode{
		kind:   internalNode,
		weight: left.weight + right.weight,
		left:   left,
		right:  right,
	}
}

// IsLeaf is true for nodes holding a symbol.
func (n *CodeNode) IsLeaf() bool {
	return n.kind == leafNode
}

// Symbol returns the symbol of a leaf. ok is false for internal nodes.
func (n *CodeNode) Symbol() (s Symbol, ok bool) {
	if n.kind != leafNode {
		return 0, false
	}
	return n.symbol, true
}

// Weight returns the aggregate frequency of all symbols below n.
func (n *CodeNode) Weight() int {
	return n.weight
}

// Left returns the child reached by bit 0, or nil for a leaf.
func (n *CodeNode) Left() *CodeNode {
	return n.left
}

// Right returns the child reached by bit 1, or nil for a leaf.
func (n *CodeNode) Right() *CodeNode {
	return n.right
}

// child returns the successor of n for a bit character.
func (n *CodeNode) child(bit byte) *CodeNode {
	if bit == '0' {
		return n.left
	}
	return n.right
}

// lighter orders nodes by weight; ties are resolved by the queue.
func lighter(a, b *CodeNode) bool {
	return a.weight < b.weight
}

// buildTree merges the two lightest nodes until a single root remains.
// Leaves enter the queue in ascending symbol order. A table with a single
// entry yields a leaf as root.
func buildTree(freqs FrequencyTable) *CodeNode {
	assert(len(freqs) > 0, "huffman: cannot build a code tree from an empty frequency table")
	queue := pqueue.New(lighter)
	for _, s := range freqs.Symbols() {
		assert(freqs[s] > 0, "huffman: frequency table contains a non-positive count")
		queue.Push(newLeaf(s, freqs[s]))
	}
	for queue.Len() > 1 {
		a, _ := queue.Pop()
		b, _ := queue.Pop()
		parent := newInternal(a, b)
		tracer().Debugf("merge %s + %s => %d", a, b, parent.weight)
		queue.Push(parent)
	}
	root, _ := queue.Pop()
	return root
}

// String is a short form for tracing, e.g. 'a':3 or *5.
func (n *CodeNode) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.kind == leafNode {
		return quoteSymbol(n.symbol) + ":" + itoa(n.weight)
	}
	return "*" + itoa(n.weight)
}
