package huffman

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/derekparker/trie"
)

// singleSymbolCode is assigned if the alphabet consists of one symbol only.
// The natural code for a root leaf would be the empty string, which cannot be
// decoded.
const singleSymbolCode = "0"

// CodeEntry is a single mapping of a code table.
type CodeEntry struct {
	Symbol Symbol
	Code   string
}

// CodeTable maps symbols to their codes. A code table is immutable and safe
// for concurrent reads.
type CodeTable struct {
	codes   map[Symbol]string
	entries []CodeEntry // sorted by symbol
	index   *trie.Trie  // code => symbol
}

// deriveCodeTable collects the root-to-leaf paths of a code tree.
func deriveCodeTable(root *CodeNode) *CodeTable {
	assert(root != nil, "huffman: cannot derive codes from nil tree")
	ct := &CodeTable{codes: make(map[Symbol]string)}
	if root.IsLeaf() {
		ct.codes[root.symbol] = singleSymbolCode
	} else {
		collectCodes(root, "", ct.codes)
	}
	ct.entries = make([]CodeEntry, 0, len(ct.codes))
	for s, code := range ct.codes {
		ct.entries = append(ct.entries, CodeEntry{Symbol: s, Code: code})
	}
	sort.Slice(ct.entries, func(i, j int) bool {
		return ct.entries[i].Symbol < ct.entries[j].Symbol
	})
	ct.index = newIndex(ct.entries)
	return ct
}

// newIndex creates a trie of codes, with symbols as payload.
func newIndex(entries []CodeEntry) *trie.Trie {
	index := trie.New()
	for _, e := range entries {
		index.Add(e.Code, e.Symbol)
	}
	return index
}

// collectCodes walks the tree depth-first. path is passed by value, so
// siblings never see each other's extensions.
func collectCodes(n *CodeNode, path string, codes map[Symbol]string) {
	if n.IsLeaf() {
		codes[n.symbol] = path
		return
	}
	assert(n.left != nil && n.right != nil, "huffman: internal node without two children")
	collectCodes(n.left, path+"0", codes)
	collectCodes(n.right, path+"1", codes)
}

// Len returns the number of symbols in the table.
func (ct *CodeTable) Len() int {
	return len(ct.entries)
}

// Code returns the code for symbol s.
func (ct *CodeTable) Code(s Symbol) (string, bool) {
	code, ok := ct.codes[s]
	return code, ok
}

// SymbolFor returns the symbol a complete code stands for.
func (ct *CodeTable) SymbolFor(code string) (Symbol, bool) {
	node, ok := ct.index.Find(code)
	if !ok {
		return 0, false
	}
	s, ok := node.Meta().(Symbol)
	return s, ok
}

// Entries returns all mappings, sorted by symbol. The returned slice is a copy.
func (ct *CodeTable) Entries() []CodeEntry {
	entries := make([]CodeEntry, len(ct.entries))
	copy(entries, ct.entries)
	return entries
}

// Map returns a copy of the table as a plain map.
func (ct *CodeTable) Map() map[Symbol]string {
	m := make(map[Symbol]string, len(ct.codes))
	for s, code := range ct.codes {
		m[s] = code
	}
	return m
}

// IsPrefixFree checks that no code is a prefix of another one.
// Tables derived from a code tree always are; this is a consistency check.
func (ct *CodeTable) IsPrefixFree() bool {
	if len(ct.index.Keys()) != len(ct.entries) {
		return false // duplicate codes
	}
	for _, e := range ct.entries {
		if e.Code == "" || len(ct.index.PrefixSearch(e.Code)) > 1 {
			return false
		}
	}
	return true
}

// String returns one line per entry, sorted by symbol.
//
// Example:
//
//	'a' 0
//	'b' 11
//	'c' 10
func (ct *CodeTable) String() string {
	var sb strings.Builder
	for _, e := range ct.entries {
		fmt.Fprintf(&sb, "%s %s\n", quoteSymbol(e.Symbol), e.Code)
	}
	return sb.String()
}

func quoteSymbol(s Symbol) string {
	return strconv.QuoteRune(s)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
