package huffman

import (
	"io"
	"sort"
)

// Symbol is an atomic unit of the input alphabet. Every rune value is a
// valid symbol.
type Symbol = rune

// SymbolReader yields symbols one-by-one.
// It should return io.EOF when the stream is exhausted.
type SymbolReader interface {
	Next() (Symbol, error)
}

// FrequencyTable maps every symbol of an input to its number of occurrences.
// Counts are always positive.
type FrequencyTable map[Symbol]int

// CountFrequencies scans symbols once and counts occurrences.
// An empty input results in ErrEmptyInput.
func CountFrequencies(symbols []Symbol) (FrequencyTable, error) {
	if len(symbols) == 0 {
		return nil, ErrEmptyInput
	}
	freqs := make(FrequencyTable)
	for _, s := range symbols {
		freqs[s]++
	}
	return freqs, nil
}

// CountFrom counts symbols from a streaming source. It returns the table
// together with the symbols read, as encoding needs a second pass over them.
func CountFrom(reader SymbolReader) (FrequencyTable, []Symbol, error) {
	freqs := make(FrequencyTable)
	var symbols []Symbol
	for {
		s, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		freqs[s]++
		symbols = append(symbols, s)
	}
	if len(symbols) == 0 {
		return nil, nil, ErrEmptyInput
	}
	return freqs, symbols, nil
}

// Symbols returns the distinct symbols of the table in ascending order.
func (freqs FrequencyTable) Symbols() []Symbol {
	symbols := make([]Symbol, 0, len(freqs))
	for s := range freqs {
		symbols = append(symbols, s)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
	return symbols
}

// Total returns the sum of all counts, i.e. the length of the input.
func (freqs FrequencyTable) Total() int {
	n := 0
	for _, c := range freqs {
		n += c
	}
	return n
}
