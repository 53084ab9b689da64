package huffman

import (
	"errors"
	"testing"
)

func mustBuild(t *testing.T, s string) *HuffmanCode {
	t.Helper()
	hc, err := BuildString(s)
	if err != nil {
		t.Fatalf("cannot build code for %q: %v", s, err)
	}
	return hc
}

func TestCodeTableAABBC(t *testing.T) {
	hc := mustBuild(t, "aabbc")
	table := hc.CodeTable()
	if table.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", table.Len())
	}
	tests := []struct {
		symbol Symbol
		code   string
	}{
		{'a', "11"},
		{'b', "0"},
		{'c', "10"},
	}
	for _, tt := range tests {
		if code, ok := table.Code(tt.symbol); !ok || code != tt.code {
			t.Fatalf("code for %q: got %q, want %q", tt.symbol, code, tt.code)
		}
		if s, ok := table.SymbolFor(tt.code); !ok || s != tt.symbol {
			t.Fatalf("symbol for %q: got %q, want %q", tt.code, s, tt.symbol)
		}
	}
	if _, ok := table.SymbolFor("1"); ok {
		t.Fatalf("incomplete code '1' should not resolve to a symbol")
	}
	if msg := hc.EncodedMessage(); msg != "11110010" {
		t.Fatalf("encoded message: got %q, want %q", msg, "11110010")
	}
	want := "'a' 11\n'b' 0\n'c' 10\n"
	if s := table.String(); s != want {
		t.Fatalf("table string: got %q, want %q", s, want)
	}
}

func TestEncodeUnknownSymbol(t *testing.T) {
	hc := mustBuild(t, "abc")
	bits, err := hc.Encode([]Symbol("abd"))
	var unknown *UnknownSymbolError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownSymbolError, got %v", err)
	}
	if unknown.Symbol != 'd' || unknown.Position != 2 {
		t.Fatalf("unexpected error details %+v", unknown)
	}
	if bits != "" {
		t.Fatalf("no partial output expected, got %q", bits)
	}
	if bits, err := hc.Encode(nil); err != nil || bits != "" {
		t.Fatalf("empty sequence should encode to empty string, got %q/%v", bits, err)
	}
}

func TestDecodeInvalidCharacter(t *testing.T) {
	hc := mustBuild(t, "aabbc")
	symbols, err := hc.Decode("01x0")
	var invalid *InvalidCodeError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidCodeError, got %v", err)
	}
	if invalid.Char != 'x' || invalid.Offset != 2 {
		t.Fatalf("unexpected error details %+v", invalid)
	}
	if symbols != nil {
		t.Fatalf("no partial output expected, got %q", string(symbols))
	}
}

func TestDecodeTruncated(t *testing.T) {
	hc := mustBuild(t, "aabbc")
	msg := hc.EncodedMessage()
	_, err := hc.Decode(msg[:len(msg)-1])
	var truncated *TruncatedCodeError
	if !errors.As(err, &truncated) {
		t.Fatalf("expected TruncatedCodeError, got %v", err)
	}
	if truncated.Offset != 6 || truncated.Pending != 1 {
		t.Fatalf("unexpected error details %+v", truncated)
	}
}

func TestDecodeEmpty(t *testing.T) {
	hc := mustBuild(t, "aabbc")
	symbols, err := hc.Decode("")
	if err != nil || len(symbols) != 0 {
		t.Fatalf("empty bit string should decode to nothing, got %q/%v", string(symbols), err)
	}
}

func TestSingleSymbol(t *testing.T) {
	hc := mustBuild(t, "aaaa")
	table := hc.CodeTable()
	if table.Len() != 1 {
		t.Fatalf("expected exactly one entry, got %d", table.Len())
	}
	if code, _ := table.Code('a'); code != "0" {
		t.Fatalf("single symbol should have code '0', got %q", code)
	}
	if msg := hc.EncodedMessage(); msg != "0000" {
		t.Fatalf("encoded message: got %q, want %q", msg, "0000")
	}
	decoded, err := hc.DecodeString(hc.EncodedMessage())
	if err != nil {
		t.Fatal(err)
	}
	if decoded != "aaaa" {
		t.Fatalf("round trip failed: got %q", decoded)
	}
	var invalid *InvalidCodeError
	if _, err := hc.Decode("0010"); !errors.As(err, &invalid) || invalid.Char != '1' || invalid.Offset != 2 {
		t.Fatalf("expected InvalidCodeError for '1' at offset 2, got %v", err)
	}
	if !table.IsPrefixFree() {
		t.Fatalf("single entry table should be prefix-free")
	}
}

func TestDecodeWithForeignTree(t *testing.T) {
	hc := mustBuild(t, "hello world")
	other := mustBuild(t, "hello world")
	got, err := Decode(hc.EncodedMessage(), other.Root())
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello world" {
		t.Fatalf("decoding with an equal tree failed: got %q", string(got))
	}
}
