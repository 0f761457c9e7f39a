package leafseed

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultTableValid(t *testing.T) {
	if err := ValidateTable(DefaultTable); err != nil {
		t.Fatal(err)
	}
	if len(DefaultTable) != 6 {
		t.Errorf("got %d trees, want 6", len(DefaultTable))
	}
}

func TestParseTable(t *testing.T) {
	const src = `
// X  Z   H   L L L L   L L L L   L L L L
[ 3  2   1   _ ? _ ?   # ? # _   _ ? # _]
  0  5   2   1 -1 1 0  0 -1 -1 -1  0 -1 -1 -1   // digits work too
`
	table, err := ParseTable(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(table) != 2 {
		t.Fatalf("got %d trees, want 2", len(table))
	}
	if table[0] != DefaultTable[0] {
		t.Errorf("tree 0 = %v, want %v", table[0], DefaultTable[0])
	}
	if table[1] != DefaultTable[1] {
		t.Errorf("tree 1 = %v, want %v", table[1], DefaultTable[1])
	}
}

func TestFormatTableRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatTable(&buf, DefaultTable); err != nil {
		t.Fatal(err)
	}
	table, err := ParseTable(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(table) != len(DefaultTable) {
		t.Fatalf("got %d trees, want %d", len(table), len(DefaultTable))
	}
	for i := range table {
		if table[i] != DefaultTable[i] {
			t.Errorf("tree %d = %v, want %v", i, table[i], DefaultTable[i])
		}
	}
}

func TestParseTableErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", "// nothing here\n"},
		{"too few fields", "[3 2 1 _ ? _ ?]"},
		{"bad leaf", "[3 2 1 _ ? _ x  # ? # _  _ ? # _]"},
		{"bad number", "[a 2 1 _ ? _ ?  # ? # _  _ ? # _]"},
		{"outside chunk", "[16 2 1 _ ? _ ?  # ? # _  _ ? # _]"},
		{"negative", "[3 -1 1 _ ? _ ?  # ? # _  _ ? # _]"},
		{"height", "[3 2 3 _ ? _ ?  # ? # _  _ ? # _]"},
		{"duplicate", "[3 2 1 _ ? _ ?  # ? # _  _ ? # _]\n[3 2 0 # # # #  # # # #  # # # #]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTable(strings.NewReader(tt.src))
			if !errors.Is(err, ErrInvalidSignature) {
				t.Errorf("got %v, want ErrInvalidSignature", err)
			}
		})
	}
}

func TestValidateTableLeafValue(t *testing.T) {
	table := []Signature{DefaultTable[0]}
	table[0].Leaves[4] = 2
	if err := ValidateTable(table); !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("got %v, want ErrInvalidSignature", err)
	}
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trees.txt")
	if err := os.WriteFile(path, []byte(DefaultTable[2].String()+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	table, err := LoadTable(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(table) != 1 || table[0] != DefaultTable[2] {
		t.Errorf("got %v", table)
	}

	if _, err := LoadTable(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}
