package leafseed

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var ErrInvalidSignature = errors.New("invalid signature")

const (
	unk  = LeafUnknown
	air  = LeafAbsent
	leaf = LeafPresent
)

// DefaultTable holds the six oaks observed in the chunk at block (64, -96).
// Leaves are listed like the F3 crosshair is oriented.
var DefaultTable = []Signature{
	{3, 2, 1, [LeafCount]Leaf{air, unk, air, unk, leaf, unk, leaf, air, air, unk, leaf, air}},
	{0, 5, 2, [LeafCount]Leaf{leaf, unk, leaf, air, air, unk, unk, unk, air, unk, unk, unk}},
	{4, 8, 1, [LeafCount]Leaf{air, unk, air, unk, air, unk, leaf, unk, unk, unk, leaf, leaf}},
	{12, 4, 2, [LeafCount]Leaf{leaf, leaf, air, unk, air, unk, air, unk, leaf, unk, leaf, unk}},
	{10, 7, 0, [LeafCount]Leaf{leaf, unk, unk, unk, air, air, leaf, unk, leaf, leaf, air, unk}},
	{9, 13, 1, [LeafCount]Leaf{air, unk, leaf, unk, air, unk, air, unk, air, unk, leaf, unk}},
}

// ValidateTable checks that every signature lies inside a chunk, has a
// possible trunk height and only uses known leaf values, and that no two
// signatures share a trunk position.
func ValidateTable(table []Signature) error {
	if len(table) == 0 {
		return fmt.Errorf("%w: empty table", ErrInvalidSignature)
	}

	seen := make(map[[2]int32]int, len(table))
	for i, sig := range table {
		if sig.X < 0 || sig.X >= ChunkSize || sig.Z < 0 || sig.Z >= ChunkSize {
			return fmt.Errorf("%w: tree %d at (%d, %d) is outside the chunk", ErrInvalidSignature, i, sig.X, sig.Z)
		}
		if sig.Height < 0 || sig.Height >= MaxHeight {
			return fmt.Errorf("%w: tree %d has height %d", ErrInvalidSignature, i, sig.Height)
		}
		for j, l := range sig.Leaves {
			if l != LeafUnknown && l != LeafAbsent && l != LeafPresent {
				return fmt.Errorf("%w: tree %d leaf %d has value %d", ErrInvalidSignature, i, j, l)
			}
		}
		pos := [2]int32{sig.X, sig.Z}
		if prev, ok := seen[pos]; ok {
			return fmt.Errorf("%w: trees %d and %d share position (%d, %d)", ErrInvalidSignature, prev, i, sig.X, sig.Z)
		}
		seen[pos] = i
	}
	return nil
}

// ParseTable reads signatures, one per line, in the form
//
//	[X Z H  L L L L  L L L L  L L L L]
//
// where each leaf is # (present), _ (absent) or ? (unknown). Brackets are
// optional and anything after // is ignored.
func ParseTable(r io.Reader) ([]Signature, error) {
	var table []Signature
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		line = strings.NewReplacer("[", " ", "]", " ").Replace(line)
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		sig, err := parseSignature(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		table = append(table, sig)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}

	if err := ValidateTable(table); err != nil {
		return nil, err
	}
	return table, nil
}

func parseSignature(fields []string) (Signature, error) {
	var sig Signature
	if len(fields) != 3+LeafCount {
		return sig, fmt.Errorf("%w: expected %d fields, got %d", ErrInvalidSignature, 3+LeafCount, len(fields))
	}

	var nums [3]int32
	for i := range nums {
		n, err := strconv.ParseInt(fields[i], 10, 32)
		if err != nil {
			return sig, fmt.Errorf("%w: %q is not a number", ErrInvalidSignature, fields[i])
		}
		nums[i] = int32(n)
	}
	sig.X, sig.Z, sig.Height = nums[0], nums[1], nums[2]

	for i, tok := range fields[3:] {
		l, err := parseLeaf(tok)
		if err != nil {
			return sig, err
		}
		sig.Leaves[i] = l
	}
	return sig, nil
}

func parseLeaf(tok string) (Leaf, error) {
	switch tok {
	case "#", "1":
		return LeafPresent, nil
	case "_", "0":
		return LeafAbsent, nil
	case "?", "-1":
		return LeafUnknown, nil
	}
	return 0, fmt.Errorf("%w: unknown leaf token %q", ErrInvalidSignature, tok)
}

// LoadTable parses the table file at path.
func LoadTable(path string) ([]Signature, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	table, err := ParseTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// FormatTable writes table in the syntax read by ParseTable.
func FormatTable(w io.Writer, table []Signature) error {
	if _, err := fmt.Fprintln(w, "//  X  Z  H    leaves"); err != nil {
		return err
	}
	for _, sig := range table {
		if _, err := fmt.Fprintln(w, sig); err != nil {
			return err
		}
	}
	return nil
}
