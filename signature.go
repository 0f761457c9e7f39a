package leafseed

import (
	"fmt"
	"strings"
)

// LeafCount is the number of corner leaves recorded per tree: four corners on
// each of the three lower canopy layers.
const LeafCount = 12

// ChunkSize is the width of a chunk in blocks; tree positions are chunk-local.
const ChunkSize = 16

// MaxHeight bounds the extra trunk height of an oak (0, 1 or 2 extra logs).
const MaxHeight = 3

type Leaf int8

const (
	LeafUnknown Leaf = -1
	LeafAbsent  Leaf = 0
	LeafPresent Leaf = 1
)

// Matches reports whether a drawn leaf bit is consistent with l.
func (l Leaf) Matches(drawn int32) bool {
	return l == LeafUnknown || int32(l) == drawn
}

func (l Leaf) Token() byte {
	switch l {
	case LeafPresent:
		return '#'
	case LeafAbsent:
		return '_'
	default:
		return '?'
	}
}

// Signature is one observed tree: its chunk-local trunk position, extra
// trunk height and the corner leaves in generation order.
type Signature struct {
	X, Z   int32
	Height int32
	Leaves [LeafCount]Leaf
}

// String formats s in the table syntax accepted by ParseTable.
func (s Signature) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%2d %2d  %d ", s.X, s.Z, s.Height)
	for i, l := range s.Leaves {
		if i%4 == 0 {
			b.WriteString("  ")
		} else {
			b.WriteByte(' ')
		}
		b.WriteByte(l.Token())
	}
	b.WriteByte(']')
	return b.String()
}

// Print draws each canopy layer's corners as a 2x2 grid.
func (s Signature) Print() {
	fmt.Printf("tree at (%d, %d), height +%d\n", s.X, s.Z, s.Height)
	for layer := 0; layer < LeafCount/4; layer++ {
		corners := s.Leaves[layer*4 : layer*4+4]
		fmt.Printf("  %c %c\n", corners[0].Token(), corners[1].Token())
		fmt.Printf("  %c %c\n", corners[2].Token(), corners[3].Token())
		if layer < LeafCount/4-1 {
			fmt.Print("\n")
		}
	}
}
