package cpu

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func readInts(path string) []int64 {
	f, err := os.Open(filepath.Join("testdata", path))
	if err != nil {
		panic(err)
	}
	defer f.Close()

	var ret []int64
	for {
		var i int64
		if _, err := fmt.Fscan(f, &i); err == io.EOF {
			return ret
		} else if err != nil {
			panic(err)
		}
		ret = append(ret, i)
	}
}

func TestRandomNext(t *testing.T) {
	r := NewRandom(0)
	if got := r.Next(32); got != -1155484576 {
		t.Errorf("Next(32) = %d, want -1155484576", got)
	}

	r = NewRandom(0)
	if got := r.NextLong(); got != -4962768465676381896 {
		t.Errorf("NextLong() = %d, want -4962768465676381896", got)
	}
}

func TestRandomSetSeed(t *testing.T) {
	r := NewRandom(99)
	r.Next(32)
	r.SetSeed(1)
	if got := r.NextLong(); got != -4964420948893066024 {
		t.Errorf("NextLong() after SetSeed(1) = %d, want -4964420948893066024", got)
	}
}

func TestNextIntPow2(t *testing.T) {
	data := readInts("s1010_nextInt16384.txt")
	r := NewRandom(1010)
	for _, n := range data {
		n2 := r.NextInt(16384)
		if int32(n) != n2 {
			t.Error("Expected", n, "got", n2)
		}
	}
}

func TestNextIntNonPow2(t *testing.T) {
	data := readInts("s1010_nextInt100000.txt")
	r := NewRandom(1010)
	for _, n := range data {
		n2 := r.NextInt(100000)
		if int32(n) != n2 {
			t.Error("Expected", n, "got", n2)
		}
	}
}

func TestNextLong(t *testing.T) {
	data := readInts("s1010_nextLong.txt")
	r := NewRandom(1010)
	for _, n := range data {
		n2 := r.NextLong()
		if n != n2 {
			t.Error("Expected", n, "got", n2)
		}
	}
}

func TestRandomNextIntRejectsNonPositive(t *testing.T) {
	for _, bound := range []int32{0, -1, -16} {
		func() {
			defer func() {
				if err := recover(); err == nil {
					t.Errorf("NextInt(%d): expected panic", bound)
				}
			}()
			r := NewRandom(1)
			r.NextInt(bound)
		}()
	}
}
