package leafseed

import "testing"

func TestLeafMatches(t *testing.T) {
	tests := []struct {
		leaf  Leaf
		drawn int32
		want  bool
	}{
		{LeafPresent, 1, true},
		{LeafPresent, 0, false},
		{LeafAbsent, 0, true},
		{LeafAbsent, 1, false},
		{LeafUnknown, 0, true},
		{LeafUnknown, 1, true},
	}
	for _, tt := range tests {
		if got := tt.leaf.Matches(tt.drawn); got != tt.want {
			t.Errorf("Leaf(%d).Matches(%d) = %v, want %v", tt.leaf, tt.drawn, got, tt.want)
		}
	}
}

func TestSignatureString(t *testing.T) {
	want := "[ 3  2  1   _ ? _ ?  # ? # _  _ ? # _]"
	if got := DefaultTable[0].String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
