package cpu

import "testing"

func TestXoroshiroNext(t *testing.T) {
	x := NewXoroshiro(111)
	for i, want := range []int64{17056846968231911, 3500609826288335747, 7979107359202306130} {
		if got := x.Next(); got != want {
			t.Errorf("draw %d: got %d, want %d", i, got, want)
		}
	}
}

func TestXoroshiroSetSeed(t *testing.T) {
	x := NewXoroshiro(5)
	x.Skip(10)
	x.SetSeed(111)
	if got := x.Next(); got != 17056846968231911 {
		t.Errorf("Next() after SetSeed(111) = %d, want 17056846968231911", got)
	}
}

func TestExpandSeed(t *testing.T) {
	x := ExpandSeed(0)
	if x.Lo != 3847398142028685078 || x.Hi != 7192185014346937746 {
		t.Errorf("ExpandSeed(0) = %+v", x)
	}
}

func TestXoroshiroSkip(t *testing.T) {
	a := NewXoroshiro(42)
	b := NewXoroshiro(42)
	for i := 0; i < 7; i++ {
		a.Next()
	}
	b.Skip(7)
	if a != b {
		t.Fatalf("Skip(7) state %+v, want %+v", b, a)
	}
	if a.Next() != b.Next() {
		t.Fatal("streams diverged after Skip")
	}
}

func TestXoroshiroZeroState(t *testing.T) {
	x := NewXoroshiroState(0, 0)
	if x.Lo == 0 && x.Hi == 0 {
		t.Fatal("zero state was not replaced")
	}
	if x.Next() == 0 && x.Next() == 0 {
		t.Fatal("generator stuck at zero")
	}

	y := NewXoroshiroState(1, 2)
	if y.Lo != 1 || y.Hi != 2 {
		t.Errorf("NewXoroshiroState(1, 2) = %+v", y)
	}
}

func TestXoroshiroCopyIsIndependent(t *testing.T) {
	live := NewXoroshiro(1)
	live.Skip(3)
	want := live
	wantNext := [3]int64{want.Next(), want.Next(), want.Next()}

	peek := live
	peek.Skip(50)
	_ = peek.Next()

	for i, w := range wantNext {
		if got := live.Next(); got != w {
			t.Errorf("draw %d after discarding copy: got %d, want %d", i, got, w)
		}
	}
}
