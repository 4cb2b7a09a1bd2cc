package buffer

import "testing"

func TestPoolGetReturnsZeroed(t *testing.T) {
	p := NewPool()

	s := p.Get(8)
	if len(s) != 8 {
		t.Fatalf("len = %d, want 8", len(s))
	}

	for i, v := range s {
		if v != 0 {
			t.Fatalf("s[%d] = %v, want 0", i, v)
		}
	}

	p.Put(s)
}

func TestPoolReuseIsZeroed(t *testing.T) {
	p := NewPool()

	s := p.Get(4)
	s[0] = 42
	s[1] = 43
	p.Put(s)

	s2 := p.Get(4)
	for i, v := range s2 {
		if v != 0 {
			t.Fatalf("reused s[%d] = %v, want 0", i, v)
		}
	}

	p.Put(s2)
}

func TestPoolGrows(t *testing.T) {
	p := NewPool()

	p.Put(p.Get(2))

	s := p.Get(16)
	if len(s) != 16 {
		t.Fatalf("len = %d, want 16", len(s))
	}
}

func TestPoolPutNil(t *testing.T) {
	p := NewPool()
	p.Put(nil)
}
