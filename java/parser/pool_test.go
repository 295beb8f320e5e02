package parser

import "testing"

func TestPoolGetMakesWhenEmpty(t *testing.T) {
	made := 0
	p := NewPool(2, func() int {
		made++
		return made
	}, nil)

	if got := p.Get(); got != 1 {
		t.Errorf("Get = %d, want 1", got)
	}
	if got := p.Get(); got != 2 {
		t.Errorf("Get = %d, want 2", got)
	}
}

func TestPoolReusesReturnedValues(t *testing.T) {
	p := NewPool(2, func() []Token { return make([]Token, 0, 8) },
		func(buf []Token) []Token { return buf[:0] })

	buf := p.Get()
	buf = append(buf, Token{Kind: TokenIdent})
	p.Put(buf)

	got := p.Get()
	if len(got) != 0 {
		t.Errorf("len = %d, want 0 (reset hook applied)", len(got))
	}
	if cap(got) != 8 {
		t.Errorf("cap = %d, want 8 (same backing array)", cap(got))
	}
}

func TestPoolDropsOverBound(t *testing.T) {
	p := NewPool(2, func() int { return 0 }, nil)
	p.Put(1)
	p.Put(2)
	p.Put(3) // dropped

	if got := p.Len(); got != 2 {
		t.Errorf("Len = %d, want 2", got)
	}
}

func TestPoolMinimumSize(t *testing.T) {
	p := NewPool(0, func() int { return 7 }, nil)
	p.Put(1)
	if got := p.Len(); got != 1 {
		t.Errorf("Len = %d, want 1", got)
	}
}
