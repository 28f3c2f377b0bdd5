package glyph

import (
	"testing"

	"github.com/glyphtrace/glyphtrace"
)

func sampleOutline(x float64) glyphtrace.Outline {
	return glyphtrace.Outline{
		{Op: glyphtrace.MoveTo, Args: []float64{x, 0}},
		{Op: glyphtrace.ClosePath},
	}
}

func TestOutlineCache_GetPut(t *testing.T) {
	c := newOutlineCache(4)

	if _, ok := c.get('a'); ok {
		t.Error("empty cache reported a hit")
	}
	c.put('a', sampleOutline(1))

	out, ok := c.get('a')
	if !ok {
		t.Fatal("cached outline not found")
	}
	if out.String() != "M 1 0 Z" {
		t.Errorf("cached outline = %q, want %q", out.String(), "M 1 0 Z")
	}

	hits, misses := c.stats()
	if hits != 1 || misses != 1 {
		t.Errorf("stats = %d hits, %d misses, want 1, 1", hits, misses)
	}
}

func TestOutlineCache_ReturnsClone(t *testing.T) {
	c := newOutlineCache(4)
	c.put('a', sampleOutline(1))

	out, _ := c.get('a')
	out[0].Args[0] = 999

	again, _ := c.get('a')
	if again[0].Args[0] != 1 {
		t.Error("mutating a returned outline changed the cached copy")
	}
}

func TestOutlineCache_EvictsOldest(t *testing.T) {
	c := newOutlineCache(2)
	c.put('a', sampleOutline(1))
	c.put('b', sampleOutline(2))
	c.put('a', sampleOutline(1)) // refresh 'a'
	c.put('c', sampleOutline(3)) // evicts 'b'

	if _, ok := c.get('b'); ok {
		t.Error("least recently used entry survived eviction")
	}
	if _, ok := c.get('a'); !ok {
		t.Error("recently used entry was evicted")
	}
	if c.len() != 2 {
		t.Errorf("len = %d, want 2", c.len())
	}
}

func TestSource_ExtractUsesCache(t *testing.T) {
	s := newFakeSource(t)

	first, err := s.Extract('A')
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Extract('A')
	if err != nil {
		t.Fatal(err)
	}
	if first.String() != second.String() {
		t.Errorf("cached extract differs: %q vs %q", first.String(), second.String())
	}
	if hits, _ := s.cache.stats(); hits != 1 {
		t.Errorf("cache hits = %d, want 1", hits)
	}
}

func TestSource_CacheDisabled(t *testing.T) {
	RegisterBackend("fake-nocache", fakeBackend{font: &fakeFont{
		upem:   1000,
		glyphs: map[rune][]Segment{'x': nil},
	}})
	s, err := NewSource([]byte("data"), WithBackend("fake-nocache"), WithCacheLimit(0))
	if err != nil {
		t.Fatal(err)
	}
	if s.cache != nil {
		t.Error("cache allocated despite WithCacheLimit(0)")
	}
}
