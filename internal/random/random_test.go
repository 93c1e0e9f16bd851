package random

import (
	"sync"
	"testing"
)

func TestSeededIsReproducible(t *testing.T) {
	a, b := NewSeeded(7), NewSeeded(7)
	for i := 0; i < 50; i++ {
		if x, y := a.Intn(3), b.Intn(3); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
	if a.Seed() != 7 {
		t.Fatalf("seed %d", a.Seed())
	}
}

func TestSeededZeroPicksSeed(t *testing.T) {
	s := NewSeeded(0)
	if s.Seed() == 0 {
		t.Fatal("expected a generated seed")
	}
	for i := 0; i < 100; i++ {
		if v := s.Intn(3); v < 0 || v >= 3 {
			t.Fatalf("out of range: %d", v)
		}
	}
}

func TestSeededConcurrentUse(t *testing.T) {
	s := NewSeeded(1)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				_ = s.Intn(5)
			}
		}()
	}
	wg.Wait()
}

func TestFixedAndIndex(t *testing.T) {
	cases := []struct{ i, n, want int }{{0, 3, 0}, {2, 3, 2}, {3, 3, 0}, {-1, 3, 2}, {-4, 3, 2}, {10, 1, 0}}
	for _, c := range cases {
		if got := Fixed(c.i).Intn(c.n); got != c.want {
			t.Fatalf("Fixed(%d).Intn(%d) = %d want %d", c.i, c.n, got, c.want)
		}
	}
}
