package rng

import "testing"

func TestDeriveDeterminism(t *testing.T) {
	masterSeed := uint64(123456789)
	label := "synthesis"
	cfg := []byte("config-v1")

	r1 := Derive(masterSeed, label, cfg)
	r2 := Derive(masterSeed, label, cfg)

	if r1.Seed() != r2.Seed() {
		t.Fatalf("same inputs produced different seeds: %d vs %d", r1.Seed(), r2.Seed())
	}
	for i := 0; i < 100; i++ {
		a, b := r1.Uint64(), r2.Uint64()
		if a != b {
			t.Fatalf("iteration %d: sequences diverged: %d vs %d", i, a, b)
		}
	}
}

func TestDeriveIsolatesStages(t *testing.T) {
	cfg := []byte("config-v1")
	synthesis := Derive(42, "synthesis", cfg)
	embedding := Derive(42, "embedding", cfg)
	if synthesis.Seed() == embedding.Seed() {
		t.Fatalf("distinct stage labels produced the same derived seed")
	}
}

func TestDeriveIsSensitiveToConfig(t *testing.T) {
	a := Derive(42, "synthesis", []byte("v1"))
	b := Derive(42, "synthesis", []byte("v2"))
	if a.Seed() == b.Seed() {
		t.Fatalf("different config fingerprints produced the same derived seed")
	}
}

func TestSimpleDeterminism(t *testing.T) {
	a := NewSimple(7)
	b := NewSimple(7)
	for i := 0; i < 200; i++ {
		if a.Uint64() != b.Uint64() {
			t.Fatalf("iteration %d: identical seeds diverged", i)
		}
	}
}

func TestStackPushPopRestoresExactSequence(t *testing.T) {
	simple := NewSimple(99)
	stack := NewStack(simple)

	// Establish a baseline sequence from a known state.
	stack.Push()
	baseline := make([]uint64, 10)
	for i := range baseline {
		baseline[i] = simple.Uint64()
	}
	stack.Pop()

	// Run an unrelated "deterministic region" that consumes values, then
	// restore and confirm the baseline replays identically.
	stack.Push()
	for i := 0; i < 37; i++ {
		simple.Uint64()
	}
	stack.Pop()

	stack.Push()
	replay := make([]uint64, 10)
	for i := range replay {
		replay[i] = simple.Uint64()
	}
	stack.Pop()

	for i := range baseline {
		if baseline[i] != replay[i] {
			t.Fatalf("position %d: replay diverged from baseline: %d vs %d", i, replay[i], baseline[i])
		}
	}
}

func TestStackPopWithoutPushPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on unbalanced Pop")
		}
	}()
	NewStack(NewSimple(1)).Pop()
}

func TestWorldSeedFormula(t *testing.T) {
	got := WorldSeed(1000, 5, 3)
	want := uint64(1000) + 5*600 + 3*37
	if got != want {
		t.Fatalf("WorldSeed(1000,5,3) = %d, want %d", got, want)
	}
}
