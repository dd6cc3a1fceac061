package visual

import (
	"testing"

	"golang.org/x/exp/rand"
)

func TestRollReproducible(t *testing.T) {
	a := Roll(rand.NewSource(42))
	b := Roll(rand.NewSource(42))

	if a != b {
		t.Errorf("same seed should roll identical palettes:\n%+v\n%+v", a, b)
	}
}

func TestRollAdvancesStream(t *testing.T) {
	src := rand.New(rand.NewSource(7))

	first := Roll(src)
	second := Roll(src)

	if first == second {
		t.Error("consecutive rolls from one generator should differ")
	}

	// Re-seeding replays the exact same sequence of palettes.
	src = rand.New(rand.NewSource(7))
	if got := Roll(src); got != first {
		t.Errorf("first palette after reseed = %+v, want %+v", got, first)
	}
	if got := Roll(src); got != second {
		t.Errorf("second palette after reseed = %+v, want %+v", got, second)
	}
}

func TestRollComponentsClipped(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		p := Roll(rand.NewSource(seed))
		for _, c := range []Color{p.Pole, p.Cart, p.Axle, p.Track, p.Background} {
			for i, v := range c {
				if v < 0 || v > 1 {
					t.Fatalf("seed %d: component %d = %v outside [0,1]", seed, i, v)
				}
			}
		}
	}
}

func TestSeedManagerFixedMode(t *testing.T) {
	m := NewSeedManager(1, 1234)

	s1 := m.Reset()
	p1 := Roll(m.Source())
	s2 := m.Reset()
	p2 := Roll(m.Source())

	if s1 != 1234 || s2 != 1234 {
		t.Errorf("fixed mode seeds = %d, %d, want 1234", s1, s2)
	}
	if p1 != p2 {
		t.Errorf("fixed mode should replay the palette:\n%+v\n%+v", p1, p2)
	}
}

func TestSeedManagerReseedReportsSeed(t *testing.T) {
	m := NewSeedManager(0, 0)

	if got := m.Reseed(99); got != 99 {
		t.Errorf("Reseed(99) = %d, want 99", got)
	}
	if m.Seed() != 99 {
		t.Errorf("Seed() = %d, want 99", m.Seed())
	}

	// Auto-seed still reports the value actually used.
	auto := m.Reseed()
	if auto != m.Seed() {
		t.Errorf("auto Reseed returned %d but Seed() = %d", auto, m.Seed())
	}
	p1 := Roll(m.Source())
	m.Reseed(auto)
	p2 := Roll(m.Source())
	if p1 != p2 {
		t.Error("replaying a reported auto-seed should reproduce the palette")
	}
}

func TestReseedExplicitSelfContained(t *testing.T) {
	// An explicit reseed depends only on its argument: interleaving any
	// number of auto-seeded resets must not perturb the stream an explicit
	// seed produces.
	m := NewSeedManager(0, 0)
	m.Reseed(31)
	want := Roll(m.Source())

	for i := 0; i < 5; i++ {
		m.Reseed()
		Roll(m.Source())
	}

	m.Reseed(31)
	if got := Roll(m.Source()); got != want {
		t.Errorf("explicit seed 31 rolled %+v after auto reseeds, want %+v", got, want)
	}
}

func TestColorRGB8(t *testing.T) {
	cases := []struct {
		c    Color
		r, g, b uint8
	}{
		{Color{0, 0, 0}, 0, 0, 0},
		{Color{1, 1, 1}, 255, 255, 255},
		{Color{0.5, 0.5, 0.5}, 128, 128, 128},
		{Color{-2, 3, 0.25}, 0, 255, 64},
	}
	for _, tc := range cases {
		r, g, b := tc.c.RGB8()
		if r != tc.r || g != tc.g || b != tc.b {
			t.Errorf("RGB8(%v) = %d,%d,%d want %d,%d,%d", tc.c, r, g, b, tc.r, tc.g, tc.b)
		}
	}
}
