package noise

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/danmuck/libnoise/internal/testutil/testlog"
)

var samplePoints = [][]float64{
	{0.2, 0.3, 1.5, -0.7},
	{12.75, -3.1, 0.05, 4.4},
	{-101.5, 7.25, -2.9, 0.33},
	{0.5, 0.5, 0.5, 0.5},
	{3.3, 9.9, -6.1, 2.2},
}

func supportedDims(a Algorithm) []int {
	dims := make([]int, 0, 3)
	for n := 2; n <= 4; n++ {
		if a.Supports(n) {
			dims = append(dims, n)
		}
	}
	return dims
}

func TestNewSeedIsPermutation(t *testing.T) {
	testlog.Start(t)
	s := NewSeed(42)
	if s.Value() != 42 {
		t.Fatalf("unexpected seed value: %d", s.Value())
	}
	var seen [tableSize]bool
	for i := 0; i < tableSize; i++ {
		seen[s.perm[i]] = true
		if s.perm[i] != s.perm[i+tableSize] {
			t.Fatalf("table not mirrored at %d", i)
		}
	}
	for v, ok := range seen {
		if !ok {
			t.Fatalf("permutation missing %d", v)
		}
	}
}

func TestNewSeedDeterministic(t *testing.T) {
	testlog.Start(t)
	if NewSeed(7) != NewSeed(7) {
		t.Fatalf("same seed value produced different tables")
	}
	if NewSeed(7) == NewSeed(8) {
		t.Fatalf("different seed values produced identical tables")
	}
}

func TestInitOverwritesGarbage(t *testing.T) {
	testlog.Start(t)
	var s Seed
	s.value = 0xdeadbeef
	for i := range s.perm {
		s.perm[i] = 0xff
	}
	s.Init(99)
	if s != NewSeed(99) {
		t.Fatalf("Init left stale bytes behind")
	}
}

func TestEvalDeterministic(t *testing.T) {
	testlog.Start(t)
	s := NewSeed(42)
	for _, a := range Algorithms() {
		for _, n := range supportedDims(a) {
			for _, p := range samplePoints {
				first := a.Eval(&s, p[:n])
				again := a.Eval(&s, p[:n])
				if math.Float64bits(first) != math.Float64bits(again) {
					t.Fatalf("%s %dD not deterministic at %v: %v != %v", a, n, p[:n], first, again)
				}
				if math.IsNaN(first) || math.IsInf(first, 0) {
					t.Fatalf("%s %dD non-finite at %v: %v", a, n, p[:n], first)
				}
			}
		}
	}
}

func TestEvalSameSeedValueSameResult(t *testing.T) {
	testlog.Start(t)
	a := NewSeed(1234)
	b := NewSeed(1234)
	for _, alg := range Algorithms() {
		for _, n := range supportedDims(alg) {
			p := samplePoints[1][:n]
			if alg.Eval(&a, p) != alg.Eval(&b, p) {
				t.Fatalf("%s %dD differs between equal seeds", alg, n)
			}
		}
	}
}

func TestEvalSeedIndependence(t *testing.T) {
	testlog.Start(t)
	s1 := NewSeed(1)
	s2 := NewSeed(2)
	for _, a := range Algorithms() {
		for _, n := range supportedDims(a) {
			differs := false
			for _, p := range samplePoints {
				if a.Eval(&s1, p[:n]) != a.Eval(&s2, p[:n]) {
					differs = true
					break
				}
			}
			if !differs {
				t.Fatalf("%s %dD ignores the seed", a, n)
			}
		}
	}
}

func TestFixedArityMatchesSlice(t *testing.T) {
	testlog.Start(t)
	s := NewSeed(5)
	p := samplePoints[2]
	if Perlin.Eval2(&s, p[0], p[1]) != Perlin.Eval(&s, p[:2]) {
		t.Fatalf("Eval2 mismatch")
	}
	if OpenSimplex.Eval3(&s, p[0], p[1], p[2]) != OpenSimplex.Eval(&s, p[:3]) {
		t.Fatalf("Eval3 mismatch")
	}
	if CellRangeManhattan.Eval4(&s, p[0], p[1], p[2], p[3]) != CellRangeManhattan.Eval(&s, p[:4]) {
		t.Fatalf("Eval4 mismatch")
	}
}

func TestPerlinZeroOnLattice(t *testing.T) {
	testlog.Start(t)
	s := NewSeed(42)
	if v := Perlin.Eval3(&s, 3, -2, 7); v != 0 {
		t.Fatalf("perlin should vanish on lattice points, got %v", v)
	}
}

func TestCellModes(t *testing.T) {
	testlog.Start(t)
	s := NewSeed(77)
	pairs := [][2]Algorithm{
		{CellRange, CellRangeInv},
		{CellRangeManhattan, CellRangeInvManhattan},
	}
	for _, p := range samplePoints {
		for _, pair := range pairs {
			r := pair[0].Eval(&s, p)
			inv := pair[1].Eval(&s, p)
			if r < 0 {
				t.Fatalf("%s negative range %v", pair[0], r)
			}
			if inv != 1-r {
				t.Fatalf("%s != 1-%s: %v vs %v", pair[1], pair[0], inv, r)
			}
		}
		for _, a := range []Algorithm{CellValue, CellValueManhattan} {
			v := a.Eval(&s, p[:3])
			if v < 0 || v > 1 {
				t.Fatalf("%s outside [0,1]: %v", a, v)
			}
		}
	}
}

func TestMetricDistance(t *testing.T) {
	testlog.Start(t)
	d := []float64{3, -4}
	if got := Euclidean.distance(d); got != 25 {
		t.Fatalf("squared euclidean: %v", got)
	}
	if got := Manhattan.distance(d); got != 7 {
		t.Fatalf("manhattan: %v", got)
	}
}

func TestEvalPanicsOnUnsupportedArity(t *testing.T) {
	testlog.Start(t)
	s := NewSeed(1)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for 4D OpenSimplex")
		}
	}()
	OpenSimplex.Eval4(&s, 1, 2, 3, 4)
}

func TestParseAlgorithm(t *testing.T) {
	testlog.Start(t)
	for _, a := range Algorithms() {
		got, err := ParseAlgorithm(a.String())
		if err != nil || got != a {
			t.Fatalf("round trip %s: got %v err %v", a, got, err)
		}
		if a.Ident() == "" || a.Describe() == "unknown noise" {
			t.Fatalf("%s missing ident or description", a)
		}
	}
	if _, err := ParseAlgorithm("worley"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Fatalf("expected ErrUnknownAlgorithm, got %v", err)
	}
	if Algorithm(0).Supports(2) || Algorithm(200).String() != "unknown" {
		t.Fatalf("invalid selectors must be rejected")
	}
}

func TestSupports(t *testing.T) {
	testlog.Start(t)
	if !Perlin.Supports(4) || Perlin.Supports(1) || Perlin.Supports(5) {
		t.Fatalf("perlin supports 2..4")
	}
	if !OpenSimplex.Supports(3) || OpenSimplex.Supports(4) {
		t.Fatalf("open simplex supports 2..3")
	}
	if CellValue.Family() != FamilyCell || CellValue.Metric() != Euclidean || CellValue.Mode() != ModeValue {
		t.Fatalf("cell value attributes wrong")
	}
	if Perlin.Mode() != 0 || Perlin.Metric() != 0 {
		t.Fatalf("perlin carries no cell attributes")
	}
}

func TestConcurrentReadsOfOneSeed(t *testing.T) {
	testlog.Start(t)
	s := NewSeed(31337)
	const workers = 16

	want := make([]float64, workers)
	for i := range want {
		x := float64(i) * 0.37
		want[i] = CellRangeInv.Eval3(&s, x, x*0.5, -x)
	}

	got := make([]float64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			x := float64(i) * 0.37
			for j := 0; j < 200; j++ {
				got[i] = CellRangeInv.Eval3(&s, x, x*0.5, -x)
			}
		}(i)
	}
	wg.Wait()

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("worker %d: got %v want %v", i, got[i], want[i])
		}
	}
}
