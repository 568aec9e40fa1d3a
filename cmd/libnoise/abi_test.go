package main

import (
	"math"
	"sync"
	"testing"

	"github.com/danmuck/libnoise/internal/noise"
	"github.com/danmuck/libnoise/internal/testutil/testlog"
)

func TestExampleScenario(t *testing.T) {
	testlog.Start(t)
	seed := noise_seed_new(42)
	if seed == nil {
		t.Fatalf("noise_seed_new returned NULL")
	}
	v := noise_perlin3(seed, 0.2, 0.3, 1.5)
	again := noise_perlin3(seed, 0.2, 0.3, 1.5)
	if math.Float64bits(float64(v)) != math.Float64bits(float64(again)) {
		t.Fatalf("repeat call differs: %v != %v", v, again)
	}
	noise_seed_delete(seed)
}

func TestCreateDeleteWithoutEvaluation(t *testing.T) {
	testlog.Start(t)
	for i := 0; i < 32; i++ {
		noise_seed_delete(noise_seed_new(7))
	}
}

func TestWrappersForwardUnchanged(t *testing.T) {
	testlog.Start(t)
	seed := noise_seed_new(1234)
	defer noise_seed_delete(seed)
	s := borrow(seed)

	cases := []struct {
		name string
		got  float64
		want float64
	}{
		{"perlin2", float64(noise_perlin2(seed, 1.25, -0.5)), noise.Perlin.Eval2(s, 1.25, -0.5)},
		{"perlin4", float64(noise_perlin4(seed, 1.25, -0.5, 3.5, 0.1)), noise.Perlin.Eval4(s, 1.25, -0.5, 3.5, 0.1)},
		{"open_simplex2", float64(noise_open_simplex2(seed, 1.25, -0.5)), noise.OpenSimplex.Eval2(s, 1.25, -0.5)},
		{"open_simplex3", float64(noise_open_simplex3(seed, 1.25, -0.5, 3.5)), noise.OpenSimplex.Eval3(s, 1.25, -0.5, 3.5)},
		{"cell3_value", float64(noise_cell3_value(seed, 1.25, -0.5, 3.5)), noise.CellValue.Eval3(s, 1.25, -0.5, 3.5)},
		{"cell2_range", float64(noise_cell2_range(seed, 1.25, -0.5)), noise.CellRange.Eval2(s, 1.25, -0.5)},
		{"cell4_range_inv", float64(noise_cell4_range_inv(seed, 1.25, -0.5, 3.5, 0.1)), noise.CellRangeInv.Eval4(s, 1.25, -0.5, 3.5, 0.1)},
		{"cell2_manhattan_value", float64(noise_cell2_manhattan_value(seed, 1.25, -0.5)), noise.CellValueManhattan.Eval2(s, 1.25, -0.5)},
		{"cell3_manhattan_range", float64(noise_cell3_manhattan_range(seed, 1.25, -0.5, 3.5)), noise.CellRangeManhattan.Eval3(s, 1.25, -0.5, 3.5)},
		{"cell4_manhattan_range_inv", float64(noise_cell4_manhattan_range_inv(seed, 1.25, -0.5, 3.5, 0.1)), noise.CellRangeInvManhattan.Eval4(s, 1.25, -0.5, 3.5, 0.1)},
	}
	for _, tc := range cases {
		if math.Float64bits(tc.got) != math.Float64bits(tc.want) {
			t.Fatalf("%s: wrapper %v != engine %v", tc.name, tc.got, tc.want)
		}
	}
}

func TestSeedValueIsThreadedThrough(t *testing.T) {
	testlog.Start(t)
	a := noise_seed_new(1)
	b := noise_seed_new(2)
	defer noise_seed_delete(a)
	defer noise_seed_delete(b)

	if noise_perlin3(a, 0.2, 0.3, 1.5) == noise_perlin3(b, 0.2, 0.3, 1.5) &&
		noise_cell2_value(a, 3.7, -1.2) == noise_cell2_value(b, 3.7, -1.2) &&
		noise_open_simplex2(a, 0.4, 0.9) == noise_open_simplex2(b, 0.4, 0.9) {
		t.Fatalf("seed value had no effect on any sampled function")
	}
}

func TestConcurrentReadersShareOneSeed(t *testing.T) {
	testlog.Start(t)
	seed := noise_seed_new(99)
	want := float64(noise_cell3_manhattan_range(seed, 0.5, 1.5, 2.5))

	const readers = 8
	got := make([]float64, readers)
	var wg sync.WaitGroup
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got[i] = float64(noise_cell3_manhattan_range(seed, 0.5, 1.5, 2.5))
			}
		}(i)
	}
	wg.Wait()
	noise_seed_delete(seed)

	for i, v := range got {
		if v != want {
			t.Fatalf("reader %d: %v != %v", i, v, want)
		}
	}
}
