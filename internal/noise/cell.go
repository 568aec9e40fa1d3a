package noise

import "math"

// Metric is the distance function cell noise uses to pick the nearest
// feature point.
type Metric uint8

const (
	Euclidean Metric = iota + 1
	Manhattan
)

func (m Metric) String() string {
	switch m {
	case Euclidean:
		return "euclidean"
	case Manhattan:
		return "manhattan"
	default:
		return "unknown"
	}
}

// distance is squared length for Euclidean, L1 length for Manhattan.
func (m Metric) distance(d []float64) float64 {
	sum := 0.0
	if m == Manhattan {
		for _, v := range d {
			sum += math.Abs(v)
		}
		return sum
	}
	for _, v := range d {
		sum += v * v
	}
	return sum
}

// CellMode selects what cell noise reports about the nearest feature point.
type CellMode uint8

const (
	// ModeValue is the hashed value of the winning cell, in [0, 1].
	ModeValue CellMode = iota + 1
	// ModeRange is the distance to the nearest feature point.
	ModeRange
	// ModeRangeInv is 1 - ModeRange.
	ModeRangeInv
)

func (m CellMode) String() string {
	switch m {
	case ModeValue:
		return "value"
	case ModeRange:
		return "range"
	case ModeRangeInv:
		return "range_inv"
	default:
		return "unknown"
	}
}

// Salts for the per-axis feature point jitter; kept distinct and small
// enough that hashAt stays inside the mirrored table.
var jitterSalt = [4]int{0, 61, 127, 191}

// cell finds the nearest of the jittered feature points, one per lattice
// cell, and reports on it under metric. The 3^N block around p is scanned
// first; wider shells are scanned only while a cell in them could still hold
// a nearer point.
func cell(s *Seed, p []float64, metric Metric, mode CellMode) float64 {
	n := len(p)
	var base [4]int
	for i := 0; i < n; i++ {
		base[i] = int(math.Floor(p[i]))
	}

	best := math.Inf(1)
	var bestHash uint8
	for r := 1; ; r++ {
		scanShell(s, p, base[:n], r, metric, &best, &bestHash)
		// Every cell beyond shell r is at least r away along some axis.
		reach := float64(r)
		if metric == Euclidean {
			reach *= reach
		}
		if best <= reach {
			break
		}
	}

	switch mode {
	case ModeValue:
		return float64(bestHash) / tableMask
	case ModeRangeInv:
		return 1 - best
	default:
		return best
	}
}

// scanShell visits the cells at Chebyshev distance r from base (all of the
// 3^N block when r is 1) and keeps the nearest feature point.
func scanShell(s *Seed, p []float64, base []int, r int, metric Metric, best *float64, bestHash *uint8) {
	n := len(p)
	side := 2*r + 1
	total := 1
	for i := 0; i < n; i++ {
		total *= side
	}

	var c [4]int
	var d [4]float64
	for k := 0; k < total; k++ {
		rem := k
		edge := false
		for i := 0; i < n; i++ {
			off := rem%side - r
			rem /= side
			c[i] = base[i] + off
			if off == r || off == -r {
				edge = true
			}
		}
		if r > 1 && !edge {
			continue
		}
		h := s.hash(c[:n])
		for i := 0; i < n; i++ {
			jitter := float64(s.hashAt(h, jitterSalt[i])) / tableMask
			d[i] = p[i] - (float64(c[i]) + jitter)
		}
		if dist := metric.distance(d[:n]); dist < *best {
			*best = dist
			*bestHash = h
		}
	}
}
