package noise

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownAlgorithm = errors.New("noise: unknown algorithm")

// Family is a class of noise algorithm.
type Family uint8

const (
	FamilyPerlin Family = iota + 1
	FamilyOpenSimplex
	FamilyCell
)

func (f Family) String() string {
	switch f {
	case FamilyPerlin:
		return "perlin"
	case FamilyOpenSimplex:
		return "open_simplex"
	case FamilyCell:
		return "cell"
	default:
		return "unknown"
	}
}

// Algorithm selects one evaluable (family, mode, metric) combination. The
// dimensionality is chosen by the arity of the call.
type Algorithm uint8

const (
	Perlin Algorithm = iota + 1
	OpenSimplex
	CellValue
	CellRange
	CellRangeInv
	CellValueManhattan
	CellRangeManhattan
	CellRangeInvManhattan
)

type algorithmInfo struct {
	name    string
	ident   string
	family  Family
	mode    CellMode
	metric  Metric
	minDims int
	maxDims int
}

var algorithms = [...]algorithmInfo{
	Perlin:                {"perlin", "Perlin", FamilyPerlin, 0, 0, 2, 4},
	OpenSimplex:           {"open_simplex", "OpenSimplex", FamilyOpenSimplex, 0, 0, 2, 3},
	CellValue:             {"cell.value.euclidean", "CellValue", FamilyCell, ModeValue, Euclidean, 2, 4},
	CellRange:             {"cell.range.euclidean", "CellRange", FamilyCell, ModeRange, Euclidean, 2, 4},
	CellRangeInv:          {"cell.range_inv.euclidean", "CellRangeInv", FamilyCell, ModeRangeInv, Euclidean, 2, 4},
	CellValueManhattan:    {"cell.value.manhattan", "CellValueManhattan", FamilyCell, ModeValue, Manhattan, 2, 4},
	CellRangeManhattan:    {"cell.range.manhattan", "CellRangeManhattan", FamilyCell, ModeRange, Manhattan, 2, 4},
	CellRangeInvManhattan: {"cell.range_inv.manhattan", "CellRangeInvManhattan", FamilyCell, ModeRangeInv, Manhattan, 2, 4},
}

// Algorithms lists every selector in declaration order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, 0, len(algorithms)-1)
	for a := Perlin; int(a) < len(algorithms); a++ {
		out = append(out, a)
	}
	return out
}

// ParseAlgorithm resolves a selector name such as "cell.range.manhattan".
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, a := range Algorithms() {
		if algorithms[a].name == key {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

func (a Algorithm) valid() bool {
	return a >= Perlin && int(a) < len(algorithms)
}

func (a Algorithm) String() string {
	if !a.valid() {
		return "unknown"
	}
	return algorithms[a].name
}

// Ident is the exported Go identifier of the selector, for generated code.
func (a Algorithm) Ident() string {
	if !a.valid() {
		return ""
	}
	return algorithms[a].ident
}

func (a Algorithm) Family() Family {
	if !a.valid() {
		return 0
	}
	return algorithms[a].family
}

// Mode is zero for non-cell algorithms.
func (a Algorithm) Mode() CellMode {
	if !a.valid() {
		return 0
	}
	return algorithms[a].mode
}

// Metric is zero for non-cell algorithms.
func (a Algorithm) Metric() Metric {
	if !a.valid() {
		return 0
	}
	return algorithms[a].metric
}

// Supports reports whether a has a dims-dimensional form.
func (a Algorithm) Supports(dims int) bool {
	if !a.valid() {
		return false
	}
	info := algorithms[a]
	return dims >= info.minDims && dims <= info.maxDims
}

// Describe returns a short human label, e.g. "cell noise (range, Manhattan)".
func (a Algorithm) Describe() string {
	switch a.Family() {
	case FamilyPerlin:
		return "Perlin noise"
	case FamilyOpenSimplex:
		return "OpenSimplex noise"
	case FamilyCell:
		metric := "Euclidean"
		if a.Metric() == Manhattan {
			metric = "Manhattan"
		}
		return fmt.Sprintf("cell noise (%s, %s)", a.Mode(), metric)
	default:
		return "unknown noise"
	}
}

// Eval is the shared evaluation routine behind every fixed-arity entry.
// It panics if a has no len(p)-dimensional form.
func (a Algorithm) Eval(s *Seed, p []float64) float64 {
	if !a.Supports(len(p)) {
		panic(fmt.Sprintf("noise: %s has no %d-D form", a, len(p)))
	}
	switch a {
	case Perlin:
		return perlin(s, p)
	case OpenSimplex:
		if len(p) == 2 {
			return openSimplex2(s, p[0], p[1])
		}
		return openSimplex3(s, p[0], p[1], p[2])
	default:
		info := algorithms[a]
		return cell(s, p, info.metric, info.mode)
	}
}

func (a Algorithm) Eval2(s *Seed, x, y float64) float64 {
	p := [2]float64{x, y}
	return a.Eval(s, p[:])
}

func (a Algorithm) Eval3(s *Seed, x, y, z float64) float64 {
	p := [3]float64{x, y, z}
	return a.Eval(s, p[:])
}

func (a Algorithm) Eval4(s *Seed, x, y, z, w float64) float64 {
	p := [4]float64{x, y, z, w}
	return a.Eval(s, p[:])
}
