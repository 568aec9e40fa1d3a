package noise

import "math"

var (
	diag2 = 1 / math.Sqrt2
	edge3 = 1 / math.Sqrt2
	edge4 = 1 / math.Sqrt(3)
)

// Unit gradients, indexed by a lattice hash.
var grad2 = [8][2]float64{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{diag2, diag2}, {-diag2, diag2}, {diag2, -diag2}, {-diag2, -diag2},
}

// The 12 cube edges, padded to 16 with a repeated tetrahedron.
var grad3 = [16][3]float64{
	{edge3, edge3, 0}, {-edge3, edge3, 0}, {edge3, -edge3, 0}, {-edge3, -edge3, 0},
	{edge3, 0, edge3}, {-edge3, 0, edge3}, {edge3, 0, -edge3}, {-edge3, 0, -edge3},
	{0, edge3, edge3}, {0, -edge3, edge3}, {0, edge3, -edge3}, {0, -edge3, -edge3},
	{edge3, edge3, 0}, {-edge3, edge3, 0}, {0, -edge3, edge3}, {0, -edge3, -edge3},
}

// The 32 edges of the tesseract.
var grad4 = [32][4]float64{
	{0, edge4, edge4, edge4}, {0, edge4, edge4, -edge4}, {0, edge4, -edge4, edge4}, {0, edge4, -edge4, -edge4},
	{0, -edge4, edge4, edge4}, {0, -edge4, edge4, -edge4}, {0, -edge4, -edge4, edge4}, {0, -edge4, -edge4, -edge4},
	{edge4, 0, edge4, edge4}, {edge4, 0, edge4, -edge4}, {edge4, 0, -edge4, edge4}, {edge4, 0, -edge4, -edge4},
	{-edge4, 0, edge4, edge4}, {-edge4, 0, edge4, -edge4}, {-edge4, 0, -edge4, edge4}, {-edge4, 0, -edge4, -edge4},
	{edge4, edge4, 0, edge4}, {edge4, edge4, 0, -edge4}, {edge4, -edge4, 0, edge4}, {edge4, -edge4, 0, -edge4},
	{-edge4, edge4, 0, edge4}, {-edge4, edge4, 0, -edge4}, {-edge4, -edge4, 0, edge4}, {-edge4, -edge4, 0, -edge4},
	{edge4, edge4, edge4, 0}, {edge4, edge4, -edge4, 0}, {edge4, -edge4, edge4, 0}, {edge4, -edge4, -edge4, 0},
	{-edge4, edge4, edge4, 0}, {-edge4, edge4, -edge4, 0}, {-edge4, -edge4, edge4, 0}, {-edge4, -edge4, -edge4, 0},
}

// gradDot returns grad(h)·d for len(d) in 2..4.
func gradDot(h uint8, d []float64) float64 {
	switch len(d) {
	case 2:
		g := &grad2[h&7]
		return g[0]*d[0] + g[1]*d[1]
	case 3:
		g := &grad3[h&15]
		return g[0]*d[0] + g[1]*d[1] + g[2]*d[2]
	default:
		g := &grad4[h&31]
		return g[0]*d[0] + g[1]*d[1] + g[2]*d[2] + g[3]*d[3]
	}
}

// falloff returns attn^4 * grad·d when attn is positive.
func falloff(attn float64, h uint8, d []float64) float64 {
	if attn <= 0 {
		return 0
	}
	a2 := attn * attn
	return a2 * a2 * gradDot(h, d)
}
