package noise

import "math"

const (
	stretch2 = -0.211324865405187 // (1/sqrt(2+1) - 1) / 2
	squish2  = 0.366025403784439  // (sqrt(2+1) - 1) / 2
	stretch3 = -1.0 / 6.0         // (1/sqrt(3+1) - 1) / 3
	squish3  = 1.0 / 3.0          // (sqrt(3+1) - 1) / 3

	// Peak of the kernel sum for the gradient sets below.
	normOpenSimplex2 = 47.0
	normOpenSimplex3 = 103.0
)

// Gradients point at the vertices of an octagon (2D) and a rhombicuboctahedron
// (3D). The integer scale is absorbed by the norm constants.
var osGrad2 = [8][2]float64{
	{5, 2}, {2, 5}, {-5, 2}, {-2, 5},
	{5, -2}, {2, -5}, {-5, -2}, {-2, -5},
}

var osGrad3 = [24][3]float64{
	{-11, 4, 4}, {-4, 11, 4}, {-4, 4, 11},
	{11, 4, 4}, {4, 11, 4}, {4, 4, 11},
	{-11, -4, 4}, {-4, -11, 4}, {-4, -4, 11},
	{11, -4, 4}, {4, -11, 4}, {4, -4, 11},
	{-11, 4, -4}, {-4, 11, -4}, {-4, 4, -11},
	{11, 4, -4}, {4, 11, -4}, {4, 4, -11},
	{-11, -4, -4}, {-4, -11, -4}, {-4, -4, -11},
	{11, -4, -4}, {4, -11, -4}, {4, -4, -11},
}

// Lattice offsets, in stretched space, of the three regions of the unit cube.
var (
	lowerTetra3 = [4][3]int{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	upperTetra3 = [4][3]int{{1, 1, 0}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1}}
	octahedron3 = [6][3]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 0}, {1, 0, 1}, {0, 1, 1}}
)

// openSimplex2 sums the three vertices of the triangle containing the point
// plus the one lattice vertex outside it that can still reach the point.
func openSimplex2(s *Seed, x, y float64) float64 {
	stretch := (x + y) * stretch2
	xs, ys := x+stretch, y+stretch
	xsb, ysb := math.Floor(xs), math.Floor(ys)

	squish := (xsb + ysb) * squish2
	base := [2]int{int(xsb), int(ysb)}
	d0 := [2]float64{x - (xsb + squish), y - (ysb + squish)}
	xins, yins := xs-xsb, ys-ysb
	inSum := xins + yins

	var near, ext [2]int
	if inSum <= 1 {
		zins := 1 - inSum
		switch {
		case zins > xins || zins > yins:
			if xins > yins {
				ext = [2]int{1, -1}
			} else {
				ext = [2]int{-1, 1}
			}
		default:
			ext = [2]int{1, 1}
		}
	} else {
		near = [2]int{1, 1}
		zins := 2 - inSum
		switch {
		case zins < xins || zins < yins:
			if xins > yins {
				ext = [2]int{2, 0}
			} else {
				ext = [2]int{0, 2}
			}
		default:
			ext = [2]int{0, 0}
		}
	}

	value := openSimplexVertex2(s, base, d0, [2]int{1, 0})
	value += openSimplexVertex2(s, base, d0, [2]int{0, 1})
	value += openSimplexVertex2(s, base, d0, near)
	value += openSimplexVertex2(s, base, d0, ext)
	return value / normOpenSimplex2
}

// openSimplexVertex2 is the contribution of lattice vertex base+o. d0 is the
// point's offset from base in unstretched space.
func openSimplexVertex2(s *Seed, base [2]int, d0 [2]float64, o [2]int) float64 {
	shift := float64(o[0]+o[1]) * squish2
	dx := d0[0] - float64(o[0]) - shift
	dy := d0[1] - float64(o[1]) - shift
	attn := 2 - dx*dx - dy*dy
	if attn <= 0 {
		return 0
	}
	cell := [2]int{base[0] + o[0], base[1] + o[1]}
	g := &osGrad2[s.hash(cell[:])&7]
	attn *= attn
	return attn * attn * (g[0]*dx + g[1]*dy)
}

// openSimplex3 sums the vertices of the region (tetrahedron or octahedron)
// containing the point plus the two outside vertices that can reach it.
func openSimplex3(s *Seed, x, y, z float64) float64 {
	stretch := (x + y + z) * stretch3
	xs, ys, zs := x+stretch, y+stretch, z+stretch
	xsb, ysb, zsb := math.Floor(xs), math.Floor(ys), math.Floor(zs)

	squish := (xsb + ysb + zsb) * squish3
	base := [3]int{int(xsb), int(ysb), int(zsb)}
	d0 := [3]float64{x - (xsb + squish), y - (ysb + squish), z - (zsb + squish)}
	ins := [3]float64{xs - xsb, ys - ysb, zs - zsb}
	inSum := ins[0] + ins[1] + ins[2]

	var region [][3]int
	var ext0, ext1 [3]int
	switch {
	case inSum <= 1:
		region = lowerTetra3[:]
		ext0, ext1 = lowerExtras3(ins, inSum)
	case inSum >= 2:
		region = upperTetra3[:]
		ext0, ext1 = upperExtras3(ins, inSum)
	default:
		region = octahedron3[:]
		ext0, ext1 = octahedronExtras3(ins)
	}

	value := 0.0
	for _, o := range region {
		value += openSimplexVertex3(s, base, d0, o)
	}
	value += openSimplexVertex3(s, base, d0, ext0)
	value += openSimplexVertex3(s, base, d0, ext1)
	return value / normOpenSimplex3
}

// lowerExtras3 picks the outside vertices for a point in the tetrahedron at
// (0,0,0). Points are bit sets: 1=x, 2=y, 4=z.
func lowerExtras3(ins [3]float64, inSum float64) (ext0, ext1 [3]int) {
	aPoint, aScore := 1, ins[0]
	bPoint, bScore := 2, ins[1]
	if aScore >= bScore && ins[2] > bScore {
		bScore, bPoint = ins[2], 4
	} else if aScore < bScore && ins[2] > aScore {
		aScore, aPoint = ins[2], 4
	}

	wins := 1 - inSum
	if wins > aScore || wins > bScore {
		// (0,0,0) is one of the two closest vertices.
		c := aPoint
		if bScore > aScore {
			c = bPoint
		}
		if c&1 == 0 {
			ext0[0], ext1[0] = -1, 0
		} else {
			ext0[0], ext1[0] = 1, 1
		}
		if c&2 == 0 {
			if c&1 == 0 {
				ext1[1] = -1
			} else {
				ext0[1] = -1
			}
		} else {
			ext0[1], ext1[1] = 1, 1
		}
		if c&4 == 0 {
			ext0[2], ext1[2] = 0, -1
		} else {
			ext0[2], ext1[2] = 1, 1
		}
		return ext0, ext1
	}

	c := aPoint | bPoint
	for i := 0; i < 3; i++ {
		if c&(1<<i) == 0 {
			ext0[i], ext1[i] = 0, -1
		} else {
			ext0[i], ext1[i] = 1, 1
		}
	}
	return ext0, ext1
}

// upperExtras3 mirrors lowerExtras3 for the tetrahedron at (1,1,1).
func upperExtras3(ins [3]float64, inSum float64) (ext0, ext1 [3]int) {
	aPoint, aScore := 6, ins[0]
	bPoint, bScore := 5, ins[1]
	if aScore <= bScore && ins[2] < bScore {
		bScore, bPoint = ins[2], 3
	} else if aScore > bScore && ins[2] < aScore {
		aScore, aPoint = ins[2], 3
	}

	wins := 3 - inSum
	if wins < aScore || wins < bScore {
		// (1,1,1) is one of the two closest vertices.
		c := aPoint
		if bScore < aScore {
			c = bPoint
		}
		if c&1 != 0 {
			ext0[0], ext1[0] = 2, 1
		}
		if c&2 != 0 {
			ext0[1], ext1[1] = 1, 1
			if c&1 != 0 {
				ext1[1] = 2
			} else {
				ext0[1] = 2
			}
		}
		if c&4 != 0 {
			ext0[2], ext1[2] = 1, 2
		}
		return ext0, ext1
	}

	c := aPoint & bPoint
	for i := 0; i < 3; i++ {
		if c&(1<<i) != 0 {
			ext0[i], ext1[i] = 1, 2
		}
	}
	return ext0, ext1
}

// octahedronExtras3 picks the outside vertices for a point between the two
// tetrahedra. The closest pair among (0,0,1)/(1,1,0), (0,1,0)/(1,0,1) and
// (1,0,0)/(0,1,1) decides which side of the cube they lie on.
func octahedronExtras3(ins [3]float64) (ext0, ext1 [3]int) {
	var (
		aScore, bScore float64
		aPoint, bPoint int
		aFar, bFar     bool
	)
	if p := ins[0] + ins[1]; p > 1 {
		aScore, aPoint, aFar = p-1, 3, true
	} else {
		aScore, aPoint, aFar = 1-p, 4, false
	}
	if p := ins[0] + ins[2]; p > 1 {
		bScore, bPoint, bFar = p-1, 5, true
	} else {
		bScore, bPoint, bFar = 1-p, 2, false
	}
	if p := ins[1] + ins[2]; p > 1 {
		score := p - 1
		if aScore <= bScore && aScore < score {
			aScore, aPoint, aFar = score, 6, true
		} else if aScore > bScore && bScore < score {
			bScore, bPoint, bFar = score, 6, true
		}
	} else {
		score := 1 - p
		if aScore <= bScore && aScore < score {
			aScore, aPoint, aFar = score, 1, false
		} else if aScore > bScore && bScore < score {
			bScore, bPoint, bFar = score, 1, false
		}
	}

	if aFar == bFar {
		if aFar {
			ext0 = [3]int{1, 1, 1}
			ext1 = doubledAxis(aPoint & bPoint)
		} else {
			ext1 = flippedAxis(aPoint | bPoint)
		}
		return ext0, ext1
	}

	far, near := aPoint, bPoint
	if !aFar {
		far, near = bPoint, aPoint
	}
	return flippedAxis(far), doubledAxis(near)
}

// flippedAxis returns the permutation of (1,1,-1) with -1 on the first axis
// missing from c.
func flippedAxis(c int) [3]int {
	switch {
	case c&1 == 0:
		return [3]int{-1, 1, 1}
	case c&2 == 0:
		return [3]int{1, -1, 1}
	default:
		return [3]int{1, 1, -1}
	}
}

// doubledAxis returns the permutation of (2,0,0) on the first axis in c.
func doubledAxis(c int) [3]int {
	switch {
	case c&1 != 0:
		return [3]int{2, 0, 0}
	case c&2 != 0:
		return [3]int{0, 2, 0}
	default:
		return [3]int{0, 0, 2}
	}
}

func openSimplexVertex3(s *Seed, base [3]int, d0 [3]float64, o [3]int) float64 {
	shift := float64(o[0]+o[1]+o[2]) * squish3
	var cell [3]int
	var d [3]float64
	attn := 2.0
	for i := 0; i < 3; i++ {
		cell[i] = base[i] + o[i]
		d[i] = d0[i] - float64(o[i]) - shift
		attn -= d[i] * d[i]
	}
	if attn <= 0 {
		return 0
	}
	g := &osGrad3[int(s.hash(cell[:]))%len(osGrad3)]
	attn *= attn
	return attn * attn * (g[0]*d[0] + g[1]*d[1] + g[2]*d[2])
}
