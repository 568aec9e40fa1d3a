package noise

import "math"

// Output scale per dimension; brings the radial kernel sum toward [-1, 1].
var perlinScale = [5]float64{2: 3.1604938271604937, 3: 3.8890872965260113, 4: 4.424369240215691}

// perlin evaluates gradient noise with a radial falloff over the 2^N lattice
// corners around p. len(p) must be 2, 3 or 4.
func perlin(s *Seed, p []float64) float64 {
	n := len(p)
	var base [4]int
	var frac [4]float64
	for i := 0; i < n; i++ {
		f := math.Floor(p[i])
		base[i] = int(f)
		frac[i] = p[i] - f
	}

	sum := 0.0
	for corner := 0; corner < 1<<n; corner++ {
		var cell [4]int
		var d [4]float64
		dist2 := 0.0
		for i := 0; i < n; i++ {
			bit := (corner >> i) & 1
			cell[i] = base[i] + bit
			d[i] = frac[i] - float64(bit)
			dist2 += d[i] * d[i]
		}
		attn := 1 - dist2
		if attn <= 0 {
			continue
		}
		sum += falloff(attn, s.hash(cell[:n]), d[:n])
	}
	return sum * perlinScale[n]
}
