// Package noise owns the pure noise evaluation service.
//
// Ownership boundary:
// - seed value and permutation tables
// - Perlin, OpenSimplex and cell noise in 2, 3 and 4 dimensions
// - algorithm selectors and the shared fixed-arity evaluation routine
//
// Every function is a pure function of (seed, coordinate). Nothing in this
// package holds mutable state.
package noise
