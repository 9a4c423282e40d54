package optimize

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// VanillaUpdate is the plain stochastic gradient descent step:
//
//	iterate = iterate - stepSize * g
//
// It keeps no state.
type VanillaUpdate struct{}

// NewVanillaUpdate creates a vanilla gradient descent update policy.
func NewVanillaUpdate() *VanillaUpdate { return &VanillaUpdate{} }

// Initialize is a no-op; the vanilla step keeps no state.
func (*VanillaUpdate) Initialize(rows, cols int) {}

// Update applies one gradient descent step to the iterate in place.
func (*VanillaUpdate) Update(iterate *mat.Dense, stepSize float64, gradient *mat.Dense) {
	floats.AddScaled(iterate.RawMatrix().Data, -stepSize, gradient.RawMatrix().Data)
}
