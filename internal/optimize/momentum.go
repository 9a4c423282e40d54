package optimize

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/fionahaas320/mlpack/internal/linalg"
)

// MomentumUpdate is stochastic gradient descent with classical momentum:
//
//	velocity = momentum * velocity + g
//	iterate  = iterate - stepSize * velocity
//
// Momentum accelerates descent along persistent gradient directions and
// dampens oscillations.
type MomentumUpdate struct {
	momentum float64
	velocity *mat.Dense
}

// NewMomentumUpdate creates a momentum update policy. momentum must lie in
// [0, 1).
func NewMomentumUpdate(momentum float64) (*MomentumUpdate, error) {
	if momentum < 0 || momentum >= 1 {
		return nil, errors.WithStack(&ErrInvalidArgument{
			Name:    "momentum",
			Value:   momentum,
			Message: "outside allowed range [0, 1)",
		})
	}
	return &MomentumUpdate{momentum: momentum}, nil
}

// MustNewMomentumUpdate is like NewMomentumUpdate but panics on an invalid
// momentum.
func MustNewMomentumUpdate(momentum float64) *MomentumUpdate {
	u, err := NewMomentumUpdate(momentum)
	if err != nil {
		panic(err)
	}
	return u
}

// Initialize allocates a zeroed velocity for an iterate of the given
// dimensions.
func (u *MomentumUpdate) Initialize(rows, cols int) {
	u.velocity = linalg.ZeroedDense(u.velocity, rows, cols)
}

// Update applies one momentum step to the iterate in place.
func (u *MomentumUpdate) Update(iterate *mat.Dense, stepSize float64, gradient *mat.Dense) {
	it := iterate.RawMatrix().Data
	vel := u.velocity.RawMatrix().Data

	for i, g := range gradient.RawMatrix().Data {
		vel[i] = u.momentum*vel[i] + g
		it[i] -= stepSize * vel[i]
	}
}

// Momentum returns the momentum factor.
func (u *MomentumUpdate) Momentum() float64 { return u.momentum }

// SetMomentum sets the momentum factor; must lie in [0, 1).
func (u *MomentumUpdate) SetMomentum(momentum float64) { u.momentum = momentum }
