package optimize

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/fionahaas320/mlpack/internal/linalg"
)

// NesterovUpdate is stochastic gradient descent with Nesterov accelerated
// momentum. The step is taken from a lookahead point, which gives the
// velocity a chance to correct before it is applied:
//
//	iterate  = iterate + rho² * velocity - (1+rho) * stepSize * g
//	velocity = rho * velocity - stepSize * g
type NesterovUpdate struct {
	rho      float64
	velocity *mat.Dense
}

// NewNesterovUpdate creates a Nesterov momentum update policy. rho must
// lie in [0, 1).
func NewNesterovUpdate(rho float64) (*NesterovUpdate, error) {
	if rho < 0 || rho >= 1 {
		return nil, errors.WithStack(&ErrInvalidArgument{
			Name:    "rho",
			Value:   rho,
			Message: "outside allowed range [0, 1)",
		})
	}
	return &NesterovUpdate{rho: rho}, nil
}

// MustNewNesterovUpdate is like NewNesterovUpdate but panics on an invalid
// rho.
func MustNewNesterovUpdate(rho float64) *NesterovUpdate {
	u, err := NewNesterovUpdate(rho)
	if err != nil {
		panic(err)
	}
	return u
}

// Initialize allocates a zeroed velocity for an iterate of the given
// dimensions.
func (u *NesterovUpdate) Initialize(rows, cols int) {
	u.velocity = linalg.ZeroedDense(u.velocity, rows, cols)
}

// Update applies one Nesterov momentum step to the iterate in place.
func (u *NesterovUpdate) Update(iterate *mat.Dense, stepSize float64, gradient *mat.Dense) {
	it := iterate.RawMatrix().Data
	vel := u.velocity.RawMatrix().Data

	for i, g := range gradient.RawMatrix().Data {
		it[i] += u.rho*u.rho*vel[i] - (1+u.rho)*stepSize*g
		vel[i] = u.rho*vel[i] - stepSize*g
	}
}

// Rho returns the momentum factor.
func (u *NesterovUpdate) Rho() float64 { return u.rho }

// SetRho sets the momentum factor; must lie in [0, 1).
func (u *NesterovUpdate) SetRho(rho float64) { u.rho = rho }
