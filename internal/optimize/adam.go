package optimize

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/fionahaas320/mlpack/internal/linalg"
)

// Default hyperparameters, as suggested in "Adam: A Method for Stochastic
// Optimization" (Kingma & Ba, 2014).
const (
	DefaultStepSize      = 0.001
	DefaultBeta1         = 0.9
	DefaultBeta2         = 0.999
	DefaultEpsilon       = 1e-8
	DefaultMaxIterations = 100000
	DefaultTolerance     = 1e-5
)

// AdamUpdate implements the Adam (Adaptive Moment Estimation) update rule.
//
// Adam keeps exponentially decayed estimates of the first and second
// moments of the gradient and corrects their zero-initialization bias:
//
//	m = beta1 * m + (1-beta1) * g
//	v = beta2 * v + (1-beta2) * g²
//	mHat = m / (1 - beta1^t)
//	vHat = v / (1 - beta2^t)
//	iterate = iterate - stepSize * mHat / (sqrt(vHat) + eps)
//
// Every operation is element-wise, so each coordinate of the iterate
// evolves independently of the others.
type AdamUpdate struct {
	beta1 float64
	beta2 float64
	eps   float64

	// Moment estimates, allocated by Initialize with the iterate's
	// dimensions. t counts update steps since the last Initialize.
	m *mat.Dense
	v *mat.Dense
	t int
}

// NewAdamUpdate creates an Adam update policy. beta1 and beta2 must lie in
// [0, 1) and eps must be positive.
func NewAdamUpdate(beta1, beta2, eps float64) (*AdamUpdate, error) {
	if beta1 < 0 || beta1 >= 1 {
		return nil, errors.WithStack(&ErrInvalidArgument{
			Name:    "beta1",
			Value:   beta1,
			Message: "outside allowed range [0, 1)",
		})
	}
	if beta2 < 0 || beta2 >= 1 {
		return nil, errors.WithStack(&ErrInvalidArgument{
			Name:    "beta2",
			Value:   beta2,
			Message: "outside allowed range [0, 1)",
		})
	}
	if eps <= 0 {
		return nil, errors.WithStack(&ErrInvalidArgument{
			Name:    "eps",
			Value:   eps,
			Message: "outside allowed range (0, Inf)",
		})
	}
	return &AdamUpdate{beta1: beta1, beta2: beta2, eps: eps}, nil
}

// MustNewAdamUpdate is like NewAdamUpdate but panics on invalid
// hyperparameters.
func MustNewAdamUpdate(beta1, beta2, eps float64) *AdamUpdate {
	u, err := NewAdamUpdate(beta1, beta2, eps)
	if err != nil {
		panic(err)
	}
	return u
}

// Initialize allocates zeroed moment estimates for an iterate of the given
// dimensions and resets the step counter.
func (u *AdamUpdate) Initialize(rows, cols int) {
	u.m = linalg.ZeroedDense(u.m, rows, cols)
	u.v = linalg.ZeroedDense(u.v, rows, cols)
	u.t = 0
}

// Update applies one Adam step to the iterate in place.
//
// At t=1 the bias-correction denominators are (1-beta1) and (1-beta2),
// strictly positive by the hyperparameter invariant, and eps keeps the
// final division away from zero even when vHat underflows.
func (u *AdamUpdate) Update(iterate *mat.Dense, stepSize float64, gradient *mat.Dense) {
	u.t++
	biasCorrection1 := 1 - math.Pow(u.beta1, float64(u.t))
	biasCorrection2 := 1 - math.Pow(u.beta2, float64(u.t))

	it := iterate.RawMatrix().Data
	m := u.m.RawMatrix().Data
	v := u.v.RawMatrix().Data

	for i, g := range gradient.RawMatrix().Data {
		m[i] = u.beta1*m[i] + (1-u.beta1)*g
		v[i] = u.beta2*v[i] + (1-u.beta2)*g*g

		mHat := m[i] / biasCorrection1
		vHat := v[i] / biasCorrection2

		it[i] -= stepSize * mHat / (math.Sqrt(vHat) + u.eps)
	}
}

// Beta1 returns the first-moment decay rate.
func (u *AdamUpdate) Beta1() float64 { return u.beta1 }

// SetBeta1 sets the first-moment decay rate; must lie in [0, 1).
func (u *AdamUpdate) SetBeta1(beta1 float64) { u.beta1 = beta1 }

// Beta2 returns the second-moment decay rate.
func (u *AdamUpdate) Beta2() float64 { return u.beta2 }

// SetBeta2 sets the second-moment decay rate; must lie in [0, 1).
func (u *AdamUpdate) SetBeta2(beta2 float64) { u.beta2 = beta2 }

// Epsilon returns the denominator floor.
func (u *AdamUpdate) Epsilon() float64 { return u.eps }

// SetEpsilon sets the denominator floor; must be positive.
func (u *AdamUpdate) SetEpsilon(eps float64) { u.eps = eps }

// Timestep returns the number of updates applied since Initialize.
func (u *AdamUpdate) Timestep() int { return u.t }

// FirstMoment returns the current first-moment estimate. The returned
// matrix is the policy's own state; callers must not modify it.
func (u *AdamUpdate) FirstMoment() *mat.Dense { return u.m }

// SecondMoment returns the current second-moment estimate. The returned
// matrix is the policy's own state; callers must not modify it.
func (u *AdamUpdate) SecondMoment() *mat.Dense { return u.v }

// Adam optimizes a decomposable function with stochastic gradient descent
// under the AdamUpdate policy. It is a thin wrapper over SGD exposing the
// full hyperparameter surface in one place.
//
// Example:
//
//	adam, err := optimize.NewAdam(f, optimize.AdamConfig{StepSize: 0.01})
//	if err != nil {
//	    return err
//	}
//	adam.SetMaxIterations(20 * f.NumFunctions())
//	objective, err := adam.Optimize(iterate)
type Adam struct {
	update *AdamUpdate
	sgd    *SGD
}

// AdamConfig holds the scalar hyperparameters of the Adam optimizer.
// Zero-valued fields receive defaults: StepSize=0.001, Beta1=0.9,
// Beta2=0.999, Epsilon=1e-8. The iteration budget, tolerance, shuffling
// and shuffle seed are configured on the optimizer via setters.
type AdamConfig struct {
	StepSize float64 // Step size for each iteration
	Beta1    float64 // First-moment decay rate, in [0, 1)
	Beta2    float64 // Second-moment decay rate, in [0, 1)
	Epsilon  float64 // Denominator floor, positive
}

func (c *AdamConfig) applyDefaults() {
	if c.StepSize == 0 {
		c.StepSize = DefaultStepSize
	}
	if c.Beta1 == 0 {
		c.Beta1 = DefaultBeta1
	}
	if c.Beta2 == 0 {
		c.Beta2 = DefaultBeta2
	}
	if c.Epsilon == 0 {
		c.Epsilon = DefaultEpsilon
	}
}

// NewAdam creates an Adam optimizer for the given decomposable function.
// The function reference must outlive the optimizer; it is never copied.
func NewAdam(function DecomposableFunction, config AdamConfig) (*Adam, error) {
	config.applyDefaults()
	update, err := NewAdamUpdate(config.Beta1, config.Beta2, config.Epsilon)
	if err != nil {
		return nil, err
	}
	sgd := NewSGD(function, update)
	sgd.SetStepSize(config.StepSize)
	return &Adam{update: update, sgd: sgd}, nil
}

// Optimize minimizes the function starting from iterate, mutating it in
// place, and returns the objective value at the final point.
func (a *Adam) Optimize(iterate *mat.Dense) (float64, error) { return a.sgd.Optimize(iterate) }

// Function returns the objective being optimized.
func (a *Adam) Function() DecomposableFunction { return a.sgd.Function() }

// StepSize returns the step size.
func (a *Adam) StepSize() float64 { return a.sgd.StepSize() }

// SetStepSize sets the step size.
func (a *Adam) SetStepSize(stepSize float64) { a.sgd.SetStepSize(stepSize) }

// Beta1 returns the first-moment decay rate.
func (a *Adam) Beta1() float64 { return a.update.Beta1() }

// SetBeta1 sets the first-moment decay rate; must lie in [0, 1).
func (a *Adam) SetBeta1(beta1 float64) { a.update.SetBeta1(beta1) }

// Beta2 returns the second-moment decay rate.
func (a *Adam) Beta2() float64 { return a.update.Beta2() }

// SetBeta2 sets the second-moment decay rate; must lie in [0, 1).
func (a *Adam) SetBeta2(beta2 float64) { a.update.SetBeta2(beta2) }

// Epsilon returns the denominator floor.
func (a *Adam) Epsilon() float64 { return a.update.Epsilon() }

// SetEpsilon sets the denominator floor; must be positive.
func (a *Adam) SetEpsilon(eps float64) { a.update.SetEpsilon(eps) }

// MaxIterations returns the iteration budget (0 means unbounded).
func (a *Adam) MaxIterations() int { return a.sgd.MaxIterations() }

// SetMaxIterations sets the iteration budget (0 means unbounded).
func (a *Adam) SetMaxIterations(maxIterations int) { a.sgd.SetMaxIterations(maxIterations) }

// Tolerance returns the convergence tolerance.
func (a *Adam) Tolerance() float64 { return a.sgd.Tolerance() }

// SetTolerance sets the convergence tolerance.
func (a *Adam) SetTolerance(tolerance float64) { a.sgd.SetTolerance(tolerance) }

// Shuffle reports whether the term-visitation order is shuffled each pass.
func (a *Adam) Shuffle() bool { return a.sgd.Shuffle() }

// SetShuffle sets whether the term-visitation order is shuffled each pass.
func (a *Adam) SetShuffle(shuffle bool) { a.sgd.SetShuffle(shuffle) }

// SetSeed reseeds the shuffle RNG.
func (a *Adam) SetSeed(seed int64) { a.sgd.SetSeed(seed) }
