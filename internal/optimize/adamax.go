package optimize

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/fionahaas320/mlpack/internal/linalg"
)

// AdaMaxUpdate implements the AdaMax update rule, the infinity-norm
// variant of Adam from section 7 of the Adam paper.
//
// The first-moment recurrence is identical to Adam's, but the second
// moment is replaced by an exponentially weighted infinity norm:
//
//	m = beta1 * m + (1-beta1) * g
//	v = max(beta2 * v, |g|)
//	iterate = iterate - (stepSize / (1 - beta1^t)) * m / (v + eps)
//
// No bias correction is applied to v. Bounding the effective step by the
// largest recently observed gradient magnitude per coordinate is more
// robust than the decayed RMS when gradients are sparse or heavy-tailed.
type AdaMaxUpdate struct {
	beta1 float64
	beta2 float64
	eps   float64

	m *mat.Dense
	v *mat.Dense
	t int
}

// NewAdaMaxUpdate creates an AdaMax update policy. beta1 and beta2 must
// lie in [0, 1) and eps must be positive.
func NewAdaMaxUpdate(beta1, beta2, eps float64) (*AdaMaxUpdate, error) {
	// AdaMax shares Adam's hyperparameter invariants.
	adam, err := NewAdamUpdate(beta1, beta2, eps)
	if err != nil {
		return nil, err
	}
	return &AdaMaxUpdate{beta1: adam.beta1, beta2: adam.beta2, eps: adam.eps}, nil
}

// MustNewAdaMaxUpdate is like NewAdaMaxUpdate but panics on invalid
// hyperparameters.
func MustNewAdaMaxUpdate(beta1, beta2, eps float64) *AdaMaxUpdate {
	u, err := NewAdaMaxUpdate(beta1, beta2, eps)
	if err != nil {
		panic(err)
	}
	return u
}

// Initialize allocates a zeroed first moment and infinity-norm estimate
// for an iterate of the given dimensions and resets the step counter.
func (u *AdaMaxUpdate) Initialize(rows, cols int) {
	u.m = linalg.ZeroedDense(u.m, rows, cols)
	u.v = linalg.ZeroedDense(u.v, rows, cols)
	u.t = 0
}

// Update applies one AdaMax step to the iterate in place.
func (u *AdaMaxUpdate) Update(iterate *mat.Dense, stepSize float64, gradient *mat.Dense) {
	u.t++
	step := stepSize / (1 - math.Pow(u.beta1, float64(u.t)))

	it := iterate.RawMatrix().Data
	m := u.m.RawMatrix().Data
	v := u.v.RawMatrix().Data

	for i, g := range gradient.RawMatrix().Data {
		m[i] = u.beta1*m[i] + (1-u.beta1)*g
		v[i] = math.Max(u.beta2*v[i], math.Abs(g))

		it[i] -= step * m[i] / (v[i] + u.eps)
	}
}

// Beta1 returns the first-moment decay rate.
func (u *AdaMaxUpdate) Beta1() float64 { return u.beta1 }

// SetBeta1 sets the first-moment decay rate; must lie in [0, 1).
func (u *AdaMaxUpdate) SetBeta1(beta1 float64) { u.beta1 = beta1 }

// Beta2 returns the infinity-norm decay rate.
func (u *AdaMaxUpdate) Beta2() float64 { return u.beta2 }

// SetBeta2 sets the infinity-norm decay rate; must lie in [0, 1).
func (u *AdaMaxUpdate) SetBeta2(beta2 float64) { u.beta2 = beta2 }

// Epsilon returns the denominator floor.
func (u *AdaMaxUpdate) Epsilon() float64 { return u.eps }

// SetEpsilon sets the denominator floor; must be positive.
func (u *AdaMaxUpdate) SetEpsilon(eps float64) { u.eps = eps }

// Timestep returns the number of updates applied since Initialize.
func (u *AdaMaxUpdate) Timestep() int { return u.t }

// FirstMoment returns the current first-moment estimate. The returned
// matrix is the policy's own state; callers must not modify it.
func (u *AdaMaxUpdate) FirstMoment() *mat.Dense { return u.m }

// InfinityNorm returns the current exponentially weighted infinity-norm
// estimate. The returned matrix is the policy's own state; callers must
// not modify it.
func (u *AdaMaxUpdate) InfinityNorm() *mat.Dense { return u.v }

// AdaMax optimizes a decomposable function with stochastic gradient
// descent under the AdaMaxUpdate policy.
type AdaMax struct {
	update *AdaMaxUpdate
	sgd    *SGD
}

// AdaMaxConfig holds the scalar hyperparameters of the AdaMax optimizer.
// Zero-valued fields receive the same defaults as AdamConfig.
type AdaMaxConfig struct {
	StepSize float64 // Step size for each iteration
	Beta1    float64 // First-moment decay rate, in [0, 1)
	Beta2    float64 // Infinity-norm decay rate, in [0, 1)
	Epsilon  float64 // Denominator floor, positive
}

// NewAdaMax creates an AdaMax optimizer for the given decomposable
// function. The function reference must outlive the optimizer; it is
// never copied.
func NewAdaMax(function DecomposableFunction, config AdaMaxConfig) (*AdaMax, error) {
	adamConfig := AdamConfig(config)
	adamConfig.applyDefaults()
	update, err := NewAdaMaxUpdate(adamConfig.Beta1, adamConfig.Beta2, adamConfig.Epsilon)
	if err != nil {
		return nil, err
	}
	sgd := NewSGD(function, update)
	sgd.SetStepSize(adamConfig.StepSize)
	return &AdaMax{update: update, sgd: sgd}, nil
}

// Optimize minimizes the function starting from iterate, mutating it in
// place, and returns the objective value at the final point.
func (a *AdaMax) Optimize(iterate *mat.Dense) (float64, error) { return a.sgd.Optimize(iterate) }

// Function returns the objective being optimized.
func (a *AdaMax) Function() DecomposableFunction { return a.sgd.Function() }

// StepSize returns the step size.
func (a *AdaMax) StepSize() float64 { return a.sgd.StepSize() }

// SetStepSize sets the step size.
func (a *AdaMax) SetStepSize(stepSize float64) { a.sgd.SetStepSize(stepSize) }

// Beta1 returns the first-moment decay rate.
func (a *AdaMax) Beta1() float64 { return a.update.Beta1() }

// SetBeta1 sets the first-moment decay rate; must lie in [0, 1).
func (a *AdaMax) SetBeta1(beta1 float64) { a.update.SetBeta1(beta1) }

// Beta2 returns the infinity-norm decay rate.
func (a *AdaMax) Beta2() float64 { return a.update.Beta2() }

// SetBeta2 sets the infinity-norm decay rate; must lie in [0, 1).
func (a *AdaMax) SetBeta2(beta2 float64) { a.update.SetBeta2(beta2) }

// Epsilon returns the denominator floor.
func (a *AdaMax) Epsilon() float64 { return a.update.Epsilon() }

// SetEpsilon sets the denominator floor; must be positive.
func (a *AdaMax) SetEpsilon(eps float64) { a.update.SetEpsilon(eps) }

// MaxIterations returns the iteration budget (0 means unbounded).
func (a *AdaMax) MaxIterations() int { return a.sgd.MaxIterations() }

// SetMaxIterations sets the iteration budget (0 means unbounded).
func (a *AdaMax) SetMaxIterations(maxIterations int) { a.sgd.SetMaxIterations(maxIterations) }

// Tolerance returns the convergence tolerance.
func (a *AdaMax) Tolerance() float64 { return a.sgd.Tolerance() }

// SetTolerance sets the convergence tolerance.
func (a *AdaMax) SetTolerance(tolerance float64) { a.sgd.SetTolerance(tolerance) }

// Shuffle reports whether the term-visitation order is shuffled each pass.
func (a *AdaMax) Shuffle() bool { return a.sgd.Shuffle() }

// SetShuffle sets whether the term-visitation order is shuffled each pass.
func (a *AdaMax) SetShuffle(shuffle bool) { a.sgd.SetShuffle(shuffle) }

// SetSeed reseeds the shuffle RNG.
func (a *AdaMax) SetSeed(seed int64) { a.sgd.SetSeed(seed) }
