package optimize

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

// defaultSeed makes shuffled runs reproducible out of the box; callers
// that want run-to-run variation reseed via SetSeed.
const defaultSeed int64 = 42

// SGD is the generic stochastic gradient descent driver. It owns the
// iteration loop: each iteration it selects one term of the decomposable
// objective, evaluates that term's gradient, and delegates the step to its
// update policy. One iteration is one term visited, not one pass over the
// term set, so a budget of e full passes is e*NumFunctions() iterations.
//
// When shuffling is enabled the visitation order is re-permuted once at
// the start of every pass, so every term is still visited exactly once per
// pass. Convergence is checked at pass boundaries: when the absolute
// change of the running per-pass objective falls below the tolerance, the
// loop stops early.
//
// SGD runs synchronously on the calling goroutine. A single instance is
// not safe for concurrent Optimize calls because the update policy's state
// is mutated without synchronization; independent instances may run
// concurrently on independent iterates.
type SGD struct {
	function     DecomposableFunction
	updatePolicy UpdatePolicy

	stepSize      float64
	maxIterations int
	tolerance     float64
	shuffle       bool
	rng           *rand.Rand
}

// NewSGD creates a driver for the given function and update policy with
// the default hyperparameters: stepSize=0.001, maxIterations=100000,
// tolerance=1e-5, shuffle=true. The function reference must outlive the
// driver; it is never copied.
func NewSGD(function DecomposableFunction, updatePolicy UpdatePolicy) *SGD {
	return &SGD{
		function:      function,
		updatePolicy:  updatePolicy,
		stepSize:      DefaultStepSize,
		maxIterations: DefaultMaxIterations,
		tolerance:     DefaultTolerance,
		shuffle:       true,
		rng:           rand.New(rand.NewSource(defaultSeed)),
	}
}

// Optimize minimizes the function starting from iterate, mutating it in
// place, and returns the objective value at the final point, summed over
// the whole term set.
//
// It fails fast on invalid input: a nil or term-less function and an
// empty iterate are rejected before any work is done. Numerical
// degradation is not an error: a non-finite gradient propagates into the
// iterate unchecked, and a poorly chosen step size can diverge. The one
// internal safeguard is a pass-boundary check that stops the loop once the
// running objective is NaN or infinite; the corrupted objective value is
// returned as-is for the caller to inspect.
func (s *SGD) Optimize(iterate *mat.Dense) (float64, error) {
	if s.function == nil {
		return 0, errors.WithStack(&ErrInvalidArgument{
			Name:    "function",
			Value:   nil,
			Message: "no objective function to optimize",
		})
	}
	numFunctions := s.function.NumFunctions()
	if numFunctions <= 0 {
		return 0, errors.WithStack(&ErrInvalidArgument{
			Name:    "numFunctions",
			Value:   numFunctions,
			Message: "the objective must decompose into at least one term",
		})
	}
	if iterate == nil || iterate.IsEmpty() {
		return 0, errors.WithStack(&ErrInvalidArgument{
			Name:    "iterate",
			Value:   iterate,
			Message: "the starting point must be a non-empty matrix",
		})
	}

	rows, cols := iterate.Dims()
	s.updatePolicy.Initialize(rows, cols)

	// One gradient buffer is reused for every step; the objective writes
	// into it and the update policy consumes it before the next step.
	gradient := mat.NewDense(rows, cols, nil)

	order := make([]int, numFunctions)
	for i := range order {
		order[i] = i
	}
	if s.shuffle {
		s.rng.Shuffle(numFunctions, func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	}

	overallObjective := 0.0
	lastObjective := math.Inf(1)
	currentFunction := 0
	pass := 0

	for iteration := 1; s.maxIterations == 0 || iteration <= s.maxIterations; iteration++ {
		idx := order[currentFunction]

		s.function.Gradient(iterate, idx, gradient)
		s.updatePolicy.Update(iterate, s.stepSize, gradient)
		overallObjective += s.function.Evaluate(iterate, idx)

		currentFunction++
		if currentFunction < numFunctions {
			continue
		}

		// Pass boundary: every term has been visited exactly once since
		// the last reset.
		pass++
		log.WithFields(log.Fields{
			"pass":      pass,
			"iteration": iteration,
			"objective": overallObjective,
		}).Debug("sgd: pass complete")

		if math.IsNaN(overallObjective) || math.IsInf(overallObjective, 0) {
			log.Warnf("sgd: objective diverged to %v after %d iterations; terminating", overallObjective, iteration)
			return overallObjective, nil
		}
		if math.Abs(lastObjective-overallObjective) < s.tolerance {
			log.Infof("sgd: minimized within tolerance %g after %d iterations", s.tolerance, iteration)
			return overallObjective, nil
		}

		lastObjective = overallObjective
		overallObjective = 0
		currentFunction = 0
		if s.shuffle {
			s.rng.Shuffle(numFunctions, func(i, j int) {
				order[i], order[j] = order[j], order[i]
			})
		}
	}

	log.Infof("sgd: maximum iterations (%d) reached; terminating", s.maxIterations)

	// Calculate the final objective over the whole term set.
	finalObjective := 0.0
	for i := 0; i < numFunctions; i++ {
		finalObjective += s.function.Evaluate(iterate, i)
	}
	return finalObjective, nil
}

// Function returns the objective being optimized.
func (s *SGD) Function() DecomposableFunction { return s.function }

// UpdatePolicy returns the update policy applied each step.
func (s *SGD) UpdatePolicy() UpdatePolicy { return s.updatePolicy }

// StepSize returns the step size.
func (s *SGD) StepSize() float64 { return s.stepSize }

// SetStepSize sets the step size.
func (s *SGD) SetStepSize(stepSize float64) { s.stepSize = stepSize }

// MaxIterations returns the iteration budget (0 means unbounded).
func (s *SGD) MaxIterations() int { return s.maxIterations }

// SetMaxIterations sets the iteration budget. A value of 0 means
// unbounded: the loop then runs until the tolerance criterion or the
// divergence check fires.
func (s *SGD) SetMaxIterations(maxIterations int) { s.maxIterations = maxIterations }

// Tolerance returns the convergence tolerance.
func (s *SGD) Tolerance() float64 { return s.tolerance }

// SetTolerance sets the convergence tolerance. A negative value disables
// the pass-boundary convergence check.
func (s *SGD) SetTolerance(tolerance float64) { s.tolerance = tolerance }

// Shuffle reports whether the term-visitation order is shuffled each pass.
func (s *SGD) Shuffle() bool { return s.shuffle }

// SetShuffle sets whether the term-visitation order is randomly permuted
// at the start of every pass. When disabled, terms are visited in linear
// order and repeated runs are bit-for-bit identical.
func (s *SGD) SetShuffle(shuffle bool) { s.shuffle = shuffle }

// SetSeed reseeds the RNG that permutes the visitation order, making
// shuffled runs reproducible.
func (s *SGD) SetSeed(seed int64) { s.rng = rand.New(rand.NewSource(seed)) }
