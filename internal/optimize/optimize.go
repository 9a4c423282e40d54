// Package optimize implements first-order stochastic optimization of
// decomposable objective functions.
//
// This package provides:
//   - SGD: generic stochastic gradient descent driver with per-pass shuffling
//   - UpdatePolicy interface: pluggable per-step update rules
//   - AdamUpdate, AdaMaxUpdate: adaptive-moment update policies
//   - VanillaUpdate, MomentumUpdate, NesterovUpdate: classic SGD steps
//   - Adam, AdaMax: convenience optimizers wrapping SGD with the matching
//     policy and exposing the full hyperparameter surface
//
// A decomposable objective is one expressible as a sum over independently
// evaluable terms (for example, one term per training sample). The driver
// visits one term per iteration, asks the objective for that term's
// gradient, and delegates the step to the update policy.
//
// Example usage:
//
//	f := myLoss{}                                // implements DecomposableFunction
//	adam, err := optimize.NewAdam(f, optimize.AdamConfig{})
//	if err != nil {
//	    return err
//	}
//	iterate := mat.NewDense(1, dims, nil)        // starting point, mutated in place
//	objective, err := adam.Optimize(iterate)
package optimize

import "gonum.org/v1/gonum/mat"

// DecomposableFunction is the objective contract consumed by the SGD
// driver. The objective must decompose into NumFunctions independently
// evaluable and differentiable terms; the driver never evaluates or
// differentiates anything itself.
type DecomposableFunction interface {
	// NumFunctions returns the number of terms the objective decomposes
	// into, e.g. the number of points in the dataset.
	NumFunctions() int

	// Evaluate returns the objective value of term i at the given iterate.
	Evaluate(iterate *mat.Dense, i int) float64

	// Gradient writes the gradient of term i at the given iterate into
	// gradient, which has the same dimensions as the iterate.
	Gradient(iterate *mat.Dense, i int, gradient *mat.Dense)
}

// UpdatePolicy is a per-step update rule applied by the SGD driver. A
// policy owns whatever auxiliary state its recurrence needs (moment
// estimates, velocities) and adjusts the iterate in place, one gradient at
// a time. Policies hold no reference to the objective function and know
// nothing about iteration control.
//
// A single policy instance is not safe for concurrent use; its state is
// mutated without synchronization on every Update.
type UpdatePolicy interface {
	// Initialize allocates or zeroes the policy state for an iterate of
	// the given dimensions. The driver calls it once before the first
	// step and again whenever the iterate's shape changes.
	Initialize(rows, cols int)

	// Update applies one step to the iterate in place, given the step
	// size and the gradient of the term visited this iteration.
	Update(iterate *mat.Dense, stepSize float64, gradient *mat.Dense)
}
