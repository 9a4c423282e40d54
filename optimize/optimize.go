// Copyright 2026 The mlpack-go Authors. All rights reserved.
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package optimize

import (
	"github.com/fionahaas320/mlpack/internal/optimize"
)

// Default hyperparameters shared by the optimizers in this package.
const (
	DefaultStepSize      = optimize.DefaultStepSize
	DefaultBeta1         = optimize.DefaultBeta1
	DefaultBeta2         = optimize.DefaultBeta2
	DefaultEpsilon       = optimize.DefaultEpsilon
	DefaultMaxIterations = optimize.DefaultMaxIterations
	DefaultTolerance     = optimize.DefaultTolerance
)

// DecomposableFunction is the objective contract consumed by the driver:
// a number of terms, per-term evaluation, and per-term gradients.
type DecomposableFunction = optimize.DecomposableFunction

// UpdatePolicy is a pluggable per-step update rule applied by the driver.
type UpdatePolicy = optimize.UpdatePolicy

// ErrInvalidArgument is returned when a hyperparameter or input is outside
// its allowed range.
type ErrInvalidArgument = optimize.ErrInvalidArgument

// SGD (generic stochastic descent driver)

// SGD is the generic stochastic gradient descent driver, combinable with
// any update policy.
type SGD = optimize.SGD

// NewSGD creates a driver for the given function and update policy with
// default hyperparameters.
func NewSGD(function DecomposableFunction, updatePolicy UpdatePolicy) *SGD {
	return optimize.NewSGD(function, updatePolicy)
}

// Adam (Adaptive Moment Estimation)

// Adam optimizes a decomposable function using adaptive estimates of the
// first and second gradient moments.
type Adam = optimize.Adam

// AdamConfig contains the scalar hyperparameters for Adam.
type AdamConfig = optimize.AdamConfig

// NewAdam creates a new Adam optimizer.
//
// Example:
//
//	adam, err := optimize.NewAdam(f, optimize.AdamConfig{
//	    StepSize: 0.001,
//	    Beta1:    0.9,
//	    Beta2:    0.999,
//	    Epsilon:  1e-8,
//	})
func NewAdam(function DecomposableFunction, config AdamConfig) (*Adam, error) {
	return optimize.NewAdam(function, config)
}

// AdamUpdate is the Adam update rule, usable directly with NewSGD.
type AdamUpdate = optimize.AdamUpdate

// NewAdamUpdate creates an Adam update policy.
func NewAdamUpdate(beta1, beta2, eps float64) (*AdamUpdate, error) {
	return optimize.NewAdamUpdate(beta1, beta2, eps)
}

// MustNewAdamUpdate is like NewAdamUpdate but panics on invalid
// hyperparameters.
func MustNewAdamUpdate(beta1, beta2, eps float64) *AdamUpdate {
	return optimize.MustNewAdamUpdate(beta1, beta2, eps)
}

// AdaMax (infinity-norm variant of Adam)

// AdaMax optimizes a decomposable function using Adam's first-moment
// recurrence with an exponentially weighted infinity norm in place of the
// second moment.
type AdaMax = optimize.AdaMax

// AdaMaxConfig contains the scalar hyperparameters for AdaMax.
type AdaMaxConfig = optimize.AdaMaxConfig

// NewAdaMax creates a new AdaMax optimizer.
func NewAdaMax(function DecomposableFunction, config AdaMaxConfig) (*AdaMax, error) {
	return optimize.NewAdaMax(function, config)
}

// AdaMaxUpdate is the AdaMax update rule, usable directly with NewSGD.
type AdaMaxUpdate = optimize.AdaMaxUpdate

// NewAdaMaxUpdate creates an AdaMax update policy.
func NewAdaMaxUpdate(beta1, beta2, eps float64) (*AdaMaxUpdate, error) {
	return optimize.NewAdaMaxUpdate(beta1, beta2, eps)
}

// MustNewAdaMaxUpdate is like NewAdaMaxUpdate but panics on invalid
// hyperparameters.
func MustNewAdaMaxUpdate(beta1, beta2, eps float64) *AdaMaxUpdate {
	return optimize.MustNewAdaMaxUpdate(beta1, beta2, eps)
}

// Classic update rules

// VanillaUpdate is the plain gradient descent step.
type VanillaUpdate = optimize.VanillaUpdate

// NewVanillaUpdate creates a vanilla gradient descent update policy.
func NewVanillaUpdate() *VanillaUpdate { return optimize.NewVanillaUpdate() }

// MomentumUpdate is gradient descent with classical momentum.
type MomentumUpdate = optimize.MomentumUpdate

// NewMomentumUpdate creates a momentum update policy; momentum must lie in
// [0, 1).
func NewMomentumUpdate(momentum float64) (*MomentumUpdate, error) {
	return optimize.NewMomentumUpdate(momentum)
}

// MustNewMomentumUpdate is like NewMomentumUpdate but panics on an invalid
// momentum.
func MustNewMomentumUpdate(momentum float64) *MomentumUpdate {
	return optimize.MustNewMomentumUpdate(momentum)
}

// NesterovUpdate is gradient descent with Nesterov accelerated momentum.
type NesterovUpdate = optimize.NesterovUpdate

// NewNesterovUpdate creates a Nesterov momentum update policy; rho must
// lie in [0, 1).
func NewNesterovUpdate(rho float64) (*NesterovUpdate, error) {
	return optimize.NewNesterovUpdate(rho)
}

// MustNewNesterovUpdate is like NewNesterovUpdate but panics on an invalid
// rho.
func MustNewNesterovUpdate(rho float64) *NesterovUpdate {
	return optimize.MustNewNesterovUpdate(rho)
}
