// Copyright 2026 The mlpack-go Authors. All rights reserved.
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package optimize provides first-order stochastic optimizers for
// decomposable objective functions.
//
// # Overview
//
// This package contains:
//   - Adam, AdaMax: adaptive-moment optimizers with the full
//     hyperparameter surface of the underlying driver
//   - SGD: the generic stochastic-descent driver, usable with any
//     UpdatePolicy
//   - AdamUpdate, AdaMaxUpdate, VanillaUpdate, MomentumUpdate,
//     NesterovUpdate: pluggable per-step update rules
//
// A decomposable objective is a function expressible as a sum over many
// independently evaluable terms, such as a per-sample loss. Callers
// implement DecomposableFunction and hand the driver a mutable starting
// point; Optimize mutates it in place and returns the final objective
// value.
//
// # Basic Usage
//
//	import (
//	    "gonum.org/v1/gonum/mat"
//
//	    "github.com/fionahaas320/mlpack/optimize"
//	)
//
//	func main() {
//	    f := newLoss(dataset) // implements optimize.DecomposableFunction
//
//	    adam, err := optimize.NewAdam(f, optimize.AdamConfig{
//	        StepSize: 0.001,
//	        Beta1:    0.9,
//	        Beta2:    0.999,
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    adam.SetMaxIterations(10 * f.NumFunctions()) // ten passes
//
//	    iterate := mat.NewDense(1, dims, nil)
//	    objective, err := adam.Optimize(iterate)
//	}
//
// # Custom update policies
//
// The driver accepts any UpdatePolicy, so a custom rule plugs in without
// touching the loop:
//
//	sgd := optimize.NewSGD(f, optimize.MustNewMomentumUpdate(0.9))
//	sgd.SetStepSize(0.01)
//	objective, err := sgd.Optimize(iterate)
//
// # Determinism
//
// With shuffling disabled the term-visitation order is linear and two runs
// from the same starting point produce bit-identical iterates. With
// shuffling enabled the permutation RNG is seeded deterministically;
// SetSeed reseeds it between runs.
//
// Optimization is single-threaded and synchronous. One optimizer instance
// must not be used for concurrent Optimize calls; independent instances
// may run concurrently on independent iterates.
package optimize
