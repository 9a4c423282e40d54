// Copyright 2026 The mlpack-go Authors. All rights reserved.
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package optimize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/fionahaas320/mlpack/optimize"
)

// ridge is f(x) = sum_i (x - c_i)^2 for scalar centers c_i.
type ridge struct {
	centers []float64
}

func (r ridge) NumFunctions() int { return len(r.centers) }

func (r ridge) Evaluate(iterate *mat.Dense, i int) float64 {
	d := iterate.At(0, 0) - r.centers[i]
	return d * d
}

func (r ridge) Gradient(iterate *mat.Dense, i int, gradient *mat.Dense) {
	gradient.Set(0, 0, 2*(iterate.At(0, 0)-r.centers[i]))
}

func TestPublicSurface(t *testing.T) {
	f := ridge{centers: []float64{1, 2, 3}}

	t.Run("Adam", func(t *testing.T) {
		adam, err := optimize.NewAdam(f, optimize.AdamConfig{StepSize: 0.05})
		require.NoError(t, err)
		adam.SetMaxIterations(300 * f.NumFunctions())

		iterate := mat.NewDense(1, 1, []float64{-5})
		_, err = adam.Optimize(iterate)
		require.NoError(t, err)
		assert.InDelta(t, 2.0, iterate.At(0, 0), 0.2)
	})

	t.Run("AdaMax", func(t *testing.T) {
		adamax, err := optimize.NewAdaMax(f, optimize.AdaMaxConfig{StepSize: 0.05})
		require.NoError(t, err)
		adamax.SetMaxIterations(300 * f.NumFunctions())

		iterate := mat.NewDense(1, 1, []float64{-5})
		_, err = adamax.Optimize(iterate)
		require.NoError(t, err)
		assert.InDelta(t, 2.0, iterate.At(0, 0), 0.2)
	})

	t.Run("SGD with custom policy", func(t *testing.T) {
		sgd := optimize.NewSGD(f, optimize.MustNewMomentumUpdate(0.5))
		sgd.SetStepSize(0.02)
		sgd.SetMaxIterations(200 * f.NumFunctions())

		iterate := mat.NewDense(1, 1, []float64{-5})
		_, err := sgd.Optimize(iterate)
		require.NoError(t, err)
		assert.InDelta(t, 2.0, iterate.At(0, 0), 0.2)
	})
}
