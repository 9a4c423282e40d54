package optimize_test

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/fionahaas320/mlpack/internal/optimize"
)

// quadraticFunction is a convex decomposable objective with one term per
// center: f_i(x) = sum_j (x_j - c_i_j)^2. The aggregate minimizer is the
// mean of the centers.
type quadraticFunction struct {
	centers []*mat.Dense
}

func newQuadraticFunction(centers ...[]float64) *quadraticFunction {
	f := &quadraticFunction{}
	for _, c := range centers {
		f.centers = append(f.centers, mat.NewDense(1, len(c), c))
	}
	return f
}

func (f *quadraticFunction) NumFunctions() int { return len(f.centers) }

func (f *quadraticFunction) Evaluate(iterate *mat.Dense, i int) float64 {
	sum := 0.0
	c := f.centers[i]
	for j, x := range iterate.RawMatrix().Data {
		d := x - c.RawMatrix().Data[j]
		sum += d * d
	}
	return sum
}

func (f *quadraticFunction) Gradient(iterate *mat.Dense, i int, gradient *mat.Dense) {
	c := f.centers[i]
	for j, x := range iterate.RawMatrix().Data {
		gradient.RawMatrix().Data[j] = 2 * (x - c.RawMatrix().Data[j])
	}
}

// minimizer returns the mean of the centers.
func (f *quadraticFunction) minimizer() *mat.Dense {
	_, cols := f.centers[0].Dims()
	m := mat.NewDense(1, cols, nil)
	for _, c := range f.centers {
		m.Add(m, c)
	}
	m.Scale(1/float64(len(f.centers)), m)
	return m
}

// spyFunction wraps another decomposable function and records the order in
// which terms are visited by the driver.
type spyFunction struct {
	inner   optimize.DecomposableFunction
	visited []int
}

func (f *spyFunction) NumFunctions() int { return f.inner.NumFunctions() }

func (f *spyFunction) Evaluate(iterate *mat.Dense, i int) float64 {
	return f.inner.Evaluate(iterate, i)
}

func (f *spyFunction) Gradient(iterate *mat.Dense, i int, gradient *mat.Dense) {
	f.visited = append(f.visited, i)
	f.inner.Gradient(iterate, i, gradient)
}

// nanFunction reports a NaN objective on every term, with zero gradients.
type nanFunction struct{}

func (nanFunction) NumFunctions() int { return 2 }

func (nanFunction) Evaluate(*mat.Dense, int) float64 { return math.NaN() }

func (nanFunction) Gradient(_ *mat.Dense, _ int, gradient *mat.Dense) { gradient.Zero() }

// emptyFunction decomposes into zero terms.
type emptyFunction struct{}

func (emptyFunction) NumFunctions() int { return 0 }

func (emptyFunction) Evaluate(*mat.Dense, int) float64 { return 0 }

func (emptyFunction) Gradient(*mat.Dense, int, *mat.Dense) {}

// scalarFunction is the single-term objective f(x) = x^2 over a 1x1
// iterate, so the per-term gradient is 2x.
type scalarFunction struct{}

func (scalarFunction) NumFunctions() int { return 1 }

func (scalarFunction) Evaluate(iterate *mat.Dense, _ int) float64 {
	x := iterate.At(0, 0)
	return x * x
}

func (scalarFunction) Gradient(iterate *mat.Dense, _ int, gradient *mat.Dense) {
	gradient.Set(0, 0, 2*iterate.At(0, 0))
}
