package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/fionahaas320/mlpack/internal/linalg"
)

func TestZeroedDense(t *testing.T) {
	t.Run("nil allocates", func(t *testing.T) {
		m := linalg.ZeroedDense(nil, 2, 3)
		r, c := m.Dims()
		assert.Equal(t, 2, r)
		assert.Equal(t, 3, c)
		assert.True(t, mat.Equal(m, mat.NewDense(2, 3, nil)))
	})

	t.Run("matching dims are reused and zeroed", func(t *testing.T) {
		m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
		out := linalg.ZeroedDense(m, 2, 2)
		assert.Same(t, m, out)
		assert.True(t, mat.Equal(out, mat.NewDense(2, 2, nil)))
	})

	t.Run("mismatched dims reallocate", func(t *testing.T) {
		m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
		out := linalg.ZeroedDense(m, 3, 1)
		assert.NotSame(t, m, out)
		r, c := out.Dims()
		assert.Equal(t, 3, r)
		assert.Equal(t, 1, c)
	})
}

func TestSameDims(t *testing.T) {
	assert.True(t, linalg.SameDims(mat.NewDense(2, 3, nil), mat.NewDense(2, 3, nil)))
	assert.False(t, linalg.SameDims(mat.NewDense(2, 3, nil), mat.NewDense(3, 2, nil)))
}
