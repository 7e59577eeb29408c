package profiling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeSymmetric(t *testing.T) {
	d, err := Describe([]float64{1, 2, 3, 4, 5})
	require.NoError(t, err)

	assert.Equal(t, 5, d.Count)
	assert.Equal(t, 3.0, d.Mean)
	assert.Equal(t, 3.0, d.Median)
	assert.Equal(t, 1.0, d.Min)
	assert.Equal(t, 5.0, d.Max)
	assert.InDelta(t, 1.4142, d.StdDev, 1e-3)
	assert.InDelta(t, 0, d.Skewness, 1e-9)
	assert.Zero(t, d.Outliers)
}

func TestDescribeOutlierAndSkew(t *testing.T) {
	data := []float64{10, 10, 10, 10, 10, 10, 10, 10, 10, 1000}

	d, err := Describe(data)
	require.NoError(t, err)

	assert.Equal(t, 1, d.Outliers)
	assert.Greater(t, d.Skewness, 0.0)
}

func TestDescribeConstant(t *testing.T) {
	d, err := Describe([]float64{25, 25, 25})
	require.NoError(t, err)
	assert.Zero(t, d.StdDev)
	assert.Zero(t, d.Skewness)
	assert.Zero(t, d.Outliers)
}

func TestDescribeEmpty(t *testing.T) {
	_, err := Describe(nil)
	assert.Error(t, err)
}
