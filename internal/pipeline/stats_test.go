package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpperMedian(t *testing.T) {
	assert.Equal(t, 3000.0, upperMedian([]float64{3000}))
	assert.Equal(t, 3000.0, upperMedian([]float64{3200, 3000, 2800}))
	// Even length takes the upper of the two middle values.
	assert.Equal(t, 3200.0, upperMedian([]float64{2800, 3000, 3200, 3400}))
	assert.Zero(t, upperMedian(nil))
}

func TestUpperMedian_DoesNotMutateInput(t *testing.T) {
	rents := []float64{3200, 2800, 3000}
	upperMedian(rents)
	assert.Equal(t, []float64{3200, 2800, 3000}, rents)
}

func TestMean(t *testing.T) {
	assert.Equal(t, 3000.0, mean([]float64{2000, 3000, 4000}))
	assert.Zero(t, mean(nil))
}
