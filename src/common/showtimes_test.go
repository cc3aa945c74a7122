package common

import (
	"frontrow/src/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillLabel(t *testing.T) {
	assert.Equal(t, config.FILLING_LOW, FillLabel(0, 100))
	assert.Equal(t, config.FILLING_LOW, FillLabel(39, 100))
	assert.Equal(t, config.FILLING_FAST, FillLabel(40, 100))
	assert.Equal(t, config.FILLING_FAST, FillLabel(74, 100))
	assert.Equal(t, config.FILLING_ALMOST, FillLabel(75, 100))
	assert.Equal(t, config.FILLING_ALMOST, FillLabel(100, 100))
}

func TestFillLabelZeroCapacity(t *testing.T) {
	assert.Equal(t, config.FILLING_LOW, FillLabel(10, 0))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 5, TotalPages(42, 10))
}
