package stress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFib(t *testing.T) {
	tests := []struct {
		n    uint64
		want uint64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{10, 55},
		{20, 6765},
		{30, 832040},
		{35, 9227465},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Fib(tt.n), "fib(%d)", tt.n)
	}
}

func TestFibStressValue(t *testing.T) {
	if testing.Short() {
		t.Skip("naive fib(45) takes several seconds")
	}
	assert.Equal(t, uint64(1134903170), Fib(45))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, uint64(45), Clamp(400, 45))
	assert.Equal(t, uint64(10), Clamp(10, 45))
	assert.Equal(t, uint64(45), Clamp(45, 45))
}
