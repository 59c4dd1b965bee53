package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollect(t *testing.T) {
	s := Collect()

	assert.GreaterOrEqual(t, s.CPUCount, 1)
	assert.Greater(t, s.TotalMemoryBytes, uint64(0))
	assert.GreaterOrEqual(t, s.TotalMemoryBytes, s.UsedMemoryBytes)
	assert.Equal(t, s.TotalMemoryBytes/1024/1024, s.TotalMemoryMB)
}
