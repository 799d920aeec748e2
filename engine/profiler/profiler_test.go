//go:build !profile

package profiler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisabledIsInert(t *testing.T) {
	Init(16)
	end := Start("frame")
	end()
	require.False(t, Enabled)
	require.Error(t, Dump(t.TempDir()+"/p.json"))
	_, err := OpenProfilerGraph()
	require.Error(t, err)
}

func TestMemory(t *testing.T) {
	heap, allocs := Memory()
	require.NotZero(t, heap)
	require.NotZero(t, allocs)
	require.Positive(t, NumGoroutine())
}
