package profiler

import "runtime"

// Memory reports the live heap and the total allocation count.
func Memory() (heap, allocs uint64) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc, m.Mallocs
}

func NumGoroutine() int { return runtime.NumGoroutine() }
