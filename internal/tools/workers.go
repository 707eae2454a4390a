package tools

import "runtime"

// Worker pool bounds for page encoding.
const (
	MinPoolSize = 1
	MaxPoolSize = 8
)

// ResolvePoolSize returns workers when positive, otherwise half of
// GOMAXPROCS clamped to [MinPoolSize, MaxPoolSize]. GOMAXPROCS already
// reflects container limits once automaxprocs has run.
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	n := runtime.GOMAXPROCS(0) / 2
	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
