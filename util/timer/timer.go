package timer

import "time"

// Start begins measuring and returns a function reporting the time elapsed
// since Start was called.
func Start() func() time.Duration {
	begin := time.Now()
	return func() time.Duration {
		return time.Since(begin)
	}
}
