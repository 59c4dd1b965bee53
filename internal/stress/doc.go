// Package stress provides deliberately expensive computations used to
// generate observable CPU load inside a container.
//
// The naive recursive Fibonacci is the only workload: it burns CPU in a
// predictable way, which makes it useful for exercising resource limits
// and horizontal autoscaling during platform validation.
package stress
