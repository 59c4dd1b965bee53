package stress

// MaxFib is the largest index whose Fibonacci value fits in uint64.
const MaxFib = 93

// Fib computes the n-th Fibonacci number by naive recursion.
// Exponential on purpose: the cost is the point.
func Fib(n uint64) uint64 {
	if n <= 1 {
		return n
	}
	return Fib(n-1) + Fib(n-2)
}

// Clamp bounds n to max so a single request cannot pin a CPU forever.
func Clamp(n, max uint64) uint64 {
	if n > max {
		return max
	}
	return n
}
