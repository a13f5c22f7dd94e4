package linear

const (
	DefaultTableSize = 10   // slots allocated by NewDefaultTable
	MaxLoadFactor    = 0.50 // occupied cells (live plus deleted) per slot before growing

	hashRadix        = 27 // radix constant folded in by horner's rule
	hashDisplacement = 96 // character displacement, maps 'a' to 1

	tombstoneMarker = "#DEL#"
)

// nextPrime returns the first prime greater than or equal to n
func nextPrime(n int) int {
	for !isPrime(n) {
		n++
	}
	return n
}

// isPrime checks primality by trial division up to n/2. Naive, but
// table capacities stay far too small for it to matter.
func isPrime(n int) bool {
	for i := 2; i <= n/2; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// wrap normalizes i into [0, n) with a floored modulus so probe starts
// stay in range even when the hash wrapped negative
func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
