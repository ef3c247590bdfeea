package schash

// nextPrime returns the smallest prime >= n, with even n first bumped to odd.
// n must be positive.
func nextPrime(n int) int {
	if n%2 == 0 {
		n++
	}
	for !isPrime(n) {
		n += 2
	}
	return n
}

// isPrime tests n by trial division. Only used when sizing the bucket array.
func isPrime(n int) bool {
	if n == 2 || n == 3 {
		return true
	}
	if n == 1 || n%2 == 0 {
		return false
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}
