package lib

// Bucket counts for chained hash tables. Each entry is roughly
// double the previous, keeping modulo distribution healthy while
// growing geometrically.
var primes = [...]int64{
	3, 7, 11, 17, 23, 29, 37, 47, 59, 71, 89, 107, 131, 163, 197,
	239, 293, 353, 431, 521, 631, 761, 919, 1103, 1327, 1597, 1931,
	2333, 2801, 3371, 4049, 4861, 5839, 7013, 8419, 10103, 12143,
	14591, 17519, 21023, 25229, 30293, 36353, 43627, 52361, 62851,
	75431, 90523, 108631, 130363, 156437, 187751, 225307, 270371,
	324449, 389357, 467237, 560689, 672827, 807403, 968897, 1162687,
	1395263, 1674319, 2009191, 2411033, 2893249, 3471899, 4166287,
	4999559, 5999471, 7199369,
}

// NextPrime return the smallest table prime >= n. Beyond the table
// it falls back to probing odd candidates.
func NextPrime(n int64) int64 {
	for _, p := range primes {
		if p >= n {
			return p
		}
	}
	for candidate := n | 1; ; candidate += 2 {
		if isprime(candidate) {
			return candidate
		}
	}
}

func isprime(n int64) bool {
	if n < 2 {
		return false
	}
	for d := int64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return n%2 != 0 || n == 2
}
