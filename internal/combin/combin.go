// Package combin enumerates k-combinations of {0..n-1} in lexicographic
// order. It is the minimal slice of combinatorics the seeding engine needs.
package combin

// Count returns the binomial coefficient C(n, k), or 0 for out-of-range k.
func Count(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	c := 1
	for i := 0; i < k; i++ {
		c = c * (n - i) / (i + 1)
	}
	return c
}

// Each calls fn for every k-combination of {0..n-1} in lexicographic order.
// The slice passed to fn is reused between calls; fn must copy it to retain
// it. fn may return false to stop the enumeration.
func Each(n, k int, fn func(combo []int) bool) {
	if k < 0 || k > n {
		return
	}
	combo := make([]int, k)
	for i := range combo {
		combo[i] = i
	}
	for {
		if !fn(combo) {
			return
		}
		// Advance to the next combination.
		i := k - 1
		for i >= 0 && combo[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		combo[i]++
		for j := i + 1; j < k; j++ {
			combo[j] = combo[j-1] + 1
		}
	}
}
