// SPDX-License-Identifier: MIT

package circulant

import "golang.org/x/sync/errgroup"

// forEachRange splits [0, n) into at most workers contiguous, disjoint ranges
// and calls fn(lo, hi) for each. With workers ≤ 1 it runs fn(0, n) inline.
// Each fn call must write only to output slots in [lo, hi); no locking is done.
// The first error returned by any range is returned after all ranges finish.
func forEachRange(n, workers int, fn func(lo, hi int) error) error {
	if workers <= 1 || n < 2 {
		return fn(0, n)
	}
	if workers > n {
		workers = n
	}

	var g errgroup.Group
	g.SetLimit(workers)
	chunk := (n + workers - 1) / workers // ceil(n / workers)
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		g.Go(func() error { return fn(lo, hi) })
	}

	return g.Wait()
}
