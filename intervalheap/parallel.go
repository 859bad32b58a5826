// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package intervalheap

import (
	"runtime"

	"cloudeng.io/errors"
	"cloudeng.io/sync/errgroup"
)

const (
	// branchMin is the smallest block, in slots of a single tree layer,
	// that is worth splitting across goroutines; near-root layers are
	// processed sequentially to avoid cache-line thrashing.
	branchMin = 1 << 10
	// threadMin is the heap size above which MakeParallel uses more than
	// one goroutine.
	threadMin = branchMin << 1
)

// MakeParallel is Make with the layers of the tree built concurrently.
// Blocks of intervals within one layer share no parent slot, so each
// goroutine owns a disjoint block and the layer is joined before the one
// above it is built. The number of goroutines starts at runtime.NumCPU and
// halves at each split. Basic guarantee, as for Make.
func MakeParallel[T any](a []T, cmp Compare[T]) error {
	if len(a) < 2 {
		return nil
	}
	procs := 1
	if len(a) > threadMin {
		procs = runtime.NumCPU()
	}
	return makeBlock(a, cmp, 0, 2, procs)
}

// makeBlock builds the block [blockBegin, blockEnd) of one layer, after
// recursively building the layers beneath it.
func makeBlock[T any](a []T, cmp Compare[T], blockBegin, blockEnd, procs int) error {
	n := len(a)
	endParent := n/2 - 1
	if blockBegin < endParent {
		childBegin := (blockBegin + 1) * 2
		childEnd := (blockEnd + 1) * 2
		if procs > 1 && blockEnd-blockBegin >= branchMin {
			childMiddle := blockBegin + blockEnd + 2
			split := procs >> 1
			var g errgroup.T
			g.Go(func() error {
				return makeBlock(a, cmp, childMiddle, childEnd, split)
			})
			errs := errors.M{}
			errs.Append(makeBlock(a, cmp, childBegin, childMiddle, procs-split))
			errs.Append(g.Wait())
			if err := errs.Err(); err != nil {
				return err
			}
		} else if err := makeBlock(a, cmp, childBegin, childEnd, procs); err != nil {
			return err
		}
	} else if blockEnd > n {
		// A trailing singleton interval is already valid; skip it.
		blockEnd = n ^ (n & 1)
	}
	for index := blockEnd - 2; index >= blockBegin; index -= 2 {
		co := index | 1
		stop := n
		if index <= endParent {
			stop = co * 2
		}
		misordered, err := cmp(a[co], a[index])
		if err != nil {
			return err
		}
		if misordered {
			a[index], a[co] = a[co], a[index]
		}
		if err := siftDown(a, false, co, stop, cmp); err != nil {
			return err
		}
		if err := siftDown(a, true, index, stop, cmp); err != nil {
			return err
		}
	}
	return nil
}
