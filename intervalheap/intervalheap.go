// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package intervalheap arranges a slice as an interval heap: a double-ended
// heap in which every pair of adjacent slots (2k, 2k+1) forms an interval
// whose left bound is never greater than its right bound, left bounds form
// a min heap and right bounds form a max heap. A valid interval heap keeps
// its minimum at index 0 and its maximum at index 1 (index 0 when it holds
// a single element). When the slice length is odd the final lone slot is a
// singleton interval and serves as both of its own bounds.
//
// All functions operate on the slice in place and are parameterized by a
// fallible comparator. The pop functions move the popped element to the
// tail of the slice for the caller to remove; prioritydeque wraps them in
// an owning container.
//
// Unless stated otherwise the mutating functions provide the strong
// guarantee: if the comparator returns an error the slice has been restored
// to its pre-call arrangement before the error is returned. Concurrent
// reads of a slice that is not being mutated are safe; there is no internal
// locking.
package intervalheap

import "golang.org/x/exp/constraints"

// Compare reports whether a orders strictly before b under a strict weak
// ordering. A non-nil error aborts the operation that invoked the
// comparator; the operation's documented guarantee says what state the
// slice is left in.
type Compare[T any] func(a, b T) (bool, error)

// Ordered returns a Compare using the natural < ordering. It never returns
// an error.
func Ordered[T constraints.Ordered]() Compare[T] {
	return func(a, b T) (bool, error) {
		return a < b, nil
	}
}

// LessFunc adapts an infallible less function to a Compare.
func LessFunc[T any](less func(a, b T) bool) Compare[T] {
	return func(a, b T) (bool, error) {
		return less(a, b), nil
	}
}

// Make arranges an arbitrary slice into an interval heap in O(n).
// On a comparator error the elements are preserved but may no longer form
// an interval heap (basic guarantee).
func Make[T any](a []T, cmp Compare[T]) error {
	n := len(a)
	// Holds vacuously.
	if n < 2 {
		return nil
	}
	endParent := n/2 - 1
	// A trailing singleton interval is already valid; skip it.
	index := n ^ (n & 1)
	for {
		index -= 2
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
		if index < 2 {
			return nil
		}
	}
}

// Push restores the interval heap after a new element has been appended at
// the tail: a[0:len(a)-1] must already be a valid interval heap.
func Push[T any](a []T, cmp Compare[T]) error {
	index := len(a) - 1
	if index&1 == 1 {
		return siftLeafMax(a, index, 2, cmp)
	}
	return siftLeafMin(a, index, 2, cmp)
}

// PopMin moves a minimal element to the tail of the slice, leaving
// a[0:len(a)-1] a valid interval heap. A slice of one element already has
// its minimum at the tail.
func PopMin[T any](a []T, cmp Compare[T]) error {
	n := len(a)
	if n <= 1 {
		return nil
	}
	a[0], a[n-1] = a[n-1], a[0]
	if err := siftDown(a[:n-1], true, 0, 2, cmp); err != nil {
		a[0], a[n-1] = a[n-1], a[0]
		return err
	}
	return nil
}

// PopMax moves a maximal element to the tail of the slice, leaving
// a[0:len(a)-1] a valid interval heap. For n <= 2 the maximum is already at
// index n-1 and no work is needed.
func PopMax[T any](a []T, cmp Compare[T]) error {
	n := len(a)
	if n <= 2 {
		return nil
	}
	a[1], a[n-1] = a[n-1], a[1]
	if err := siftDown(a[:n-1], false, 1, 2, cmp); err != nil {
		a[1], a[n-1] = a[n-1], a[1]
		return err
	}
	return nil
}

// PopAt moves the element at index i to the tail of the slice, leaving
// a[0:len(a)-1] a valid interval heap.
func PopAt[T any](a []T, i int, cmp Compare[T]) error {
	n := len(a)
	if i == n-1 {
		return nil
	}
	a[i], a[n-1] = a[n-1], a[i]
	if err := Update(a[:n-1], i, cmp); err != nil {
		a[i], a[n-1] = a[n-1], a[i]
		return err
	}
	return nil
}

// Update restores the interval heap after the element at index i has been
// replaced; the rest of the slice must still satisfy the invariant. The
// new element may lie on the wrong side of its own interval; the repair
// moves it across if so.
func Update[T any](a []T, i int, cmp Compare[T]) error {
	if i&1 == 1 {
		return siftDown(a, false, i, 2, cmp)
	}
	return siftDown(a, true, i, 2, cmp)
}

// Sort sorts an interval heap into ascending order by repeatedly popping
// the maximum. Basic guarantee only: a comparator error leaves the slice
// partially sorted and no longer a heap.
func Sort[T any](a []T, cmp Compare[T]) error {
	for n := len(a); n > 2; n-- {
		if err := PopMax(a[:n], cmp); err != nil {
			return err
		}
	}
	return nil
}

// IsHeapUntil returns the index of the first slot that violates the
// interval-heap invariant, or len(a) if there is none. A comparator error
// is treated as a violation at the slot being examined.
func IsHeapUntil[T any](a []T, cmp Compare[T]) int {
	n := len(a)
	for index := 0; index < n; index++ {
		if index&1 == 1 {
			bad, err := cmp(a[index], a[index-1])
			if bad || err != nil {
				return index
			}
		}
		if index < 2 {
			continue
		}
		parent := (index/2 - 1) | 1
		bad, err := cmp(a[parent], a[index])
		if bad || err != nil {
			return index
		}
		if index&1 == 0 {
			bad, err = cmp(a[index], a[parent-1])
			if bad || err != nil {
				return index
			}
		}
	}
	return n
}

// IsHeap reports whether the slice is a valid interval heap.
func IsHeap[T any](a []T, cmp Compare[T]) bool {
	return IsHeapUntil(a, cmp) == len(a)
}
