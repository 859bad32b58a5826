// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package prioritydeque provides a double-ended priority queue: a container
// offering O(log n) insertion and removal at both the minimum and the
// maximum, O(1) access to either, and O(log n) replacement or removal of
// the element at an arbitrary position. It adapts a growable slice arranged
// as an interval heap (see cloudeng.io/container/intervalheap); the adaptor
// itself only grows and shrinks the slice and delegates all rearrangement
// to the heap functions.
//
// The deque is not stable: elements the comparator treats as equivalent may
// be returned in any order. Iteration over Values is in heap-array order,
// not priority order. Concurrent reads of a deque that is not being mutated
// are safe; any concurrent mutation requires external locking.
package prioritydeque

import (
	"cloudeng.io/container/intervalheap"
	"golang.org/x/exp/constraints"
)

// T represents a double-ended priority queue. It owns its backing slice and
// comparator exclusively; mutating the slice returned by Values invalidates
// the container until Rebuild is called.
type T[V any] struct {
	values   []V
	cmp      intervalheap.Compare[V]
	parallel bool
}

// New creates a deque ordered by the natural < ordering of V.
func New[V constraints.Ordered](opts ...Option[V]) *T[V] {
	d, _ := NewCompare(intervalheap.Ordered[V](), opts...) // comparator cannot fail
	return d
}

// NewFunc creates a deque ordered by less, which must define a strict weak
// ordering.
func NewFunc[V any](less func(a, b V) bool, opts ...Option[V]) *T[V] {
	d, _ := NewCompare(intervalheap.LessFunc(less), opts...) // comparator cannot fail
	return d
}

// NewCompare creates a deque ordered by a fallible comparator. The error
// is non-nil only when building a heap from WithData fails; the data slice
// is left rearranged but with all of its elements (basic guarantee).
func NewCompare[V any](cmp intervalheap.Compare[V], opts ...Option[V]) (*T[V], error) {
	var o options[V]
	for _, fn := range opts {
		fn(&o)
	}
	d := &T[V]{cmp: cmp, parallel: o.parallel}
	if o.values != nil {
		d.values = o.values
		return d, d.rebuild()
	}
	d.values = make([]V, 0, o.sliceCap)
	return d, nil
}

// Len returns the number of elements in the deque.
func (d *T[V]) Len() int {
	return len(d.values)
}

// Values returns the backing slice in heap-array order. Callers must not
// rely on any ordering and must not mutate the slice; see Rebuild.
func (d *T[V]) Values() []V {
	return d.values
}

// Min returns a minimal element. The deque must not be empty.
func (d *T[V]) Min() V {
	if len(d.values) == 0 {
		panic("prioritydeque: empty deque has no minimal element")
	}
	return d.values[0]
}

// Max returns a maximal element. The deque must not be empty.
func (d *T[V]) Max() V {
	switch len(d.values) {
	case 0:
		panic("prioritydeque: empty deque has no maximal element")
	case 1:
		return d.values[0]
	}
	return d.values[1]
}

// Top is an alias for Max, matching the single-ended priority-queue
// interface.
func (d *T[V]) Top() V {
	return d.Max()
}

// Push adds v to the deque. On a comparator error the append is undone and
// the deque is unchanged.
func (d *T[V]) Push(v V) error {
	d.values = append(d.values, v)
	if err := intervalheap.Push(d.values, d.cmp); err != nil {
		d.values = d.values[:len(d.values)-1]
		return err
	}
	return nil
}

// PopMin removes and returns a minimal element. The deque must not be
// empty. On a comparator error the deque is unchanged.
func (d *T[V]) PopMin() (V, error) {
	if len(d.values) == 0 {
		panic("prioritydeque: empty deque has no minimal element")
	}
	var zero V
	if err := intervalheap.PopMin(d.values, d.cmp); err != nil {
		return zero, err
	}
	return d.removeLast(), nil
}

// PopMax removes and returns a maximal element. The deque must not be
// empty. On a comparator error the deque is unchanged.
func (d *T[V]) PopMax() (V, error) {
	if len(d.values) == 0 {
		panic("prioritydeque: empty deque has no maximal element")
	}
	var zero V
	if err := intervalheap.PopMax(d.values, d.cmp); err != nil {
		return zero, err
	}
	return d.removeLast(), nil
}

// Update replaces the element at position i (in Values order) with v. On a
// comparator error the previous element is restored and the deque is
// unchanged. The positions of elements after an update are unspecified.
func (d *T[V]) Update(i int, v V) error {
	if i < 0 || i >= len(d.values) {
		panic("prioritydeque: index out of range; can't set element")
	}
	old := d.values[i]
	d.values[i] = v
	if err := intervalheap.Update(d.values, i, d.cmp); err != nil {
		d.values[i] = old
		return err
	}
	return nil
}

// Erase removes and returns the element at position i (in Values order).
// On a comparator error the deque is unchanged.
func (d *T[V]) Erase(i int) (V, error) {
	if i < 0 || i >= len(d.values) {
		panic("prioritydeque: index out of range; can't erase element")
	}
	var zero V
	if err := intervalheap.PopAt(d.values, i, d.cmp); err != nil {
		return zero, err
	}
	return d.removeLast(), nil
}

// Merge adds all of values to the deque in O(n). On a comparator error the
// deque is truncated back to its original length. The failed build may
// already have moved elements across that boundary, so the remaining
// elements are not necessarily the original ones and may not form a heap;
// Rebuild restores the heap.
func (d *T[V]) Merge(values []V) error {
	orig := len(d.values)
	d.values = append(d.values, values...)
	if err := d.rebuild(); err != nil {
		d.values = d.values[:orig]
		return err
	}
	return nil
}

// Rebuild re-establishes the container invariant after the backing slice
// has been mutated through Values or a failed Merge.
func (d *T[V]) Rebuild() error {
	return d.rebuild()
}

// Clear removes all elements, retaining the backing slice's capacity.
func (d *T[V]) Clear() {
	d.values = d.values[:0]
}

// Swap exchanges the contents, comparators and options of the two deques
// in O(1).
func (d *T[V]) Swap(other *T[V]) {
	d.values, other.values = other.values, d.values
	d.cmp, other.cmp = other.cmp, d.cmp
	d.parallel, other.parallel = other.parallel, d.parallel
}

func (d *T[V]) rebuild() error {
	if d.parallel {
		return intervalheap.MakeParallel(d.values, d.cmp)
	}
	return intervalheap.Make(d.values, d.cmp)
}

func (d *T[V]) removeLast() V {
	n := len(d.values) - 1
	v := d.values[n]
	d.values = d.values[:n]
	return v
}
