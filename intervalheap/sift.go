// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package intervalheap

// The sift primitives below repair the interval-heap invariant after a
// single-slot perturbation. Each takes the side being repaired (minSide
// selects the even, left-bound heap), the index of the offending slot and a
// limit: the walk never modifies any slot above the parent of limit, which
// lets the bulk builder repair a layer without disturbing the layers above
// it. A limit of 2 repairs all the way to the root.
//
// The moving element is held in a local limbo variable so that exactly one
// slot along the movement path is a hole at any time. On a comparator error
// the primitive swaps the limbo element back through the visited slots in
// reverse, restoring the pre-call arrangement before returning the error.

// sameSideParent returns the slot in the parent interval holding the same
// bound as index: left child to left parent, right child to right parent.
func sameSideParent(index int, minSide bool) int {
	p := (index/2 - 1) | 1
	if minSide {
		p ^= 1
	}
	return p
}

// siftUp bubbles the element at origin toward the root along same-side
// parents until the nesting invariant holds.
func siftUp[T any](a []T, minSide bool, origin, limit int, cmp Compare[T]) error {
	index := origin
	limbo := a[index]
	for index >= limit {
		parent := sameSideParent(index, minSide)
		var above bool
		var err error
		if minSide {
			above, err = cmp(limbo, a[parent])
		} else {
			above, err = cmp(a[parent], limbo)
		}
		if err != nil {
			// Thread the limbo element back through the visited
			// slots, from origin down to index.
			a[origin], limbo = limbo, a[origin]
			for origin > index {
				origin = sameSideParent(origin, minSide)
				a[origin], limbo = limbo, a[origin]
			}
			return err
		}
		if !above {
			break
		}
		a[index] = a[parent]
		index = parent
	}
	a[index] = limbo
	return nil
}

// siftLeafMin repairs the invariant at a leaf left bound: if the companion
// max bound is smaller the two are swapped and the displaced element rises
// through the max heap, otherwise the element rises through the min heap.
// When index is the lone slot of a singleton interval the companion is the
// parent interval's max bound.
func siftLeafMin[T any](a []T, index, limit int, cmp Compare[T]) error {
	co := index | 1
	if co >= len(a) {
		if co == 1 {
			// Single-element heap.
			return nil
		}
		co = (co/2 - 1) | 1
	}
	crossed, err := cmp(a[co], a[index])
	if err != nil {
		return err
	}
	if crossed {
		a[index], a[co] = a[co], a[index]
		if err := siftUp(a, false, co, limit, cmp); err != nil {
			a[index], a[co] = a[co], a[index]
			return err
		}
		return nil
	}
	return siftUp(a, true, index, limit, cmp)
}

// siftLeafMax repairs the invariant at a leaf right bound. The companion is
// the interval's own left bound, or the left bound of the child interval
// when one exists (a singleton child serves as both of its bounds).
func siftLeafMax[T any](a []T, index, limit int, cmp Compare[T]) error {
	co := index * 2
	if (len(a)-1)/2 < index {
		co = index ^ 1
	}
	crossed, err := cmp(a[index], a[co])
	if err != nil {
		return err
	}
	if crossed {
		a[index], a[co] = a[co], a[index]
		if err := siftUp(a, true, co, limit, cmp); err != nil {
			a[index], a[co] = a[co], a[index]
			return err
		}
		return nil
	}
	return siftUp(a, false, index, limit, cmp)
}

// siftDown walks the element at origin down its side of the tree, pulling
// the more extreme child bound into the hole at each step, and finishes the
// repair at a leaf via siftLeafMin or siftLeafMax. It also handles the
// element being on the wrong side of its own interval: the leaf phase swaps
// it across to its companion bound and repairs the other side.
func siftDown[T any](a []T, minSide bool, origin, limit int, cmp Compare[T]) error {
	n := len(a)
	index := origin
	limbo := a[index]

	// One past the last slot with two child intervals. Left-bound parents
	// lose a child one interval earlier when n is a multiple of 4.
	endParent := n/2 - 1
	if minSide && n&3 == 0 {
		endParent = n/2 - 2
	}
	// rollback swaps the element back up the movement path; a[index] must
	// hold the moving element when it is called.
	rollback := func(err error) error {
		for index > origin {
			parent := sameSideParent(index, minSide)
			a[parent], a[index] = a[index], a[parent]
			index = parent
		}
		return err
	}
	for index < endParent {
		child := index*2 + 1
		if minSide {
			child = index*2 + 2
		}
		var farther bool
		var err error
		if minSide {
			farther, err = cmp(a[child+2], a[child])
		} else {
			farther, err = cmp(a[child], a[child+2])
		}
		if err != nil {
			a[index] = limbo
			return rollback(err)
		}
		if farther {
			child += 2
		}
		a[index] = a[child]
		index = child
	}
	// At most one child interval remains below index.
	single := endParent
	if !minSide {
		single++
	}
	if index <= single {
		child := index*2 + 1
		if minSide {
			child = index*2 + 2
		}
		if child < n {
			if !minSide && child+1 < n {
				// The right child interval is a singleton whose
				// lone element serves as both bounds; take it if
				// it is the larger.
				crossed, err := cmp(a[child], a[child+1])
				if err != nil {
					a[index] = limbo
					return rollback(err)
				}
				if crossed {
					child++
					a[index] = a[child]
					a[child] = limbo
					index = child
					if err := siftLeafMin(a, index, limit, cmp); err != nil {
						return rollback(err)
					}
					return nil
				}
			}
			a[index] = a[child]
			index = child
		}
	}
	a[index] = limbo
	var err error
	if minSide {
		err = siftLeafMin(a, index, limit, cmp)
	} else {
		err = siftLeafMax(a, index, limit, cmp)
	}
	if err != nil {
		return rollback(err)
	}
	return nil
}
