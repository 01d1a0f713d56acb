/*
 Copyright (C) 2022-2026, The record-catalog Go Library Authors

 This file is part of record-catalog: An Ordered Go Library for Record Catalogs.

 This library is free software; you can redistribute it and/or
 modify it under the terms of the GNU Lesser General Public
 License as published by the Free Software Foundation; either
 version 2.1 of the License, or any later version.

 This library is distributed in the hope that it will be useful,
 but WITHOUT ANY WARRANTY; without even the implied warranty of
 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
 See the GNU Lesser General Public License for more details.

 A copy of the GNU Lesser General Public License is provided by this
 library under LICENSE.md. To see more details about the authors and
 contributors, please see AUTHORS.md. If absent, Both of which can be
 found within the GitHub repository:
          https://github.com/justincpresley/record-catalog
*/

// Package orderedlist provides a doubly-linked list that keeps its values
// sorted under a pluggable ordering.
//
// The only way to add a value is Insert (or Adopt), which places it where the
// ordering says it belongs. A value equal to ones already present, meaning
// neither precedes the other, goes in front of them. Find uses the same
// notion of equality, so a probe only needs the fields the ordering looks at.
//
// Lists holding pointers never manage the pointed-to values: erasing or
// clearing releases the list's own nodes only.
package orderedlist

import (
	"iter"
)

// Cloner is implemented by values whose copies are made explicitly and may
// fail. Insert, Clone and Assign copy such values through Clone; every other
// value is copied by assignment.
type Cloner[T any] interface {
	Clone() (T, error)
}

func clone[T any](v T) (T, error) {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v, nil
}

// List is an ordered doubly-linked list of T sorted by O. The zero value is
// an empty list using the zero value of O.
type List[T any, O Ordering[T]] struct {
	ch *chain[T]
	of O
}

func New[T any, O Ordering[T]]() *List[T, O] {
	return &List[T, O]{}
}

func NewWithOrdering[T any, O Ordering[T]](of O) *List[T, O] {
	return &List[T, O]{of: of}
}

func (l *List[T, O]) lazyInit() {
	if l.ch == nil {
		l.ch = &chain[T]{}
	}
}

func (l *List[T, O]) Len() int {
	if l.ch == nil {
		return 0
	}
	return l.ch.len
}

func (l *List[T, O]) Empty() bool { return l.Len() == 0 }

// Begin returns an iterator to the first value, or End() if l is empty.
func (l *List[T, O]) Begin() Iterator[T] {
	if l.ch == nil {
		return Iterator[T]{}
	}
	return Iterator[T]{node: l.ch.front()}
}

// End returns the past-the-end iterator.
func (l *List[T, O]) End() Iterator[T] { return Iterator[T]{} }

// All yields the values front to back.
func (l *List[T, O]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := l.Begin(); !it.Done(); it = it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Backward yields the values back to front.
func (l *List[T, O]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.ch == nil {
			return
		}
		for n := l.ch.back(); n != nil; n = n.prev {
			if !yield(n.val) {
				return
			}
		}
	}
}

// Insert adds a copy of v in order. If copying v fails, the error is
// returned and l is unchanged.
func (l *List[T, O]) Insert(v T) error {
	c, err := clone(v)
	if err != nil {
		return err
	}
	l.Adopt(c)
	return nil
}

// Adopt adds v itself in order, without copying it.
func (l *List[T, O]) Adopt(v T) {
	l.lazyInit()
	l.ch.insert(&node[T]{val: v}, func(e, i *node[T]) bool {
		return !l.of.Precedes(i.val, e.val)
	})
}

// Find returns an iterator to the first value equal to probe, or End(). The
// scan stops at the first value that probe precedes.
func (l *List[T, O]) Find(probe T) Iterator[T] {
	if l.ch == nil {
		return Iterator[T]{}
	}
	for n := l.ch.front(); n != nil; n = n.next {
		if !l.of.Precedes(n.val, probe) {
			if !l.of.Precedes(probe, n.val) {
				return Iterator[T]{node: n}
			}
			break
		}
	}
	return Iterator[T]{}
}

func (l *List[T, O]) Contains(probe T) bool {
	return !l.Find(probe).Done()
}

// Erase removes the node designated by it. it must designate a node of l;
// erasing End(), an already erased node or a node of another list panics.
func (l *List[T, O]) Erase(it Iterator[T]) {
	if it.node == nil {
		panic("orderedlist: erase of end iterator")
	}
	if l.ch == nil || it.node.owner != l.ch {
		panic("orderedlist: erase of iterator not in this list")
	}
	l.ch.remove(it.node)
}

// Clear removes every node.
func (l *List[T, O]) Clear() {
	if l.ch != nil {
		l.ch.release()
	}
}

// Swap exchanges the contents and orderings of l and other.
func (l *List[T, O]) Swap(other *List[T, O]) {
	l.ch, other.ch = other.ch, l.ch
	l.of, other.of = other.of, l.of
}

// build returns a new chain holding copies of l's values, in order. On
// failure, error or panic, the nodes already built are released.
func (l *List[T, O]) build() (*chain[T], error) {
	c := &chain[T]{}
	done := false
	defer func() {
		if !done {
			c.release()
		}
	}()
	for it := l.Begin(); !it.Done(); it = it.Next() {
		v, err := clone(it.node.val)
		if err != nil {
			return nil, err
		}
		c.pushBack(&node[T]{val: v})
	}
	done = true
	return c, nil
}

// Clone returns a deep copy of l. On failure no nodes are left behind.
func (l *List[T, O]) Clone() (*List[T, O], error) {
	c, err := l.build()
	if err != nil {
		return nil, err
	}
	return &List[T, O]{ch: c, of: l.of}, nil
}

// Assign replaces the contents of l with copies of src's values. The copy is
// built off to the side and swapped in once complete, so on failure l is
// unchanged.
func (l *List[T, O]) Assign(src *List[T, O]) error {
	c, err := src.build()
	if err != nil {
		return err
	}
	tmp := List[T, O]{ch: c, of: src.of}
	l.Swap(&tmp)
	tmp.Clear()
	return nil
}

// Move returns a new list owning l's nodes and leaves l empty.
func (l *List[T, O]) Move() *List[T, O] {
	ret := &List[T, O]{ch: l.ch, of: l.of}
	l.ch = nil
	return ret
}

// MoveFrom releases l's nodes and takes over src's, leaving src empty.
func (l *List[T, O]) MoveFrom(src *List[T, O]) {
	if l == src {
		return
	}
	l.Clear()
	l.ch, src.ch = src.ch, nil
	l.of = src.of
}
