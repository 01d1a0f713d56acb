package orderedlist

import (
	"sync/atomic"
)

var liveNodes atomic.Int64

// LiveNodes reports how many nodes are currently linked into any list.
func LiveNodes() int64 { return liveNodes.Load() }

type node[T any] struct {
	next, prev *node[T]
	owner      *chain[T]
	val        T
}

type chain[T any] struct {
	head, tail *node[T]
	len        int
}

func (c *chain[T]) front() *node[T] { return c.head }
func (c *chain[T]) back() *node[T]  { return c.tail }

func (c *chain[T]) remove(e *node[T]) {
	if e.prev == nil {
		c.head = e.next
	} else {
		e.prev.next = e.next
	}
	if e.next == nil {
		c.tail = e.prev
	} else {
		e.next.prev = e.prev
	}
	e.next = nil
	e.prev = nil
	e.owner = nil
	c.len--
	liveNodes.Add(-1)
}

func (c *chain[T]) pushBack(e *node[T]) {
	e.owner = c
	c.len++
	liveNodes.Add(1)
	if c.tail == nil {
		c.head = e
		c.tail = e
		return
	}
	e.prev = c.tail
	c.tail.next = e
	c.tail = e
}

func (c *chain[T]) pushBefore(e, i *node[T]) {
	e.owner = c
	c.len++
	liveNodes.Add(1)
	e.next = i
	if i == c.head {
		c.head = e
	} else {
		e.prev = i.prev
		i.prev.next = e
	}
	i.prev = e
}

// insert links e before the first node i for which before(e, i) holds, or at
// the back when there is none. The chain is not touched until the scan is
// over, so a panicking before leaves it as it was.
func (c *chain[T]) insert(e *node[T], before func(e1, e2 *node[T]) bool) {
	i := c.head
	for i != nil && !before(e, i) {
		i = i.next
	}
	if i == nil {
		c.pushBack(e)
		return
	}
	c.pushBefore(e, i)
}

// release unlinks every node, front to back.
func (c *chain[T]) release() {
	for c.head != nil {
		c.remove(c.head)
	}
}
