package linkedlist

import (
	"iter"

	"github.com/Invicton-Labs/go-linkedlist/constraints"
	"github.com/Invicton-Labs/go-stackerr"
)

const doubleListType = "DoubleLinkedList"

// DoubleLinkedList is a linked list whose nodes link both ways. It caches
// its tail, so both head and tail operations are O(1).
type DoubleLinkedList[T any] struct {
	list[T]
	tail *Node[T]
}

var _ LinkedList[int] = (*DoubleLinkedList[int])(nil)

// NewDouble returns a DoubleLinkedList of an ordered type, holding the
// given values in order.
func NewDouble[T constraints.Ordered](values ...T) (*DoubleLinkedList[T], stackerr.Error) {
	return NewDoubleWithInput(orderedInput[T](), values...)
}

// NewDoubleWithInput returns a DoubleLinkedList using the given element
// semantics, holding the given values in order.
func NewDoubleWithInput[T any](input NewInput[T], values ...T) (*DoubleLinkedList[T], stackerr.Error) {
	base, err := newList(doubleListType, input)
	if err != nil {
		return nil, err
	}
	l := &DoubleLinkedList[T]{list: base}
	for _, v := range values {
		if err := l.InsertAtTail(v); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Tail returns the last node, or nil if the list is empty.
func (l *DoubleLinkedList[T]) Tail() *Node[T] {
	return l.tail
}

// Backward returns a sequence of the nodes from tail to head.
func (l *DoubleLinkedList[T]) Backward() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n) {
				return
			}
		}
	}
}

func (l *DoubleLinkedList[T]) InsertAtHead(data T) stackerr.Error {
	if err := l.checkData(data); err != nil {
		return err
	}
	n := l.newNode(data)
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	} else {
		// if the list was empty, the new node is also the tail
		l.tail = n
	}
	l.head = n
	l.logger.Debugw("Inserted node at head")
	return nil
}

func (l *DoubleLinkedList[T]) RemoveAtHead() {
	old := l.head
	if old == nil {
		return
	}
	l.head = old.next
	if l.head != nil {
		l.head.prev = nil
	} else {
		if l.tail != old {
			panic(brokenLink(l.listType, "removed the only node but it was not the tail"))
		}
		l.tail = nil
	}
	old.unlink()
	l.logger.Debugw("Removed node at head")
}

func (l *DoubleLinkedList[T]) InsertAtTail(data T) stackerr.Error {
	if err := l.checkData(data); err != nil {
		return err
	}
	n := l.newNode(data)
	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		l.tail.next = n
		n.prev = l.tail
		l.tail = n
	}
	l.logger.Debugw("Inserted node at tail")
	return nil
}

func (l *DoubleLinkedList[T]) RemoveAtTail() {
	old := l.tail
	if old == nil {
		return
	}
	l.tail = old.prev
	if l.tail != nil {
		l.tail.next = nil
	} else {
		if l.head != old {
			panic(brokenLink(l.listType, "removed the only node but it was not the head"))
		}
		l.head = nil
	}
	old.unlink()
	l.logger.Debugw("Removed node at tail")
}

func (l *DoubleLinkedList[T]) InsertAtIndex(data T, index int) stackerr.Error {
	if index < 0 {
		return l.fail(negativeIndex(l.listType, index))
	}
	if index == 0 {
		return l.InsertAtHead(data)
	}
	if err := l.checkData(data); err != nil {
		return err
	}
	predecessor := l.nodeAt(index - 1)
	if predecessor == nil {
		return l.fail(outOfRange(l.listType, index, l.Size()))
	}
	n := l.newNode(data)
	n.next = predecessor.next
	n.prev = predecessor
	if predecessor.next != nil {
		predecessor.next.prev = n
	} else {
		l.tail = n
	}
	predecessor.next = n
	l.logger.Debugw("Inserted node", "index", index)
	return nil
}

func (l *DoubleLinkedList[T]) RemoveAtIndex(index int) stackerr.Error {
	if index < 0 {
		return l.fail(negativeIndex(l.listType, index))
	}
	if index == 0 {
		l.RemoveAtHead()
		return nil
	}
	predecessor := l.nodeAt(index - 1)
	if predecessor == nil || predecessor.next == nil {
		return l.fail(outOfRange(l.listType, index, l.Size()))
	}
	removed := predecessor.next
	predecessor.next = removed.next
	if removed.next != nil {
		removed.next.prev = predecessor
	} else {
		l.tail = predecessor
	}
	removed.unlink()
	l.logger.Debugw("Removed node", "index", index)
	return nil
}

// Clear removes every node from the list.
func (l *DoubleLinkedList[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.unlink()
		n = next
	}
	l.head, l.tail = nil, nil
	l.logger.Debugw("Cleared list")
}

// Validate reports broken back-links, a stale tail, and any cycle.
func (l *DoubleLinkedList[T]) Validate() error {
	return l.validate(l.tail, true)
}
