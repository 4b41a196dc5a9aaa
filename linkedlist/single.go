package linkedlist

import (
	"github.com/Invicton-Labs/go-linkedlist/constraints"
	"github.com/Invicton-Labs/go-stackerr"
)

const singleListType = "SingleLinkedList"

// SingleLinkedList is a linked list whose nodes only link forward. The
// tail is found by traversal, so tail operations are O(n).
type SingleLinkedList[T any] struct {
	list[T]
}

var _ LinkedList[int] = (*SingleLinkedList[int])(nil)

// NewSingle returns a SingleLinkedList of an ordered type, holding the
// given values in order.
func NewSingle[T constraints.Ordered](values ...T) (*SingleLinkedList[T], stackerr.Error) {
	return NewSingleWithInput(orderedInput[T](), values...)
}

// NewSingleWithInput returns a SingleLinkedList using the given element
// semantics, holding the given values in order.
func NewSingleWithInput[T any](input NewInput[T], values ...T) (*SingleLinkedList[T], stackerr.Error) {
	base, err := newList(singleListType, input)
	if err != nil {
		return nil, err
	}
	l := &SingleLinkedList[T]{list: base}
	for _, v := range values {
		if err := l.InsertAtTail(v); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// lastNodes returns the last node and the node before it. Both are nil for
// an empty list, and predecessor is nil for a list of one node.
func (l *SingleLinkedList[T]) lastNodes() (last *Node[T], predecessor *Node[T]) {
	last = l.head
	if last == nil {
		return nil, nil
	}
	for last.next != nil {
		predecessor = last
		last = last.next
	}
	return last, predecessor
}

func (l *SingleLinkedList[T]) InsertAtHead(data T) stackerr.Error {
	if err := l.checkData(data); err != nil {
		return err
	}
	n := l.newNode(data)
	n.next = l.head
	l.head = n
	l.logger.Debugw("Inserted node at head")
	return nil
}

func (l *SingleLinkedList[T]) RemoveAtHead() {
	old := l.head
	if old == nil {
		return
	}
	l.head = old.next
	old.unlink()
	l.logger.Debugw("Removed node at head")
}

func (l *SingleLinkedList[T]) InsertAtTail(data T) stackerr.Error {
	if err := l.checkData(data); err != nil {
		return err
	}
	n := l.newNode(data)
	if last, _ := l.lastNodes(); last != nil {
		last.next = n
	} else {
		l.head = n
	}
	l.logger.Debugw("Inserted node at tail")
	return nil
}

func (l *SingleLinkedList[T]) RemoveAtTail() {
	last, predecessor := l.lastNodes()
	if last == nil {
		return
	}
	if predecessor != nil {
		predecessor.next = nil
	} else {
		l.head = nil
	}
	last.unlink()
	l.logger.Debugw("Removed node at tail")
}

func (l *SingleLinkedList[T]) InsertAtIndex(data T, index int) stackerr.Error {
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
	predecessor.next = n
	l.logger.Debugw("Inserted node", "index", index)
	return nil
}

func (l *SingleLinkedList[T]) RemoveAtIndex(index int) stackerr.Error {
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
	removed.unlink()
	l.logger.Debugw("Removed node", "index", index)
	return nil
}

// Clear removes every node from the list.
func (l *SingleLinkedList[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.unlink()
		n = next
	}
	l.head = nil
	l.logger.Debugw("Cleared list")
}

// Validate reports any node that carries a back-link, and any cycle.
func (l *SingleLinkedList[T]) Validate() error {
	return l.validate(nil, false)
}
