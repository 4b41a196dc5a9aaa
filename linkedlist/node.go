package linkedlist

import (
	"fmt"

	"github.com/Invicton-Labs/go-linkedlist/comparison"
	"github.com/Invicton-Labs/go-linkedlist/constraints"
	"github.com/Invicton-Labs/go-stackerr"
)

// Node holds one value of a list and the links to its neighbours. Nodes
// are created by the list that owns them; prev is only ever set by a
// DoubleLinkedList and never owns the node it points to.
type Node[T any] struct {
	data T
	next *Node[T]
	prev *Node[T]

	cmp  comparison.Comparator[T]
	hash comparison.Hasher[T]
}

// nodeMarker is satisfied by Node and *Node of every element type, so
// insertions can refuse to wrap a node inside another node.
type nodeMarker interface {
	linkedListNode()
}

func (Node[T]) linkedListNode() {}

func isNode(data any) bool {
	_, ok := data.(nodeMarker)
	return ok
}

// NewNode creates a detached node for an ordered type.
func NewNode[T constraints.Ordered](data T) *Node[T] {
	return NewNodeWithComparator(data, comparison.Ordered[T](), nil)
}

// NewNodeWithComparator creates a detached node that compares its data with
// cmp. It panics with an error wrapping ErrInvalidArgument if cmp is nil.
// If hash is nil, the data is hashed by its structure.
func NewNodeWithComparator[T any](data T, cmp comparison.Comparator[T], hash comparison.Hasher[T]) *Node[T] {
	if cmp == nil {
		panic(nilComparator("Node"))
	}
	if hash == nil {
		hash = comparison.HashValue[T]
	}
	return &Node[T]{
		data: data,
		cmp:  cmp,
		hash: hash,
	}
}

// Data returns the value stored in the node.
func (n *Node[T]) Data() T {
	return n.data
}

// Next returns the following node, or nil at the end of the list.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the preceding node. It is always nil for nodes of a
// SingleLinkedList and for the head of a DoubleLinkedList.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

func (n *Node[T]) unlink() {
	n.next = nil // avoid memory leaks
	n.prev = nil // avoid memory leaks
}

// Equal reports whether both nodes hold equal data. A nil node is never equal.
func (n *Node[T]) Equal(other *Node[T]) bool {
	return other != nil && n.EqualValue(other.data)
}

// EqualValue compares the node's data with a bare value.
func (n *Node[T]) EqualValue(v T) bool {
	return comparison.Equal(n.cmp, n.data, v)
}

func (n *Node[T]) Less(other *Node[T]) bool {
	return other != nil && n.LessValue(other.data)
}

func (n *Node[T]) LessValue(v T) bool {
	return comparison.Less(n.cmp, n.data, v)
}

func (n *Node[T]) LessOrEqual(other *Node[T]) bool {
	return other != nil && n.LessOrEqualValue(other.data)
}

func (n *Node[T]) LessOrEqualValue(v T) bool {
	return comparison.LessOrEqual(n.cmp, n.data, v)
}

func (n *Node[T]) Greater(other *Node[T]) bool {
	return other != nil && n.GreaterValue(other.data)
}

func (n *Node[T]) GreaterValue(v T) bool {
	return comparison.Greater(n.cmp, n.data, v)
}

func (n *Node[T]) GreaterOrEqual(other *Node[T]) bool {
	return other != nil && n.GreaterOrEqualValue(other.data)
}

func (n *Node[T]) GreaterOrEqualValue(v T) bool {
	return comparison.GreaterOrEqual(n.cmp, n.data, v)
}

// Hash returns the hash of the node's data, so a node and an equal bare
// value hash identically.
func (n *Node[T]) Hash() (uint64, stackerr.Error) {
	return n.hash(n.data)
}

func (n *Node[T]) String() string {
	return fmt.Sprint(n.data)
}
