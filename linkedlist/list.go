// Package linkedlist implements a singly linked list and a doubly linked
// list behind one LinkedList interface.
//
// Lists are not safe for concurrent use. To iterate over a list l:
//
//	for n := range l.All() {
//		// do something with n.Data()
//	}
package linkedlist

import (
	"iter"
	"strings"

	"github.com/Invicton-Labs/go-linkedlist/collections"
	"github.com/Invicton-Labs/go-linkedlist/comparison"
	"github.com/Invicton-Labs/go-linkedlist/constraints"
	"github.com/Invicton-Labs/go-linkedlist/log"
	"github.com/Invicton-Labs/go-stackerr"
	"github.com/emirpasic/gods/containers"
	"github.com/google/uuid"
)

type LinkedList[T any] interface {
	// Empty, Size, Clear, Values and String. Size is O(n).
	containers.Container

	// Head returns the first node, or nil if the list is empty.
	Head() *Node[T]
	// IsEmpty reports whether the list has no nodes. The complexity is O(1).
	IsEmpty() bool

	// InsertAtHead inserts a new node with the given data at the head of the list.
	InsertAtHead(data T) stackerr.Error
	// RemoveAtHead removes the head node. It does nothing on an empty list.
	RemoveAtHead()
	// InsertAtTail inserts a new node with the given data at the tail of the list.
	InsertAtTail(data T) stackerr.Error
	// RemoveAtTail removes the tail node. It does nothing on an empty list.
	RemoveAtTail()
	// InsertAtIndex inserts a new node so that it ends up at the given index.
	// Valid indices are 0 through Size(), inclusive.
	InsertAtIndex(data T, index int) stackerr.Error
	// RemoveAtIndex removes the node at the given index. Index 0 behaves
	// like RemoveAtHead, including on an empty list.
	RemoveAtIndex(index int) stackerr.Error

	// Get returns the node at the given index.
	Get(index int) (*Node[T], stackerr.Error)
	// Set overwrites the data of the node at the given index.
	Set(index int, value T) stackerr.Error

	// All returns a sequence of the nodes from head to tail. Each call
	// starts a new traversal at the head.
	All() iter.Seq[*Node[T]]

	// Equal reports whether both lists have the same size and every pair of
	// nodes at the same position is equal.
	Equal(other LinkedList[T]) bool
	// Less, LessOrEqual, Greater and GreaterOrEqual require the relation to
	// hold for every pair of nodes at the same position. Lists of different
	// sizes are never ordered, so all four return false for them.
	Less(other LinkedList[T]) bool
	LessOrEqual(other LinkedList[T]) bool
	Greater(other LinkedList[T]) bool
	GreaterOrEqual(other LinkedList[T]) bool

	// Hash returns the hash of the ordered sequence of node hashes. Equal
	// lists have equal hashes.
	Hash() (uint64, stackerr.Error)

	// Validate checks every structural invariant of the list and returns
	// all violations combined, or nil.
	Validate() error
}

// NewInput configures the element semantics and logging of a list.
type NewInput[T any] struct {
	// Comparator orders and equates element values. Required.
	Comparator comparison.Comparator[T]
	// Hasher hashes element values. Defaults to comparison.HashValue.
	Hasher comparison.Hasher[T]
	// Logger receives debug logs of every mutation. Defaults to log.Default().
	Logger log.Logger
}

func orderedInput[T constraints.Ordered]() NewInput[T] {
	return NewInput[T]{
		Comparator: comparison.Ordered[T](),
	}
}

// list holds the state and behaviour shared by both list types.
type list[T any] struct {
	id       string
	listType string
	head     *Node[T]
	cmp      comparison.Comparator[T]
	hash     comparison.Hasher[T]
	logger   log.Logger
}

func newList[T any](listType string, input NewInput[T]) (list[T], stackerr.Error) {
	if input.Comparator == nil {
		return list[T]{}, nilComparator(listType)
	}
	if input.Hasher == nil {
		input.Hasher = comparison.HashValue[T]
	}
	if input.Logger == nil {
		input.Logger = log.Default()
	}
	id := uuid.NewString()
	return list[T]{
		id:       id,
		listType: listType,
		cmp:      input.Comparator,
		hash:     input.Hasher,
		logger:   input.Logger.With("list_id", id, "list_type", listType),
	}, nil
}

func (l *list[T]) newNode(data T) *Node[T] {
	return &Node[T]{
		data: data,
		cmp:  l.cmp,
		hash: l.hash,
	}
}

// checkData rejects data that is already a node.
func (l *list[T]) checkData(data T) stackerr.Error {
	if isNode(data) {
		return l.fail(nodeAsData(l.listType, data))
	}
	return nil
}

// fail logs a rejected operation and returns its error.
func (l *list[T]) fail(err stackerr.Error) stackerr.Error {
	l.logger.WithError(err).Debugw("Rejected list operation")
	return err
}

// nodeAt returns the node at the given index, or nil if there is none.
func (l *list[T]) nodeAt(index int) *Node[T] {
	if index < 0 {
		return nil
	}
	i := 0
	for n := range l.All() {
		if i == index {
			return n
		}
		i++
	}
	return nil
}

func (l *list[T]) Head() *Node[T] {
	return l.head
}

func (l *list[T]) IsEmpty() bool {
	return l.head == nil
}

func (l *list[T]) Empty() bool {
	return l.IsEmpty()
}

func (l *list[T]) Size() int {
	count := 0
	for range l.All() {
		count++
	}
	return count
}

func (l *list[T]) All() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n) {
				return
			}
		}
	}
}

func (l *list[T]) nodes() []*Node[T] {
	return collections.SliceFromSeq(l.All())
}

func (l *list[T]) Get(index int) (*Node[T], stackerr.Error) {
	if index < 0 {
		return nil, l.fail(negativeIndex(l.listType, index))
	}
	n := l.nodeAt(index)
	if n == nil {
		return nil, l.fail(outOfRange(l.listType, index, l.Size()))
	}
	return n, nil
}

func (l *list[T]) Set(index int, value T) stackerr.Error {
	n, err := l.Get(index)
	if err != nil {
		return err
	}
	n.data = value
	l.logger.Debugw("Set node data", "index", index)
	return nil
}

// Values returns the data of every node, from head to tail.
func (l *list[T]) Values() []interface{} {
	return collections.TransformSlice(l.nodes(), func(n *Node[T]) interface{} {
		return n.data
	})
}

// String returns the data of every node, comma separated and enclosed in
// square brackets, e.g. "[5, 6, 7]".
func (l *list[T]) String() string {
	return "[" + strings.Join(collections.TransformSlice(l.nodes(), (*Node[T]).String), ", ") + "]"
}

// relation reports whether holds is true for every pair of nodes at the same
// position. It is false when the sizes differ or other is nil.
func (l *list[T]) relation(other LinkedList[T], holds func(n1 *Node[T], n2 *Node[T]) bool) bool {
	if other == nil {
		return false
	}
	return collections.SlicePairwise(l.nodes(), collections.SliceFromSeq(other.All()), holds)
}

func (l *list[T]) Equal(other LinkedList[T]) bool {
	return l.relation(other, (*Node[T]).Equal)
}

func (l *list[T]) Less(other LinkedList[T]) bool {
	return l.relation(other, (*Node[T]).Less)
}

func (l *list[T]) LessOrEqual(other LinkedList[T]) bool {
	return l.relation(other, (*Node[T]).LessOrEqual)
}

func (l *list[T]) Greater(other LinkedList[T]) bool {
	return l.relation(other, (*Node[T]).Greater)
}

func (l *list[T]) GreaterOrEqual(other LinkedList[T]) bool {
	return l.relation(other, (*Node[T]).GreaterOrEqual)
}

func (l *list[T]) Hash() (uint64, stackerr.Error) {
	return HashNodes(l.nodes()...)
}

// HashNodes hashes an ordered sequence of nodes. It equals the hash of a
// list holding nodes with the same data, and HashNodes[T]() is the hash of
// every empty list.
func HashNodes[T any](nodes ...*Node[T]) (uint64, stackerr.Error) {
	hashes, err := collections.TransformSliceWithErr(nodes, (*Node[T]).Hash)
	if err != nil {
		return 0, err
	}
	return comparison.HashTuple(hashes)
}
