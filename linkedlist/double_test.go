package linkedlist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

// requireLinks checks the back-links and cached tail of a list against the
// expected values.
func requireLinks(t *testing.T, l *DoubleLinkedList[int], values ...int) {
	t.Helper()
	require.NoError(t, l.Validate())
	if len(values) == 0 {
		require.Nil(t, l.Head())
		require.Nil(t, l.Tail())
		return
	}
	require.Nil(t, l.Head().Prev())
	require.Nil(t, l.Tail().Next())
	require.True(t, l.Tail().EqualValue(values[len(values)-1]))

	backward := []int{}
	for n := range l.Backward() {
		backward = append(backward, n.Data())
	}
	for i, j := 0, len(backward)-1; i < j; i, j = i+1, j-1 {
		backward[i], backward[j] = backward[j], backward[i]
	}
	require.Equal(t, values, backward)
}

func TestDoubleLinks(t *testing.T) {
	l, err := NewDouble(5, 6, 7)
	require.NoError(t, err)
	requireLinks(t, l, 5, 6, 7)

	require.NoError(t, l.InsertAtHead(4))
	requireLinks(t, l, 4, 5, 6, 7)

	require.NoError(t, l.InsertAtIndex(9, 2))
	requireLinks(t, l, 4, 5, 9, 6, 7)

	require.NoError(t, l.InsertAtIndex(8, 5))
	requireLinks(t, l, 4, 5, 9, 6, 7, 8)

	require.NoError(t, l.RemoveAtIndex(5))
	requireLinks(t, l, 4, 5, 9, 6, 7)

	require.NoError(t, l.RemoveAtIndex(2))
	requireLinks(t, l, 4, 5, 6, 7)

	l.RemoveAtTail()
	requireLinks(t, l, 4, 5, 6)

	l.RemoveAtHead()
	requireLinks(t, l, 5, 6)

	require.NoError(t, l.Set(1, 1))
	requireLinks(t, l, 5, 1)

	l.RemoveAtTail()
	requireLinks(t, l, 5)
	l.RemoveAtTail()
	requireLinks(t, l)

	require.NoError(t, l.InsertAtTail(3))
	requireLinks(t, l, 3)
	require.NoError(t, l.RemoveAtIndex(0))
	requireLinks(t, l)
}

func TestDoubleTailIsConstantTime(t *testing.T) {
	l, err := NewDouble(1, 2, 3)
	require.NoError(t, err)

	// a tail insert must not walk from the head
	l.head.next.next = nil
	require.NoError(t, l.InsertAtTail(4))
	assert.True(t, l.Tail().EqualValue(4))
	assert.True(t, l.Tail().Prev().EqualValue(3))
}

func TestDoubleBackwardStopsEarly(t *testing.T) {
	l, err := NewDouble(1, 2, 3)
	require.NoError(t, err)
	for n := range l.Backward() {
		assert.Equal(t, 3, n.Data())
		break
	}
}

func TestDoubleValidate(t *testing.T) {
	t.Run("BrokenBackLink", func(t *testing.T) {
		l, err := NewDouble(5, 6, 7)
		require.NoError(t, err)
		l.head.next.prev = nil

		verr := l.Validate()
		require.Len(t, multierr.Errors(verr), 1)
		assert.True(t, errors.Is(multierr.Errors(verr)[0], ErrBrokenLink))
	})

	t.Run("StaleTail", func(t *testing.T) {
		l, err := NewDouble(5, 6, 7)
		require.NoError(t, err)
		l.tail = l.head

		verr := l.Validate()
		require.Len(t, multierr.Errors(verr), 1)
		assert.Contains(t, verr.Error(), "cached tail")
	})

	t.Run("HeadBackLink", func(t *testing.T) {
		l, err := NewDouble(5, 6)
		require.NoError(t, err)
		l.head.prev = l.tail

		verr := l.Validate()
		require.Len(t, multierr.Errors(verr), 1)
		assert.Contains(t, verr.Error(), "head has a back-link")
	})

	t.Run("MissingTail", func(t *testing.T) {
		l, err := NewDouble(5)
		require.NoError(t, err)
		l.tail = nil
		assert.True(t, errors.Is(l.Validate(), ErrBrokenLink))
	})

	t.Run("Cycle", func(t *testing.T) {
		l, err := NewDouble(5, 6, 7)
		require.NoError(t, err)
		l.tail.next = l.head

		verr := l.Validate()
		require.Len(t, multierr.Errors(verr), 1)
		assert.Contains(t, verr.Error(), "cycle")
	})
}

func TestDoubleAssertsHeadTailSymmetry(t *testing.T) {
	l, err := NewDouble(5)
	require.NoError(t, err)
	l.tail = l.newNode(6)
	assert.Panics(t, func() { l.RemoveAtHead() })

	l, err = NewDouble(5)
	require.NoError(t, err)
	l.head = l.newNode(6)
	assert.Panics(t, func() { l.RemoveAtTail() })
}
