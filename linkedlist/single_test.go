package linkedlist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestSingleNeverSetsBackLinks(t *testing.T) {
	l, err := NewSingle(5, 6, 7)
	require.NoError(t, err)
	require.NoError(t, l.InsertAtHead(4))
	require.NoError(t, l.InsertAtIndex(9, 2))
	require.NoError(t, l.InsertAtTail(8))

	for n := range l.All() {
		assert.Nil(t, n.Prev())
	}
	assert.Equal(t, "[4, 5, 9, 6, 7, 8]", l.String())
}

func TestSingleLastNodes(t *testing.T) {
	l, err := NewSingle[int]()
	require.NoError(t, err)
	last, predecessor := l.lastNodes()
	assert.Nil(t, last)
	assert.Nil(t, predecessor)

	require.NoError(t, l.InsertAtTail(1))
	last, predecessor = l.lastNodes()
	assert.True(t, last.EqualValue(1))
	assert.Nil(t, predecessor)

	require.NoError(t, l.InsertAtTail(2))
	last, predecessor = l.lastNodes()
	assert.True(t, last.EqualValue(2))
	assert.True(t, predecessor.EqualValue(1))
}

func TestSingleHandBuiltNodes(t *testing.T) {
	l, err := NewSingle[int]()
	require.NoError(t, err)
	l.head = l.newNode(5)
	l.head.next = l.newNode(6)
	l.head.next.next = l.newNode(7)

	assert.False(t, l.IsEmpty())
	assert.Equal(t, 3, l.Size())
	assert.Equal(t, "[5, 6, 7]", l.String())
	h, err := l.Hash()
	require.NoError(t, err)
	assert.Equal(t, hashOf(t, 5, 6, 7), h)
}

func TestSingleValidate(t *testing.T) {
	t.Run("BackLink", func(t *testing.T) {
		l, err := NewSingle(5, 6, 7)
		require.NoError(t, err)
		l.head.next.prev = l.head
		l.head.next.next.prev = l.head.next

		verr := l.Validate()
		require.Error(t, verr)
		errs := multierr.Errors(verr)
		require.Len(t, errs, 2)
		for _, e := range errs {
			assert.True(t, errors.Is(e, ErrTypeMismatch))
		}
	})

	t.Run("Cycle", func(t *testing.T) {
		l, err := NewSingle(5, 6, 7)
		require.NoError(t, err)
		l.head.next.next.next = l.head

		verr := l.Validate()
		require.Error(t, verr)
		assert.Len(t, multierr.Errors(verr), 1)
		assert.True(t, errors.Is(verr, ErrBrokenLink))
	})

	t.Run("SelfLoop", func(t *testing.T) {
		l, err := NewSingle(5)
		require.NoError(t, err)
		l.head.next = l.head
		assert.True(t, errors.Is(l.Validate(), ErrBrokenLink))
	})
}
