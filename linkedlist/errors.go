package linkedlist

import (
	"errors"
	"fmt"

	"github.com/Invicton-Labs/go-stackerr"
)

var (
	// ErrOutOfRange is returned when an index does not refer to an existing
	// node, or is past the last valid insertion position.
	ErrOutOfRange = errors.New("index out of range")
	// ErrInvalidArgument is returned for negative indices, and for data that
	// is itself a node.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTypeMismatch means traversal reached a node of the wrong link type.
	ErrTypeMismatch = errors.New("node type mismatch")
	// ErrBrokenLink means the links between nodes no longer describe a
	// valid list.
	ErrBrokenLink = errors.New("broken link")
)

func outOfRange(listType string, index int, size int) stackerr.Error {
	return stackerr.Errorf("Index %d does not exist for %s of size %d: %w", index, listType, size, ErrOutOfRange).With(map[string]any{
		"list_type": listType,
		"index":     index,
		"size":      size,
	})
}

func negativeIndex(listType string, index int) stackerr.Error {
	return stackerr.Errorf("Index must be non-negative, got %d: %w", index, ErrInvalidArgument).With(map[string]any{
		"list_type": listType,
		"index":     index,
	})
}

func nodeAsData(listType string, data any) stackerr.Error {
	return stackerr.Errorf("Cannot insert a node (%T) into a %s, insert its data instead: %w", data, listType, ErrInvalidArgument).WithSingle("list_type", listType)
}

func nilComparator(listType string) stackerr.Error {
	return stackerr.Errorf("A comparator is required to create a %s: %w", listType, ErrInvalidArgument).WithSingle("list_type", listType)
}

func typeMismatch(listType string, index int) stackerr.Error {
	return stackerr.Errorf("Node %d of %s carries a back-link: %w", index, listType, ErrTypeMismatch).With(map[string]any{
		"list_type": listType,
		"index":     index,
	})
}

func brokenLink(listType string, format string, args ...any) stackerr.Error {
	return stackerr.Errorf("%s: %s: %w", listType, fmt.Sprintf(format, args...), ErrBrokenLink).WithSingle("list_type", listType)
}
