package comparison

import (
	"fmt"
	"math"
	"reflect"

	"github.com/Invicton-Labs/go-linkedlist/constraints"
	"github.com/Invicton-Labs/go-stackerr"
	"github.com/emirpasic/gods/utils"
	"github.com/mitchellh/hashstructure/v2"
)

// Comparator returns a negative number if a < b, zero if a == b,
// and a positive number if a > b. It returns Unordered when none of
// those hold, e.g. when either value is a NaN.
type Comparator[T any] func(a T, b T) int

// Unordered is the Comparator result for two values that are neither
// equal nor ordered. Every relation is false for it.
const Unordered = math.MinInt

// Hasher produces a hash for a value. Two values that a matching
// Comparator considers equal must produce the same hash.
type Hasher[T any] func(value T) (uint64, stackerr.Error)

// Ordered returns a Comparator that uses the native ordering operators
// of the type.
func Ordered[T constraints.Ordered]() Comparator[T] {
	return func(a T, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		case a == b:
			return 0
		}
		return Unordered
	}
}

// FromGods adapts an untyped gods comparator (e.g. utils.StringComparator,
// utils.TimeComparator) to a typed Comparator.
func FromGods[T any](c utils.Comparator) Comparator[T] {
	return func(a T, b T) int {
		return c(a, b)
	}
}

// Equal, Less, LessOrEqual, Greater and GreaterOrEqual evaluate a
// single relation using the given comparator.
func Equal[T any](c Comparator[T], a T, b T) bool {
	return c(a, b) == 0
}

func Less[T any](c Comparator[T], a T, b T) bool {
	r := c(a, b)
	return r < 0 && r != Unordered
}

func LessOrEqual[T any](c Comparator[T], a T, b T) bool {
	r := c(a, b)
	return r <= 0 && r != Unordered
}

func Greater[T any](c Comparator[T], a T, b T) bool {
	return c(a, b) > 0
}

func GreaterOrEqual[T any](c Comparator[T], a T, b T) bool {
	return c(a, b) >= 0
}

// HashValue hashes an arbitrary value by its structure. It is the
// default Hasher for list elements.
func HashValue[T any](value T) (uint64, stackerr.Error) {
	h, err := hashstructure.Hash(canonical(value), hashstructure.FormatV2, nil)
	if err != nil {
		return 0, stackerr.Wrap(err).WithSingle("type", fmt.Sprintf("%T", value))
	}
	return h, nil
}

// HashTuple hashes an ordered sequence of hashes. The order of the
// hashes is significant, and an empty sequence has a fixed hash.
func HashTuple(hashes []uint64) (uint64, stackerr.Error) {
	if hashes == nil {
		hashes = []uint64{}
	}
	h, err := hashstructure.Hash(hashes, hashstructure.FormatV2, nil)
	if err != nil {
		return 0, stackerr.Wrap(err)
	}
	return h, nil
}

// canonical maps values that compare equal but differ in their bits to a
// single representation. Negative zero becomes positive zero.
func canonical[T any](value T) any {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		if v.Float() == 0 {
			return reflect.Zero(v.Type()).Interface()
		}
	}
	return value
}
