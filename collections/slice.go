package collections

import (
	"iter"

	"github.com/Invicton-Labs/go-stackerr"
)

// SliceFromSeq collects every value of a sequence into a new slice. The
// result is never nil, so an empty sequence gives an empty slice.
func SliceFromSeq[T any](seq iter.Seq[T]) []T {
	out := []T{}
	for v := range seq {
		out = append(out, v)
	}
	return out
}

// TransformSlice maps an input slice to an output slice using a transformation function.
func TransformSlice[In any, Out any](in []In, transformationFunc func(value In) (transformed Out)) (out []Out) {
	if in == nil {
		return nil
	}
	out = make([]Out, len(in))
	for i, v := range in {
		out[i] = transformationFunc(v)
	}
	return out
}

// TransformSliceWithErr maps an input slice to an output slice using a transformation function and allows
// returning an error.
func TransformSliceWithErr[In any, Out any](in []In, transformationFunc func(value In) (transformed Out, err stackerr.Error)) (out []Out, err stackerr.Error) {
	if in == nil {
		return nil, nil
	}
	out = make([]Out, len(in))
	for i, v := range in {
		out[i], err = transformationFunc(v)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// SlicePairwise checks whether a relation holds for every pair of elements at the
// same position in two slices. If the slices are of unequal length, it will return
// false without evaluating the relation.
func SlicePairwise[SliceType any](in1 []SliceType, in2 []SliceType, relation func(val1 SliceType, val2 SliceType) bool) bool {
	if in1 == nil && in2 == nil {
		return true
	} else if in1 == nil || in2 == nil {
		return false
	}
	if len(in1) != len(in2) {
		return false
	}
	for i := range in1 {
		if !relation(in1[i], in2[i]) {
			return false
		}
	}
	return true
}
