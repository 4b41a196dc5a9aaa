package linkedlist

import (
	"go.uber.org/multierr"
)

// validate walks the list and collects every broken invariant. tail is the
// cached tail, only checked when hasBackLinks is set.
func (l *list[T]) validate(tail *Node[T], hasBackLinks bool) (errs error) {
	defer func() {
		for _, err := range multierr.Errors(errs) {
			l.logger.Error(err)
		}
	}()

	// A cycle would make every other walk endless, so check it first.
	slow, fast := l.head, l.head
	for fast != nil && fast.next != nil {
		slow, fast = slow.next, fast.next.next
		if slow == fast {
			return brokenLink(l.listType, "the nodes form a cycle")
		}
	}

	if hasBackLinks && l.head != nil && l.head.prev != nil {
		errs = multierr.Append(errs, brokenLink(l.listType, "the head has a back-link"))
	}

	var last *Node[T]
	index := 0
	for n := l.head; n != nil; n = n.next {
		if !hasBackLinks && n.prev != nil {
			errs = multierr.Append(errs, typeMismatch(l.listType, index))
		}
		if hasBackLinks && n.next != nil && n.next.prev != n {
			errs = multierr.Append(errs, brokenLink(l.listType, "the back-link of node %d does not point to node %d", index+1, index))
		}
		last = n
		index++
	}

	if hasBackLinks && tail != last {
		errs = multierr.Append(errs, brokenLink(l.listType, "the cached tail is not the last node"))
	}
	return errs
}
