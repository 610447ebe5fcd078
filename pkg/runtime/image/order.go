package image

import (
	"fmt"
	"slices"
)

var ErrCycleDetected = fmt.Errorf("cycle detected")

// order returns values sorted so that every value appears after the
// environment entries it references. Entries referencing refs absent from
// the image impose no ordering. Ready values are taken in ref order, so the
// result is deterministic.
func order(values []Value) ([]Value, error) {
	byRef := make(map[int32]Value, len(values))
	for _, val := range values {
		byRef[val.Ref] = val
	}

	pending := make(map[int32]int, len(values))
	dependents := make(map[int32][]int32)

	var ready []int32
	for _, val := range values {
		count := 0
		for _, dep := range val.Env {
			if _, ok := byRef[dep]; !ok {
				continue
			}

			count++
			dependents[dep] = append(dependents[dep], val.Ref)
		}

		if count == 0 {
			ready = append(ready, val.Ref)
		} else {
			pending[val.Ref] = count
		}
	}

	slices.Sort(ready)

	list := make([]Value, 0, len(values))

	for len(ready) > 0 {
		var ref int32
		ref, ready = ready[0], ready[1:]
		list = append(list, byRef[ref])

		deps := dependents[ref]
		slices.Sort(deps)
		for _, dep := range deps {
			pending[dep]--
			if pending[dep] == 0 {
				delete(pending, dep)
				ready = append(ready, dep)
			}
		}
	}

	if len(pending) > 0 {
		return nil, ErrCycleDetected
	}

	return list, nil
}
