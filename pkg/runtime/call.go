package runtime

import "fmt"

// Call applies the closure held by ref to a single argument. The closure's
// entry point symbol is resolved against the heap's registry.
func (h *Heap) Call(ref Ref, arg Ref) (Ref, error) {
	s := h.slot(ref)
	if s == nil || s.kind != KindClosure {
		return InvalidRef, fmt.Errorf("call of %s value: %w", h.Kind(ref), ErrNotCallable)
	}

	fn, ok := h.funcs[s.sym]
	if !ok {
		return InvalidRef, fmt.Errorf("call of %q: %w", s.sym, ErrUnknownFunc)
	}

	ret, err := fn(h, s.env, arg)
	if err != nil {
		return InvalidRef, fmt.Errorf("%s: %w", s.sym, err)
	}

	return ret, nil
}
