package runtime

import "fmt"

// DefaultFuncs returns the builtin entry point registry. Generated code
// normally links its own compiled entry points on top of these.
func DefaultFuncs() Funcs {
	return Funcs{
		"identity": func(h *Heap, env []Ref, arg Ref) (Ref, error) {
			return arg, nil
		},
		"capture0": func(h *Heap, env []Ref, arg Ref) (Ref, error) {
			if len(env) == 0 {
				return InvalidRef, fmt.Errorf("empty environment")
			}

			return env[0], nil
		},
		"addenv": func(h *Heap, env []Ref, arg Ref) (Ref, error) {
			if len(env) == 0 {
				return InvalidRef, fmt.Errorf("empty environment")
			}

			a, ok := h.Int(env[0])
			if !ok {
				return InvalidRef, fmt.Errorf("captured value is not an integer")
			}

			b, ok := h.Int(arg)
			if !ok {
				return InvalidRef, fmt.Errorf("argument is not an integer")
			}

			return h.NewInt(a + b), nil
		},
	}
}
