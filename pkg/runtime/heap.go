package runtime

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Heap owns every value a program constructs. Values are allocated
// individually into slots, referenced by Ref, and released by an explicit
// Destroy call. There is no reference counting and no automatic reclamation.
type Heap struct {
	logger *slog.Logger
	stdout io.Writer
	funcs  Funcs

	debug    bool
	capacity int
	oom      func(error)

	slots []slot
	free  []Ref

	live   int
	allocs uint64
	frees  uint64
}

// Stats reports allocation counters for a Heap.
type Stats struct {
	Live   int
	Allocs uint64
	Frees  uint64
}

// NewHeap creates an empty heap. A capacity of zero or less means unbounded.
// Constructed values print through stdout.
func NewHeap(logger *slog.Logger, funcs Funcs, capacity int, stdout io.Writer, debug bool) *Heap {
	h := &Heap{
		logger:   logger,
		stdout:   stdout,
		funcs:    funcs,
		debug:    debug,
		capacity: capacity,
	}

	h.oom = func(err error) {
		h.logger.Error("allocation failed", "err", err)
		os.Exit(1)
	}

	return h
}

// OnOutOfMemory replaces the handler invoked when an allocation exceeds the
// heap's capacity. The default handler logs a diagnostic and exits the
// process; allocation exhaustion is not a recoverable error for callers.
func (h *Heap) OnOutOfMemory(fn func(error)) {
	h.oom = fn
}

func (h *Heap) alloc() Ref {
	if len(h.free) > 0 {
		ref := h.free[len(h.free)-1]
		h.free = h.free[:len(h.free)-1]
		h.live++
		h.allocs++
		return ref
	}

	if h.capacity > 0 && len(h.slots) >= h.capacity {
		h.oom(fmt.Errorf("%w: %d live values at capacity %d", ErrOutOfMemory, h.live, h.capacity))
		return InvalidRef
	}

	h.slots = append(h.slots, slot{})
	h.live++
	h.allocs++
	return Ref(len(h.slots) - 1)
}

func (h *Heap) slot(ref Ref) *slot {
	if ref < 0 || int(ref) >= len(h.slots) {
		return nil
	}
	return &h.slots[ref]
}

// NewInt constructs an integer value holding n.
func (h *Heap) NewInt(n int32) Ref {
	ref := h.alloc()
	if ref == InvalidRef {
		return InvalidRef
	}

	s := &h.slots[ref]
	s.kind = KindInt
	s.n = n

	return ref
}

// NewClosure constructs a closure value referencing the entry point named by
// sym and takes ownership of env. The symbol is resolved against the heap's
// registry at call time, so construction never fails for an unknown symbol.
func (h *Heap) NewClosure(sym string, env []Ref) Ref {
	ref := h.alloc()
	if ref == InvalidRef {
		return InvalidRef
	}

	s := &h.slots[ref]
	s.kind = KindClosure
	s.sym = sym
	s.env = env

	return ref
}

// Destroy releases the slot held by ref and the environment container if the
// value is a closure. Values referenced by the environment are not owned by
// this call and are left untouched. The caller must not use ref afterward;
// the slot may be reused by a later allocation.
func (h *Heap) Destroy(ref Ref) {
	s := h.slot(ref)
	if s == nil || s.kind == KindInvalid {
		return
	}

	*s = slot{}
	h.free = append(h.free, ref)
	h.live--
	h.frees++
}

// Kind reports the variant held by ref, or KindInvalid for a destroyed or
// out-of-range handle.
func (h *Heap) Kind(ref Ref) Kind {
	s := h.slot(ref)
	if s == nil {
		return KindInvalid
	}
	return s.kind
}

// Int returns the integer payload of ref.
func (h *Heap) Int(ref Ref) (int32, bool) {
	s := h.slot(ref)
	if s == nil || s.kind != KindInt {
		return 0, false
	}
	return s.n, true
}

// Sym returns the entry point symbol of a closure value.
func (h *Heap) Sym(ref Ref) (string, bool) {
	s := h.slot(ref)
	if s == nil || s.kind != KindClosure {
		return "", false
	}
	return s.sym, true
}

// Env returns the captured environment of a closure value. The returned
// slice is owned by the value and must not be retained past its destruction.
func (h *Heap) Env(ref Ref) ([]Ref, bool) {
	s := h.slot(ref)
	if s == nil || s.kind != KindClosure {
		return nil, false
	}
	return s.env, true
}

func (h *Heap) Stats() Stats {
	return Stats{
		Live:   h.live,
		Allocs: h.allocs,
		Frees:  h.frees,
	}
}

// Live iterates all currently constructed values in ref order.
func (h *Heap) Live(fn func(Ref) error) error {
	for i := range h.slots {
		if h.slots[i].kind == KindInvalid {
			continue
		}

		err := fn(Ref(i))
		if err != nil {
			return err
		}
	}

	return nil
}
