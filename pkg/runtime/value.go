package runtime

// Kind discriminates the variants a heap slot can hold. The zero value is
// KindInvalid so destroyed or never-allocated slots read as unrecognized.
type Kind int

const (
	KindInvalid Kind = iota
	KindClosure
	KindInt
)

func (k Kind) String() string {
	switch k {
	case KindClosure:
		return "closure"
	case KindInt:
		return "int"
	default:
		return "invalid"
	}
}

// Ref is a handle to a value owned by a Heap. Refs held inside a closure
// environment are non-owning; the Heap outlives every closure referencing it.
type Ref int32

const InvalidRef Ref = -1

// EntryFunc is the callable entry point of a closure. It receives the heap,
// the closure's captured environment, and a single argument.
type EntryFunc func(h *Heap, env []Ref, arg Ref) (Ref, error)

// Funcs maps entry point symbols to their implementations. Closures store a
// symbol rather than a function value so heap images can be serialized and
// re-linked against a registry.
type Funcs map[string]EntryFunc

type slot struct {
	kind Kind
	n    int32
	sym  string
	env  []Ref
}
