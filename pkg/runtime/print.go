package runtime

import "fmt"

// Print writes a human-readable representation of ref to the heap's output:
// the decimal digits of an integer, or the literal <#closure> for a closure,
// each followed by a newline. Any other kind produces no output; in debug
// mode the fallthrough is logged since it usually indicates a caller defect.
func (h *Heap) Print(ref Ref) {
	s := h.slot(ref)
	if s == nil {
		if h.debug {
			h.logger.Warn("print of out-of-range ref", "ref", int32(ref))
		}
		return
	}

	switch s.kind {
	case KindClosure:
		fmt.Fprintf(h.stdout, "<#closure>\n")
	case KindInt:
		fmt.Fprintf(h.stdout, "%d\n", s.n)
	default:
		if h.debug {
			h.logger.Warn("print of unrecognized value kind", "ref", int32(ref), "kind", int(s.kind))
		}
	}
}
