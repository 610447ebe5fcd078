package runtime_test

import (
	"fmt"
	"testing"

	"github.com/fern-lang/fern/pkg/runtime"
	"github.com/stretchr/testify/require"
)

func TestPrint_Int(t *testing.T) {
	r := require.New(t)
	h, output := newTestHeap(t, 0)

	h.Print(h.NewInt(42))
	r.Equal("42\n", output.String())
}

func TestPrint_NegativeInt(t *testing.T) {
	r := require.New(t)
	h, output := newTestHeap(t, 0)

	h.Print(h.NewInt(-7))
	r.Equal("-7\n", output.String())
}

func TestPrint_IntBounds(t *testing.T) {
	r := require.New(t)
	h, output := newTestHeap(t, 0)

	h.Print(h.NewInt(2147483647))
	h.Print(h.NewInt(-2147483648))
	h.Print(h.NewInt(0))
	r.Equal("2147483647\n-2147483648\n0\n", output.String())
}

func TestPrint_Closure(t *testing.T) {
	r := require.New(t)
	h, output := newTestHeap(t, 0)

	env := []runtime.Ref{h.NewInt(1), h.NewInt(2)}
	h.Print(h.NewClosure("addenv", env))
	r.Equal("<#closure>\n", output.String())
}

func TestPrint_ClosureEmptyEnvironment(t *testing.T) {
	r := require.New(t)
	h, output := newTestHeap(t, 0)

	h.Print(h.NewClosure("identity", nil))
	r.Equal("<#closure>\n", output.String())
}

func TestPrint_UnrecognizedKindIsSilent(t *testing.T) {
	r := require.New(t)
	h, output := newTestHeap(t, 0)

	ref := h.NewInt(1)
	h.Destroy(ref)

	h.Print(ref)
	h.Print(runtime.InvalidRef)
	h.Print(runtime.Ref(1000))
	r.Empty(output.String())
}

func TestPrint_Sequence(t *testing.T) {
	r := require.New(t)
	h, output := newTestHeap(t, 0)

	var expected string
	for i := int32(-3); i <= 3; i++ {
		h.Print(h.NewInt(i))
		expected += fmt.Sprintf("%d\n", i)
	}

	r.Equal(expected, output.String())
}
