package runtime_test

import (
	"testing"

	"github.com/fern-lang/fern/pkg/runtime"
	"github.com/stretchr/testify/require"
)

func TestCall_Identity(t *testing.T) {
	r := require.New(t)
	h, _ := newTestHeap(t, 0)

	arg := h.NewInt(5)
	cls := h.NewClosure("identity", nil)

	ret, err := h.Call(cls, arg)
	r.NoError(err)
	r.Equal(arg, ret)
}

func TestCall_Capture(t *testing.T) {
	r := require.New(t)
	h, _ := newTestHeap(t, 0)

	captured := h.NewInt(9)
	cls := h.NewClosure("capture0", []runtime.Ref{captured})

	ret, err := h.Call(cls, runtime.InvalidRef)
	r.NoError(err)
	r.Equal(captured, ret)
}

func TestCall_AddEnv(t *testing.T) {
	r := require.New(t)
	h, output := newTestHeap(t, 0)

	cls := h.NewClosure("addenv", []runtime.Ref{h.NewInt(40)})

	ret, err := h.Call(cls, h.NewInt(2))
	r.NoError(err)

	h.Print(ret)
	r.Equal("42\n", output.String())
}

func TestCall_NotCallable(t *testing.T) {
	r := require.New(t)
	h, _ := newTestHeap(t, 0)

	ref := h.NewInt(1)
	_, err := h.Call(ref, ref)
	r.ErrorIs(err, runtime.ErrNotCallable)

	_, err = h.Call(runtime.InvalidRef, ref)
	r.ErrorIs(err, runtime.ErrNotCallable)
}

func TestCall_UnknownEntryPoint(t *testing.T) {
	r := require.New(t)
	h, _ := newTestHeap(t, 0)

	cls := h.NewClosure("nope", nil)
	_, err := h.Call(cls, runtime.InvalidRef)
	r.ErrorIs(err, runtime.ErrUnknownFunc)
}

func TestCall_EntryPointError(t *testing.T) {
	r := require.New(t)
	h, _ := newTestHeap(t, 0)

	cls := h.NewClosure("addenv", []runtime.Ref{h.NewClosure("identity", nil)})
	_, err := h.Call(cls, h.NewInt(1))
	r.Error(err)
	r.Contains(err.Error(), "addenv")
}
