package script

import (
	"fmt"
	"log/slog"

	"github.com/fern-lang/fern/pkg/runtime"
)

// Executor runs a parsed program against a heap, tracking name bindings for
// the refs each op produces.
type Executor struct {
	logger *slog.Logger
	heap   *runtime.Heap

	names map[string]runtime.Ref
}

func NewExecutor(logger *slog.Logger, heap *runtime.Heap) *Executor {
	return &Executor{
		logger: logger,
		heap:   heap,
		names:  make(map[string]runtime.Ref),
	}
}

func (e *Executor) Run(prog *Program) error {
	for _, op := range prog.Ops {
		err := e.run(op)
		if err != nil {
			return FileError{File: prog.File, Err: LineError{Line: op.Pos(), Err: err}}
		}
	}

	return nil
}

func (e *Executor) run(op Op) error {
	switch op := op.(type) {
	case IntOp:
		e.logger.Debug("int", "name", op.Name, "n", op.N)
		e.names[op.Name] = e.heap.NewInt(op.N)
	case ClosureOp:
		e.logger.Debug("cls", "name", op.Name, "sym", op.Sym, "env", op.Env)

		var env []runtime.Ref
		for _, name := range op.Env {
			ref, err := e.resolve(name)
			if err != nil {
				return err
			}
			env = append(env, ref)
		}

		e.names[op.Name] = e.heap.NewClosure(op.Sym, env)
	case CallOp:
		e.logger.Debug("call", "name", op.Name, "closure", op.Closure, "arg", op.Arg)

		cls, err := e.resolve(op.Closure)
		if err != nil {
			return err
		}

		arg, err := e.resolve(op.Arg)
		if err != nil {
			return err
		}

		ret, err := e.heap.Call(cls, arg)
		if err != nil {
			return err
		}

		e.names[op.Name] = ret
	case PrintOp:
		e.logger.Debug("print", "name", op.Name)

		ref, err := e.resolve(op.Name)
		if err != nil {
			return err
		}

		e.heap.Print(ref)
	case DestroyOp:
		e.logger.Debug("destroy", "name", op.Name)

		ref, err := e.resolve(op.Name)
		if err != nil {
			return err
		}

		e.heap.Destroy(ref)
	default:
		return fmt.Errorf("unhandled op %T", op)
	}

	return nil
}

func (e *Executor) resolve(name string) (runtime.Ref, error) {
	if name == "_" {
		return runtime.InvalidRef, nil
	}

	ref, ok := e.names[name]
	if !ok {
		return runtime.InvalidRef, fmt.Errorf("%w: %q", ErrUndefinedName, name)
	}

	return ref, nil
}
