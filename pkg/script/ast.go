// Package script parses and executes runtime op scripts: a line-oriented
// format for driving the value runtime from tests and the CLI.
//
//	int a 42          construct an integer bound to a
//	cls c addenv a    construct a closure over entry point addenv capturing a
//	call r c b        apply c to b, binding the result to r
//	print a           print a value
//	destroy a         release a value
//
// The token _ denotes an invalid ref in argument and environment positions.
// Lines starting with # and blank lines are ignored.
package script

type Program struct {
	File string
	Ops  []Op
}

type Op interface {
	op()
	Pos() int
}

type IntOp struct {
	Line int
	Name string
	N    int32
}

type ClosureOp struct {
	Line int
	Name string
	Sym  string
	Env  []string
}

type CallOp struct {
	Line    int
	Name    string
	Closure string
	Arg     string
}

type PrintOp struct {
	Line int
	Name string
}

type DestroyOp struct {
	Line int
	Name string
}

func (IntOp) op()     {}
func (ClosureOp) op() {}
func (CallOp) op()    {}
func (PrintOp) op()   {}
func (DestroyOp) op() {}

func (o IntOp) Pos() int     { return o.Line }
func (o ClosureOp) Pos() int { return o.Line }
func (o CallOp) Pos() int    { return o.Line }
func (o PrintOp) Pos() int   { return o.Line }
func (o DestroyOp) Pos() int { return o.Line }
