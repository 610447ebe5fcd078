package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads an op script. Parse errors are collected across lines and
// returned together so a malformed script reports every bad line at once.
func Parse(file string, r io.Reader) (*Program, error) {
	errs := newErrorSet()

	prog := &Program{File: file}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++

		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		op, err := parseLine(line, strings.Fields(text))
		if err != nil {
			errs.Add(FileError{File: file, Err: LineError{Line: line, Err: err}})
			continue
		}

		prog.Ops = append(prog.Ops, op)
	}

	err := scanner.Err()
	if err != nil {
		errs.Add(FileError{File: file, Err: err})
	}

	if len(errs.Errs) > 0 {
		return nil, errs
	}

	return prog, nil
}

func parseLine(line int, fields []string) (Op, error) {
	switch fields[0] {
	case "int":
		if len(fields) != 3 {
			return nil, fmt.Errorf("int expects a name and an integer")
		}

		n, err := strconv.ParseInt(fields[2], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", fields[2], err)
		}

		return IntOp{Line: line, Name: fields[1], N: int32(n)}, nil
	case "cls":
		if len(fields) < 3 {
			return nil, fmt.Errorf("cls expects a name and an entry point symbol")
		}

		return ClosureOp{Line: line, Name: fields[1], Sym: fields[2], Env: fields[3:]}, nil
	case "call":
		if len(fields) != 4 {
			return nil, fmt.Errorf("call expects a name, a closure, and an argument")
		}

		return CallOp{Line: line, Name: fields[1], Closure: fields[2], Arg: fields[3]}, nil
	case "print":
		if len(fields) != 2 {
			return nil, fmt.Errorf("print expects a name")
		}

		return PrintOp{Line: line, Name: fields[1]}, nil
	case "destroy":
		if len(fields) != 2 {
			return nil, fmt.Errorf("destroy expects a name")
		}

		return DestroyOp{Line: line, Name: fields[1]}, nil
	default:
		return nil, fmt.Errorf("unknown op %q", fields[0])
	}
}
