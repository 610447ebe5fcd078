package runtime

import "fmt"

var (
	ErrOutOfMemory = fmt.Errorf("out of memory")
	ErrNotCallable = fmt.Errorf("not a closure")
	ErrUnknownFunc = fmt.Errorf("unknown entry point")
)
