package script_test

import (
	"bytes"
	"io/fs"
	"os"
	"strings"
	"testing"

	"github.com/fern-lang/fern/pkg/runtime"
	"github.com/fern-lang/fern/pkg/script"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/require"
)

func TestScripts(t *testing.T) {
	t.Parallel()

	dir := os.DirFS("./testdata/")
	testFiles, err := fs.Glob(dir, "*.txt")
	if err != nil {
		t.Fatal(err)
	}

	for _, testFile := range testFiles {
		name := strings.Split(testFile, ".")[0]
		t.Run(name, func(t *testing.T) {
			r := require.New(t)
			logger := slogt.New(t)

			testData, err := fs.ReadFile(dir, testFile)
			r.NoError(err)

			parts := bytes.SplitN(testData, []byte("\n---\n"), 2)
			source := bytes.TrimSpace(parts[0])
			expected := strings.TrimSpace(string(parts[1]))

			var output bytes.Buffer

			heap := runtime.NewHeap(logger, runtime.DefaultFuncs(), 0, &output, true)

			prog, err := script.Parse(testFile, bytes.NewReader(source))
			r.NoError(err)

			err = script.NewExecutor(logger, heap).Run(prog)
			r.NoError(err)

			result := strings.TrimSpace(output.String())
			r.Equal(expected, result)
		})
	}
}

func TestParse_CollectsAllErrors(t *testing.T) {
	r := require.New(t)

	source := strings.Join([]string{
		"int a forty-two",
		"int a 1",
		"frobnicate a",
		"print",
	}, "\n")

	_, err := script.Parse("bad.fs", strings.NewReader(source))
	r.Error(err)

	var errs *script.ErrorSet
	r.ErrorAs(err, &errs)
	r.Len(errs.Errs, 3)
	r.Contains(err.Error(), "bad.fs: line 1")
	r.Contains(err.Error(), "unknown op")
}

func TestParse_CommentsAndBlanks(t *testing.T) {
	r := require.New(t)

	source := "# header\n\nint a 1\n  # indented comment\nprint a\n"
	prog, err := script.Parse("ok.fs", strings.NewReader(source))
	r.NoError(err)
	r.Len(prog.Ops, 2)
}

func TestRun_UndefinedName(t *testing.T) {
	r := require.New(t)
	logger := slogt.New(t)

	prog, err := script.Parse("undef.fs", strings.NewReader("print missing\n"))
	r.NoError(err)

	var output bytes.Buffer
	heap := runtime.NewHeap(logger, runtime.DefaultFuncs(), 0, &output, true)

	err = script.NewExecutor(logger, heap).Run(prog)
	r.ErrorIs(err, script.ErrUndefinedName)
	r.Contains(err.Error(), "undef.fs: line 1")
}

func TestRun_CallErrorCarriesLine(t *testing.T) {
	r := require.New(t)
	logger := slogt.New(t)

	source := "int a 1\ncall r a a\n"
	prog, err := script.Parse("call.fs", strings.NewReader(source))
	r.NoError(err)

	var output bytes.Buffer
	heap := runtime.NewHeap(logger, runtime.DefaultFuncs(), 0, &output, true)

	err = script.NewExecutor(logger, heap).Run(prog)
	r.ErrorIs(err, runtime.ErrNotCallable)
	r.Contains(err.Error(), "line 2")
}
