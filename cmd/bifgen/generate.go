package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ppctools/bifgen/pkg/codegen"
	"github.com/ppctools/bifgen/pkg/mangle"
	"github.com/ppctools/bifgen/pkg/parser"
	"github.com/ppctools/bifgen/pkg/policy"
	"github.com/ppctools/bifgen/pkg/scanner"
)

// outputs tracks created output files so that any later failure can
// remove every artifact. A dependent build step then sees either a
// complete set of outputs or none at all.
type outputs struct {
	files []*os.File
	paths []string
}

func (o *outputs) create(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	o.files = append(o.files, f)
	o.paths = append(o.paths, path)
	return f, nil
}

// discard closes and removes everything created so far. Some files may
// already be closed; errors are not interesting on this path.
func (o *outputs) discard() {
	for _, f := range o.files {
		f.Close()
	}
	for _, p := range o.paths {
		os.Remove(p)
	}
}

// phaseCode maps an error to its phase code, diverting defensive
// conditions (line overrun, unencodable type) to the internal code.
func phaseCode(err error, code int) int {
	if errors.Is(err, scanner.ErrLineOverrun) ||
		errors.Is(err, mangle.ErrUnhandledType) {
		return ecInternal
	}
	return code
}

// generate runs the whole pipeline: open inputs, parse the built-in
// file, parse the overload file against its registries, then emit the
// three artifacts. The first failure aborts with a phase-coded error.
func generate(args []string, policyPath string, errOut io.Writer) error {
	fail := func(code int, err error) error {
		fmt.Fprintf(errOut, "%v\n", err)
		return &exitError{code: code, err: err}
	}

	pol := policy.Default()
	if policyPath != "" {
		var err error
		if pol, err = policy.Load(policyPath); err != nil {
			return fail(ecBadArgs, err)
		}
	}

	bifPath, ovldPath := args[0], args[1]
	headerPath, initPath, definesPath := args[2], args[3], args[4]

	bifText, err := os.ReadFile(bifPath)
	if err != nil {
		return fail(ecNoBif,
			fmt.Errorf("cannot read input built-in file '%s'", bifPath))
	}
	ovldText, err := os.ReadFile(ovldPath)
	if err != nil {
		return fail(ecNoOvld,
			fmt.Errorf("cannot read input overload file '%s'", ovldPath))
	}

	out := &outputs{}
	headerFile, err := out.create(headerPath)
	if err != nil {
		return fail(ecNoHeader,
			fmt.Errorf("cannot open header file '%s' for output", headerPath))
	}
	initFile, err := out.create(initPath)
	if err != nil {
		out.discard()
		return fail(ecNoInit,
			fmt.Errorf("cannot open init file '%s' for output", initPath))
	}
	definesFile, err := out.create(definesPath)
	if err != nil {
		out.discard()
		return fail(ecNoDefines,
			fmt.Errorf("cannot open defines file '%s' for output", definesPath))
	}

	// The built-in file must be fully parsed, with its id registry
	// complete, before the overload file is validated against it.
	m := parser.NewModel()
	if err := parser.ParseBif(bifPath, string(bifText), pol, m); err != nil {
		out.discard()
		return fail(phaseCode(err, ecParseBif), err)
	}
	if err := parser.ParseOvld(ovldPath, string(ovldText), pol, m); err != nil {
		out.discard()
		return fail(phaseCode(err, ecParseOvld), err)
	}

	g := codegen.New(m, pol, bifPath, ovldPath)

	if err := writeOut(g.WriteHeader, headerFile); err != nil {
		out.discard()
		return fail(ecWriteHeader,
			fmt.Errorf("output to '%s' failed: %v", headerPath, err))
	}
	if err := writeOut(g.WriteInit, initFile); err != nil {
		out.discard()
		return fail(ecWriteInit,
			fmt.Errorf("output to '%s' failed: %v", initPath, err))
	}
	if err := writeOut(g.WriteDefines, definesFile); err != nil {
		out.discard()
		return fail(ecWriteDefines,
			fmt.Errorf("output to '%s' failed: %v", definesPath, err))
	}

	return nil
}

// writeOut runs one emitter and closes its file, reporting either
// failure as a write failure.
func writeOut(emit func(io.Writer) error, f *os.File) error {
	if err := emit(f); err != nil {
		return err
	}
	return f.Close()
}
