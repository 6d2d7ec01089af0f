package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestRejectsWrongArgCount(t *testing.T) {
	tests := [][]string{
		{},
		{"only.def"},
		{"a.def", "b.def", "c.h", "d.c"},
		{"a.def", "b.def", "c.h", "d.c", "e.h", "extra"},
	}

	for i, args := range tests {
		var out, errOut bytes.Buffer
		cmd := newRootCmd(&out, &errOut)
		cmd.SetArgs(args)

		err := cmd.Execute()
		if err == nil {
			t.Fatalf("tests[%d] - expected argument error, got none", i)
		}
		var xe *exitError
		if errors.As(err, &xe) {
			t.Errorf("tests[%d] - argument errors should not carry a phase code", i)
		}
	}
}

func TestVersionFlag(t *testing.T) {
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs([]string{"--version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(out.String(), version) {
		t.Errorf("version output wrong. got=%q", out.String())
	}
}

func TestHelpNamesAllFiveFiles(t *testing.T) {
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	for _, want := range []string{"<bif-file>", "<ovld-file>", "<header-file>",
		"<init-file>", "<defines-file>", "--policy"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("help missing %q", want)
		}
	}
}
