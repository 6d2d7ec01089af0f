package scanner

import (
	"errors"
	"strings"
	"testing"
)

func TestAdvanceLineSkipsBlanksAndComments(t *testing.T) {
	input := "\n; a comment line\n   \t\n  first\n\n; another\nsecond\n"

	s := New(input)

	ok, err := s.AdvanceLine()
	if err != nil || !ok {
		t.Fatalf("AdvanceLine() = %v, %v, want true, nil", ok, err)
	}
	if s.Line() != 4 {
		t.Errorf("line number wrong. expected=4, got=%d", s.Line())
	}
	if got := s.MatchIdentifier(); got != "first" {
		t.Errorf("identifier wrong. expected=%q, got=%q", "first", got)
	}

	ok, err = s.AdvanceLine()
	if err != nil || !ok {
		t.Fatalf("AdvanceLine() = %v, %v, want true, nil", ok, err)
	}
	if s.Line() != 7 {
		t.Errorf("line number wrong. expected=7, got=%d", s.Line())
	}
	if got := s.MatchIdentifier(); got != "second" {
		t.Errorf("identifier wrong. expected=%q, got=%q", "second", got)
	}

	ok, err = s.AdvanceLine()
	if err != nil || ok {
		t.Fatalf("AdvanceLine() at EOF = %v, %v, want false, nil", ok, err)
	}
}

func TestMatchIdentifier(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		endPos   int
	}{
		{"__builtin_foo (", "__builtin_foo", 13},
		{"vsll,", "vsll", 4},
		{"ABS_V16QI absv16qi2", "ABS_V16QI", 9},
		{"(int)", "", 0},
		{"", "", 0},
	}

	for i, tt := range tests {
		s := New(tt.input)
		s.AdvanceLine()
		got := s.MatchIdentifier()
		if got != tt.expected {
			t.Errorf("tests[%d] - identifier wrong. expected=%q, got=%q",
				i, tt.expected, got)
		}
		if s.Pos() != tt.endPos {
			t.Errorf("tests[%d] - pos wrong. expected=%d, got=%d",
				i, tt.endPos, s.Pos())
		}
	}
}

func TestMatchInteger(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		ok       bool
	}{
		{"42>", 42, true},
		{"-16,", -16, true},
		{"0}", 0, true},
		{"-,", 0, false},
		{"x", 0, false},
	}

	for i, tt := range tests {
		s := New(tt.input)
		s.AdvanceLine()
		got, ok := s.MatchInteger()
		if ok != tt.ok {
			t.Fatalf("tests[%d] - ok wrong. expected=%v, got=%v", i, tt.ok, ok)
		}
		if got != tt.expected {
			t.Errorf("tests[%d] - value wrong. expected=%d, got=%d",
				i, tt.expected, got)
		}
		if !tt.ok && s.Pos() != 0 {
			t.Errorf("tests[%d] - cursor moved on failure. pos=%d", i, s.Pos())
		}
	}
}

func TestMatchToRightBracket(t *testing.T) {
	s := New("power8-vector]\n")
	s.AdvanceLine()
	got, ok := s.MatchToRightBracket()
	if !ok {
		t.Fatal("MatchToRightBracket failed")
	}
	if got != "power8-vector" {
		t.Errorf("content wrong. expected=%q, got=%q", "power8-vector", got)
	}
	if s.Peek() != ']' {
		t.Errorf("cursor should rest on ']', got=%q", s.Peek())
	}

	s = New("]")
	s.AdvanceLine()
	if _, ok := s.MatchToRightBracket(); ok {
		t.Error("empty content should fail")
	}

	s = New("no bracket here")
	s.AdvanceLine()
	if _, ok := s.MatchToRightBracket(); ok {
		t.Error("missing ']' should fail")
	}
}

func TestWhitespaceOnlyLineIsBlank(t *testing.T) {
	s := New("  \t  \n")
	if ok, _ := s.AdvanceLine(); ok {
		t.Error("whitespace-only line should be skipped")
	}
}

func TestLineOverrun(t *testing.T) {
	long := strings.Repeat("x", MaxLineLen+1)
	s := New(long + "\n")
	_, err := s.AdvanceLine()
	if !errors.Is(err, ErrLineOverrun) {
		t.Fatalf("expected ErrLineOverrun, got %v", err)
	}
}
