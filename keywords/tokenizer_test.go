package keywords

import (
	"reflect"
	"testing"
)

func TestTokenize_BasicSentence(t *testing.T) {
	s, err := NewSession("Microsoft and Google are working with OpenAI.")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	got := s.Tokenize()
	want := []string{"Microsoft", "and", "Google", "are", "working", "with", "OpenAI", "."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestTokenize_SeparatorPunctuation(t *testing.T) {
	s, _ := NewSession("Hello, world; take note: done!")

	got := s.Tokenize()
	want := []string{"Hello", ",", "world", ";", "take", "note", ":", "done", "!"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestTokenize_TerminalBeforeCapital(t *testing.T) {
	s, _ := NewSession("It ended.Next day began")

	got := s.Tokenize()
	want := []string{"It", "ended", ".", "Next", "day", "began"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestTokenize_DecimalNumberStaysIntact(t *testing.T) {
	s, _ := NewSession("version 3.5 shipped")

	got := s.Tokenize()
	want := []string{"version", "3.5", "shipped"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestTokenize_EmptyAndWhitespaceInput(t *testing.T) {
	for _, content := range []string{"", "   ", "\n\t  \n"} {
		s, err := NewSession(content)
		if err != nil {
			t.Fatalf("Expected no error for %q, got %v", content, err)
		}
		if got := s.Tokenize(); len(got) != 0 {
			t.Errorf("Expected no tokens for %q, got %v", content, got)
		}
	}
}

func TestTokenize_CollapsesWhitespaceRuns(t *testing.T) {
	s, _ := NewSession("alpha   beta\n\ngamma\tdelta")

	got := s.Tokenize()
	want := []string{"alpha", "beta", "gamma", "delta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
