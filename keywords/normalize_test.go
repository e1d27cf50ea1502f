package keywords

import "testing"

func TestCleanup_Table(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain word", "Apple", "Apple"},
		{"parentheses", "(Apple)", "Apple"},
		{"brackets and quotes", `["quoted"]`, "quoted"},
		{"typographic quotes", "“ChatGPT”", "ChatGPT"},
		{"possessive", "Apple's", "Apple"},
		{"typographic possessive", "Microsoft’s", "Microsoft"},
		{"stacked possessives", "x's's", "x"},
		{"trailing plus survives", "9300+", "9300+"},
		{"edge punctuation", "-–—dash-", "dash"},
		{"whitespace collapse", "  iPhone   14  ", "iPhone 14"},
		{"interior quote removal", `say "hi" now`, "say hi now"},
		{"apostrophe kept inside", "don't", "don't"},
		{"only punctuation", "...!?", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cleanup(tt.in); got != tt.want {
				t.Errorf("Cleanup(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanup_Idempotent(t *testing.T) {
	inputs := []string{
		"Apple's", "x's's", "(Paris),", "“hello”", "9300+", "...",
		"Elon Musk's", "a.'s", "   spaced   out   ", "«guillemets»",
	}
	for _, in := range inputs {
		once := Cleanup(in)
		twice := Cleanup(once)
		if once != twice {
			t.Errorf("Cleanup not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
