package matcher

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "punctuation removed", input: "Cari, buku!!", want: "cari buku"},
		{name: "trimmed and lowercased", input: "  Hello World  ", want: "hello world"},
		{name: "empty", input: "", want: ""},
		{name: "only punctuation", input: "?!.,", want: ""},
		{name: "digits kept", input: "Jam 08:00?", want: "jam 0800"},
		{name: "underscore removed", input: "snake_case", want: "snakecase"},
		{name: "decomposed accent composed", input: "Cafe\u0301", want: "caf\u00e9"},
		{name: "inner whitespace kept", input: "a\tb", want: "a\tb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_ComposesAcrossRemovedPunctuation(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "\u1100!\u1161", want: "\uac00"},
		{input: "\u1100.\u1161\u11a8", want: "\uac01"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Cari, buku!!",
		"  Selamat PAGI ",
		"Café & Bar",
		"Terima-kasih :)",
		"",
		"İstanbul",
		"\u1100!\u1161",
		"\u1100.\u1161\u11a8",
	}

	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
