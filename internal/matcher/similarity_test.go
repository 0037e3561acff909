package matcher

import "testing"

func TestRatio(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "abc", 0},
		{"abc", "", 0},
		{"abc", "abc", 100},
		{"abc", "abd", 67},
		{"kitten", "sitting", 57},
		{"abc", "xyz", 0},
	}

	for _, tt := range tests {
		if got := Ratio(tt.a, tt.b); got != tt.want {
			t.Errorf("Ratio(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestPartialRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "prefix", a: "hello", b: "hello world", want: 100},
		{name: "swapped arguments", a: "hello world", b: "hello", want: 100},
		{name: "substring", a: "python", b: "pemrograman python", want: 100},
		{name: "empty", a: "", b: "abc", want: 0},
		{name: "equal length falls back to ratio", a: "abc", b: "abd", want: 67},
		{name: "no overlap", a: "xyz", b: "hello", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PartialRatio(tt.a, tt.b); got != tt.want {
				t.Errorf("PartialRatio(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPartialRatio_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"ada buku komputer", "komputer"},
		{"sejarah", "sejarah indonesia"},
		{"halo", "hello"},
	}
	for _, p := range pairs {
		if PartialRatio(p[0], p[1]) != PartialRatio(p[1], p[0]) {
			t.Errorf("PartialRatio(%q, %q) not symmetric", p[0], p[1])
		}
	}
}

func TestTokenSortRatio(t *testing.T) {
	if got := TokenSortRatio("world hello", "hello world"); got != 100 {
		t.Errorf("TokenSortRatio() = %d, want 100", got)
	}
	if got := TokenSortRatio("  jam   buka ", "buka jam"); got != 100 {
		t.Errorf("TokenSortRatio() with extra spaces = %d, want 100", got)
	}
	if got := TokenSortRatio("", "buka"); got != 0 {
		t.Errorf("TokenSortRatio() empty = %d, want 0", got)
	}
}

func TestFuzzyScorer_Combined(t *testing.T) {
	var s FuzzyScorer

	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "identical", a: "halo", b: "halo", want: 100},
		{name: "equal metrics", a: "abc", b: "abd", want: 67},
		// partial 100, token sort 67: mean 83.5 rounds up
		{name: "half rounds up", a: "ab", b: "abc", want: 84},
		{name: "disjoint", a: "xyz", b: "hai", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Combined(tt.a, tt.b); got != tt.want {
				t.Errorf("Combined(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
