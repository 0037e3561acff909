package handlers

import (
	"strings"
	"testing"
)

func TestRenderer_Render(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		contains    []string
		notContains []string
	}{
		{
			name:     "subject list",
			text:     "Ada 2 buku tentang fiksi di rak A1:\n1. Laskar Pelangi\n2. Bumi Manusia",
			contains: []string{"<ol>", "<li>Laskar Pelangi</li>", "<li>Bumi Manusia</li>"},
		},
		{
			name:     "bullet list",
			text:     "Saya bisa membantu:\n- Cari buku\n- Jam buka",
			contains: []string{"<ul>", "<li>Cari buku</li>"},
		},
		{
			name:     "line breaks kept",
			text:     "Halo!\nAda yang bisa dibantu?",
			contains: []string{"<br"},
		},
		{
			name:        "raw html omitted",
			text:        "<script>alert(1)</script>",
			contains:    []string{"<!-- raw HTML omitted -->"},
			notContains: []string{"<script>", "&lt;script&gt;", "alert(1)"},
		},
		{
			name:        "inline raw html omitted",
			text:        "Halo <b>dunia</b>",
			contains:    []string{"Halo", "dunia"},
			notContains: []string{"<b>"},
		},
	}

	r := NewRenderer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Render(tt.text)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Render() = %q, want it to contain %q", got, want)
				}
			}
			for _, unwanted := range tt.notContains {
				if strings.Contains(got, unwanted) {
					t.Errorf("Render() = %q, should not contain %q", got, unwanted)
				}
			}
		})
	}
}
