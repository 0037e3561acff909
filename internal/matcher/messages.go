package matcher

import (
	"fmt"
	"strings"
)

// Messages holds the reply templates the engine fills in.
type Messages struct {
	// Prompt is returned for blank input.
	Prompt string
	// Fallback is returned when nothing matched.
	Fallback string
	// TooLong is returned for input over the engine's length limit.
	TooLong string
	// StatusAvailable and StatusBorrowed describe a book's availability in title replies.
	StatusAvailable string
	StatusBorrowed  string
}

// DefaultMessages are the Indonesian replies the library assistant ships with.
var DefaultMessages = Messages{
	Prompt:          "Mohon masukkan pesan Anda.",
	Fallback:        "Maaf, saya tidak mengerti maksud Anda. Ketik 'help' untuk melihat apa yang bisa saya bantu.",
	TooLong:         "Maaf, pesan Anda terlalu panjang. Mohon tuliskan pertanyaan yang lebih singkat.",
	StatusAvailable: "tersedia",
	StatusBorrowed:  "sedang dipinjam",
}

func (m Messages) subjectList(subject string, books []Book) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Ada %d buku tentang %s di rak %s:", len(books), subject, books[0].Location)
	for i, book := range books {
		fmt.Fprintf(&b, "\n%d. %s", i+1, book.Title)
	}
	return b.String()
}

func (m Messages) subjectUnavailable(subject string) string {
	return fmt.Sprintf("Maaf, belum ada buku %s yang tersedia saat ini.", subject)
}

func (m Messages) titleStatus(book Book) string {
	status := m.StatusAvailable
	if book.Availability == Borrowed {
		status = m.StatusBorrowed
	}
	return fmt.Sprintf("Buku \"%s\" saat ini %s (rak %s)", book.Title, status, book.Location)
}
