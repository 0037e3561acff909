package storage

import "library-assistant/internal/matcher"

// DefaultBooks returns the built-in catalog.
func DefaultBooks() []matcher.Book {
	return []matcher.Book{
		{Title: "Pemrograman Python", Subject: "komputer", Location: "A1", Availability: matcher.Available},
		{Title: "Algoritma dan Struktur Data", Subject: "komputer", Location: "A1", Availability: matcher.Available},
		{Title: "Basis Data MySQL", Subject: "komputer", Location: "A2", Availability: matcher.Borrowed},
		{Title: "Sejarah Indonesia", Subject: "sejarah", Location: "B1", Availability: matcher.Available},
		{Title: "Matematika Dasar", Subject: "matematika", Location: "C1", Availability: matcher.Available},
		{Title: "Fisika Modern", Subject: "fisika", Location: "C2", Availability: matcher.Available},
		{Title: "Bahasa Inggris", Subject: "bahasa", Location: "D1", Availability: matcher.Available},
		{Title: "Ekonomi Mikro", Subject: "ekonomi", Location: "E1", Availability: matcher.Borrowed},
	}
}

// DefaultIntents returns the built-in intent table.
func DefaultIntents() []matcher.Intent {
	return []matcher.Intent{
		{
			Tag:      "greeting",
			Patterns: []string{"hai", "hello", "halo", "selamat pagi", "selamat siang", "hei", "hi"},
			Responses: []string{
				"Halo! Saya chatbot perpustakaan. Ada yang bisa saya bantu?",
				"Hai! Silakan tanya tentang buku atau layanan perpustakaan.",
				"Selamat datang di perpustakaan digital! Ada yang ingin dicari?",
			},
		},
		{
			Tag:      "book_search",
			Patterns: []string{"cari buku", "buku", "ada buku", "dimana buku", "lokasi buku"},
			Responses: []string{
				"Silakan sebutkan judul atau subjek buku yang Anda cari!",
				"Buku apa yang ingin Anda temukan? Saya akan membantu mencarinya.",
				"Sebutkan judul buku atau topik yang Anda minati.",
			},
		},
		{
			Tag:      "location",
			Patterns: []string{"dimana", "lokasi", "rak", "lantai", "tempat"},
			Responses: []string{
				"Untuk mencari lokasi buku, sebutkan judul bukunya dulu ya!",
				"Buku biasanya tersusun berdasarkan kategori. Judul buku apa yang dicari?",
			},
		},
		{
			Tag:      "hours",
			Patterns: []string{"jam buka", "buka jam berapa", "tutup jam berapa", "jam operasional"},
			Responses: []string{
				"Perpustakaan buka Senin-Jumat pukul 08:00-16:00, Sabtu 08:00-12:00.",
				"Jam operasional: Senin-Jumat 08:00-16:00, Sabtu 08:00-12:00, Minggu tutup.",
			},
		},
		{
			Tag:      "help",
			Patterns: []string{"help", "bantuan", "apa yang bisa", "fitur", "panduan"},
			Responses: []string{
				"Saya bisa membantu:\n- Mencari informasi buku\n- Memberikan lokasi rak\n- Info jam operasional\n- Layanan perpustakaan lainnya",
				"Fitur yang tersedia:\n- Pencarian buku\n- Informasi lokasi\n- Jam operasional\n- Bantuan umum perpustakaan",
			},
		},
		{
			Tag:      "thanks",
			Patterns: []string{"terima kasih", "thanks", "makasih", "thx"},
			Responses: []string{
				"Sama-sama! Senang bisa membantu.",
				"Dengan senang hati! Ada lagi yang bisa dibantu?",
				"Terima kasih kembali! Jangan sungkan bertanya lagi.",
			},
		},
		{
			Tag:      "goodbye",
			Patterns: []string{"bye", "selamat tinggal", "sampai jumpa", "dadah"},
			Responses: []string{
				"Sampai jumpa! Semoga hari Anda menyenangkan.",
				"Selamat tinggal! Jangan lupa kembali ke perpustakaan.",
				"Bye! Terima kasih telah menggunakan layanan kami.",
			},
		},
	}
}
