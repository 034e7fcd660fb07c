// Copyright (c) 2026 Jelajah. All rights reserved.
// Author: nanda.prasetyo.dev@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nandaprasetyo/jelajah/pkg/slug"
)

/*
TestFrom verifies the slug transformation pipeline against representative
scene titles.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple_title", "Gedung Utama", "gedung-utama"},
		{"mixed_case", "Gedung MBZ CFS", "gedung-mbz-cfs"},
		{"accented", "Taman Kampus Réktorat", "taman-kampus-rektorat"},
		{"punctuation", "Lab. Komputer (Lantai 3)", "lab-komputer-lantai-3"},
		{"multiple_spaces", "Masjid   Kampus", "masjid-kampus"},
		{"leading_trailing", "  Aula Besar!  ", "aula-besar"},
		{"digits", "Ruang 101", "ruang-101"},
		{"already_slug", "gedung-utama", "gedung-utama"},
		{"empty", "", ""},
		{"symbols_only", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}

/*
TestFrom_Idempotent ensures that slugging a slug is a no-op, since stored
slugs are re-validated on update.
*/
func TestFrom_Idempotent(t *testing.T) {
	titles := []string{"Gedung Utama", "Perpustakaan Pusat Lt.2", "Kantin & Koperasi"}
	for _, title := range titles {
		once := slug.From(title)
		assert.Equal(t, once, slug.From(once))
	}
}
