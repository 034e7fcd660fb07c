// Copyright (c) 2026 Jelajah. All rights reserved.
// Author: nanda.prasetyo.dev@gmail.com

package media_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nandaprasetyo/jelajah/internal/platform/media"
)

func TestResolver_Resolve(t *testing.T) {
	resolver := media.NewResolver("https://cdn.jelajah.id/media/")

	tests := []struct {
		name string
		path string
		want string
	}{
		{"relative_path", "panoramas/rektorat.jpg", "https://cdn.jelajah.id/media/panoramas/rektorat.jpg"},
		{"leading_slash", "/thumbnails/aula.jpg", "https://cdn.jelajah.id/media/thumbnails/aula.jpg"},
		{"absolute_passthrough", "https://example.com/pano.jpg", "https://example.com/pano.jpg"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.Resolve(tt.path))
		})
	}
}
