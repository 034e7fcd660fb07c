// Copyright (c) 2026 Jelajah. All rights reserved.
// Author: nanda.prasetyo.dev@gmail.com

// Package slug generates ASCII URL slugs from arbitrary Unicode strings.
//
// # Usage
//
// Slugs are the public identifiers for tour scenes (e.g., "gedung-rektorat").
// This package handles normalization, accent removal, and character
// sanitization so that a title like "Taman Kampus Réktorat" becomes
// "taman-kampus-rektorat".
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// deaccent decomposes accented characters (NFD) and strips the combining
// marks, leaving only the ASCII base character.
var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// From converts an arbitrary Unicode string into a URL-safe ASCII slug.
//
// The result contains only lowercase letters, digits, and single hyphens,
// with no leading or trailing hyphen. An input with no usable characters
// produces the empty string.
func From(s string) string {
	normalized, _, err := transform.String(deaccent, s)
	if err != nil {
		// Fall back to the raw input; non-ASCII runes are dropped below.
		normalized = s
	}

	var b strings.Builder
	b.Grow(len(normalized))

	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(normalized) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
