// Copyright (c) 2026 Jelajah. All rights reserved.
// Author: nanda.prasetyo.dev@gmail.com

// Package media resolves stored media paths to publicly reachable URLs.
//
// # Scope
//
// The tour core never touches pixel data. Panoramas and thumbnails are
// stored as relative object keys ("panoramas/rektorat.jpg"); resolution is
// a pure string operation against the configured public base URL, never a
// network round trip.
package media

import "strings"

// Resolver joins stored media paths onto a public base URL.
type Resolver struct {
	baseURL string
}

// NewResolver creates a Resolver for the given base URL.
// A trailing slash on the base is tolerated.
func NewResolver(baseURL string) *Resolver {
	return &Resolver{baseURL: strings.TrimRight(baseURL, "/")}
}

// Resolve returns the public URL for a stored media path.
//
// Absolute URLs pass through untouched so externally hosted images keep
// working. An empty path resolves to the empty string, which the viewer
// treats as "no image".
func (r *Resolver) Resolve(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return r.baseURL + "/" + strings.TrimLeft(path, "/")
}
