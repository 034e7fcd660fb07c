// Copyright (c) 2026 Jelajah. All rights reserved.
// Author: nanda.prasetyo.dev@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// Classification matters to callers: "row absent" (NotFound) must stay
// distinguishable from "store unavailable" (Internal), and constraint
// violations must surface as client errors rather than opaque 500s.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nandaprasetyo/jelajah/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// The action label is attached to the internal cause for server-side logs.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Constraint violations map to client errors
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return apperr.Conflict("A resource with the same unique value already exists")
		case pgerrcode.ForeignKeyViolation:
			return apperr.ValidationError("A referenced resource does not exist")
		}
	}

	// 3. Everything else (connectivity, syntax, timeouts) is an internal error
	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}
