// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/cinedex/internal/platform/apperr"
)

// SQLSTATE codes we classify explicitly.
const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// resource names the entity for NotFound messages ("Movie", "Person").
func Wrap(err error, resource, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	// 2. Constraint violations
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			conflict := apperr.Conflict(resource + " already exists")
			conflict.Cause = err
			return conflict
		case codeForeignKeyViolation:
			missing := apperr.NotFound("Referenced " + pgErr.TableName + " row")
			missing.Cause = err
			return missing
		}
	}

	// 3. Anything else stays an ordinary error for the service boundary to classify
	return fmt.Errorf("postgres: %s: %w", action, err)
}
