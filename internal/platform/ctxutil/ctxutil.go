// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil stores and retrieves per-request values (request id,
// logger, caller identity) on a [context.Context].
//
// Keys are an unexported type so no other package can collide with them.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/cinedex/internal/platform/sec"
)

type key uint8

const (
	keyRequestID key = iota
	keyLogger
	keyUser
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// GetLogger retrieves the request logger, falling back to [slog.Default].
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// # Identity & Access

// WithAuthUser returns a new context with the verified token claims attached.
func WithAuthUser(ctx context.Context, user *sec.AuthClaims) context.Context {
	return context.WithValue(ctx, keyUser, user)
}

// GetAuthUser retrieves the [*sec.AuthClaims] from the context, or nil for
// anonymous callers.
func GetAuthUser(ctx context.Context) *sec.AuthClaims {
	claims, _ := ctx.Value(keyUser).(*sec.AuthClaims)
	return claims
}
