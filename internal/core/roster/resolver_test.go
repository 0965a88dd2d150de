// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package roster

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cinedex/internal/core/movie"
	"github.com/taibuivan/cinedex/internal/core/person"
	"github.com/taibuivan/cinedex/internal/platform/ctxutil"
	"github.com/taibuivan/cinedex/pkg/pointer"
)

func TestResolver_Resolve(t *testing.T) {
	db := newMemoryDB()
	existing := db.seedPerson("Jacques Demy")
	resolver := NewResolver(memoryPersons{db: db}, discardLogger())
	ctx := context.Background()

	t.Run("existing_id_loads", func(t *testing.T) {
		resolved, err := resolver.Resolve(ctx, person.Existing(existing), movie.RoleDirector)
		require.NoError(t, err)
		assert.Equal(t, "Jacques Demy", resolved.Name)
	})

	t.Run("unknown_id_is_not_found", func(t *testing.T) {
		_, err := resolver.Resolve(ctx, person.Existing(404), movie.RoleDirector)
		requireCode(t, err, "NOT_FOUND")
	})

	t.Run("id_wins_over_fields", func(t *testing.T) {
		input := person.Existing(existing)
		input.Name = "Someone Else"
		resolved, err := resolver.Resolve(ctx, input, movie.RoleActor)
		require.NoError(t, err)
		assert.Equal(t, existing, resolved.ID)
		assert.Equal(t, "Jacques Demy", resolved.Name, "existing persons are never updated")
	})

	t.Run("creates_with_optional_fields", func(t *testing.T) {
		resolved, err := resolver.Resolve(ctx, person.Input{
			Name:        "  Anouk Aimée ",
			DateOfBirth: pointer.To("1932-04-27"),
			DateOfDeath: pointer.To("2024-06-18"),
			PhotoURL:    pointer.To("https://img.cinedex.app/p/aa.jpg"),
		}, movie.RoleActor)
		require.NoError(t, err)
		assert.Positive(t, resolved.ID)
		assert.Equal(t, "Anouk Aimée", resolved.Name)
		assert.Equal(t, "1932-04-27", *resolved.Summary().DateOfBirth)
		assert.Equal(t, "2024-06-18", *resolved.Summary().DateOfDeath)
	})

	tests := []struct {
		name  string
		input person.Input
		field string
	}{
		{"non_positive_id", person.Existing(0), person.FieldID},
		{"missing_name", person.Input{}, person.FieldName},
		{"long_name", person.Input{Name: strings.Repeat("n", person.MaxNameLength+1)}, person.FieldName},
		{"bad_birth_date", person.Input{Name: "X", DateOfBirth: pointer.To("27/04/1932")}, person.FieldDateOfBirth},
		{"death_before_birth", person.Input{Name: "X", DateOfBirth: pointer.To("2000-01-02"), DateOfDeath: pointer.To("2000-01-01")}, person.FieldDateOfDeath},
		{"relative_photo", person.Input{Name: "X", PhotoURL: pointer.To("/p/x.jpg")}, person.FieldPhotoURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := db.personCount()

			_, err := resolver.Resolve(ctx, tt.input, movie.RoleComposer)
			appErr := requireCode(t, err, "VALIDATION_ERROR")
			assert.Equal(t, tt.field, appErr.Details[0].Field)
			assert.Equal(t, before, db.personCount())
		})
	}
}

// requestIDHandler records the request id carried by each logged record's context.
type requestIDHandler struct {
	mu   sync.Mutex
	seen map[string]string
}

func (handler *requestIDHandler) Enabled(context.Context, slog.Level) bool { return true }
func (handler *requestIDHandler) WithAttrs([]slog.Attr) slog.Handler { return handler }
func (handler *requestIDHandler) WithGroup(string) slog.Handler { return handler }

func (handler *requestIDHandler) Handle(ctx context.Context, record slog.Record) error {
	handler.mu.Lock()
	defer handler.mu.Unlock()
	handler.seen[record.Message] = ctxutil.GetRequestID(ctx)
	return nil
}

func TestResolver_LogsWithRequestContext(t *testing.T) {
	handler := &requestIDHandler{seen: map[string]string{}}
	resolver := NewResolver(memoryPersons{db: newMemoryDB()}, slog.New(handler))

	ctx := ctxutil.WithRequestID(context.Background(), "req-42")
	_, err := resolver.Resolve(ctx, person.Input{Name: "Agnès Varda"}, movie.RoleDirector)
	require.NoError(t, err)

	assert.Equal(t, "req-42", handler.seen["person_created"])
}
