// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToPgx5DSN(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"postgres_scheme", "postgres://u:p@localhost:5432/cinedex", "pgx5://u:p@localhost:5432/cinedex"},
		{"postgresql_scheme", "postgresql://u@db/cinedex?sslmode=disable", "pgx5://u@db/cinedex?sslmode=disable"},
		{"already_pgx5", "pgx5://u@db/cinedex", "pgx5://u@db/cinedex"},
		{"keyword_dsn", "host=db user=u dbname=cinedex", "host=db user=u dbname=cinedex"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convertToPgx5DSN(tt.in))
		})
	}
}
