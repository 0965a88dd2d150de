// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Agnès Varda", "agnes-varda"},
		{"  Jean-Luc   Godard ", "jean-luc-godard"},
		{"Cléo from 5 to 7", "cleo-from-5-to-7"},
		{"AGNES", "agnes"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, From(tt.in))
		})
	}
}
