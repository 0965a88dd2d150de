// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/taibuivan/cinedex/internal/core/roster"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestRolesCmd_Table(t *testing.T) {
	out, err := execute(t, "roles")
	require.NoError(t, err)

	assert.Contains(t, out, "LABEL")
	assert.Contains(t, out, "assistant-directors")
	assert.Contains(t, out, "core.movie_vfx_supervisor")
}

func TestRolesCmd_JSONHidesTables(t *testing.T) {
	out, err := execute(t, "roles", "-o", "json")
	require.NoError(t, err)

	var roles []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &roles))
	require.Len(t, roles, 19)
	assert.Equal(t, map[string]any{"type": "actor", "label": "actors", "ranked": true}, roles[0])
}

func TestRolesCmd_YAML(t *testing.T) {
	out, err := execute(t, "roles", "--output", "yaml")
	require.NoError(t, err)

	var roles []roster.RoleInfo
	require.NoError(t, yaml.Unmarshal([]byte(out), &roles))
	require.Len(t, roles, 19)
	assert.Equal(t, "producers", roles[18].Label)
	assert.Equal(t, "core.movie_producer", roles[18].Table)
}

func TestRolesCmd_UnknownFormat(t *testing.T) {
	_, err := execute(t, "roles", "-o", "xml")
	assert.ErrorContains(t, err, `unknown output format "xml"`)
}

func TestRosterFor(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	services := roster.NewServices(roster.NewRegistry(), nil, nil, logger)

	for _, role := range []string{"actor", "actors", "director", "assistant-directors", "stuntman"} {
		ops, err := rosterFor(services, role)
		require.NoError(t, err, role)
		assert.NotNil(t, ops.get)
		assert.NotNil(t, ops.add)
	}

	_, err := rosterFor(services, "gaffer")
	assert.ErrorContains(t, err, `unknown role "gaffer"`)
}

func TestMoviesCreate_RejectsBadInput(t *testing.T) {
	_, err := execute(t, "movies", "create")
	assert.ErrorContains(t, err, "--title required")

	_, err = execute(t, "movies", "create", "--title", "Vagabond", "--release-date", "85-12-04")
	assert.ErrorContains(t, err, "YYYY-MM-DD")
}

func TestMigrateDown_RejectsZeroSteps(t *testing.T) {
	_, err := execute(t, "migrate", "down", "--steps", "0")
	assert.ErrorContains(t, err, "--steps must be at least 1")
}
