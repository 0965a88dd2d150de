// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cinedex/internal/platform/constants"
)

func TestNewLogger(t *testing.T) {
	var out bytes.Buffer
	log := newLogger(&out, slog.LevelInfo)

	log.Debug("hidden")
	log.Info("service_initializing")

	var line map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &line))
	assert.Equal(t, "service_initializing", line["msg"])
	assert.Equal(t, constants.AppName, line["app"])
	assert.Equal(t, constants.AppVersion, line["version"])
}
