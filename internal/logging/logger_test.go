// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "error", want: LevelError},
		{in: "WARN", want: LevelWarn},
		{in: "warning", want: LevelWarn},
		{in: "", want: LevelInfo},
		{in: " Debug ", want: LevelDebug},
		{in: "trace", want: LevelInfo, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelWarn)

	log.Error("disk %s", "full")
	log.Warn("row %d skipped", 3)
	log.Info("hidden")
	log.Debug("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "[ERROR] "))
	assert.True(t, strings.HasSuffix(lines[0], "disk full"))
	assert.True(t, strings.HasPrefix(lines[1], "[WARN] "))
	assert.True(t, strings.HasSuffix(lines[1], "row 3 skipped"))

	assert.True(t, log.Enabled(LevelWarn))
	assert.False(t, log.Enabled(LevelInfo))
}

func TestLoggerRunID(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelInfo)

	_, err := uuid.Parse(log.RunID())
	require.NoError(t, err)

	log.Info("hello")
	assert.Contains(t, buf.String(), shortID(log.RunID()))
	assert.NotEqual(t, log.RunID(), New(&buf, LevelInfo).RunID())
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "LEVEL(9)", Level(9).String())
}
