// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package internal

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{level: "debug", want: zerolog.DebugLevel},
		{level: "warn", want: zerolog.WarnLevel},
		{level: "", want: zerolog.InfoLevel},
		{level: "verbose", want: zerolog.InfoLevel},
	}
	for _, tt := range tests {
		log := NewLogger(new(bytes.Buffer), tt.level)
		assert.Equal(t, tt.want, log.GetLevel(), tt.level)
	}

	var buf bytes.Buffer
	log := NewLogger(&buf, "info")
	log.Info().Str("path", "out.ts").Msg("wrote types")
	assert.Contains(t, buf.String(), "wrote types")
	assert.Contains(t, buf.String(), "out.ts")
}
