// SPDX-License-Identifier: MIT

package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nanstat/internal/logging"
)

func TestComponentTagsEntries(t *testing.T) {
	var buf bytes.Buffer
	l := logging.Component(logging.New(&buf, zerolog.DebugLevel), "hist")
	l.Warn().Str(logging.FieldOp, "Accumulate").Msg("truncated")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hist", entry[logging.FieldComponent])
	assert.Equal(t, "Accumulate", entry[logging.FieldOp])
	assert.Equal(t, "warn", entry["level"])
	assert.Contains(t, entry, "time")
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(&buf, zerolog.ErrorLevel)
	l.Warn().Msg("dropped")
	assert.Zero(t, buf.Len())
}
