package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/potlib/potrec/internal/model"
)

func TestExitErrorMessage(t *testing.T) {
	e := NewExitError(ExitFailure, "record demo not found")
	assert.Equal(t, "record demo not found", e.Error())

	wrapped := WrapExitError(ExitCommandError, "open database", errors.New("disk full"))
	assert.Equal(t, "open database: disk full", wrapped.Error())
	assert.Equal(t, "disk full", errors.Unwrap(wrapped).Error())
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, ExitSuccess},
		{"plain error", errors.New("boom"), ExitFailure},
		{"exit failure", NewExitError(ExitFailure, "no match"), ExitFailure},
		{"exit command error", NewExitError(ExitCommandError, "bad flag"), ExitCommandError},
		{
			"wrapped exit error",
			fmt.Errorf("outer: %w", NewExitError(ExitCommandError, "inner")),
			ExitCommandError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetExitCode(tt.err))
		})
	}
}

func TestWriteDocumentFormats(t *testing.T) {
	doc := model.MapOf(
		model.P("units", model.String("metal")),
		model.P("cutoff", model.Float(10)),
	)

	t.Run("json is compact", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeDocument(&buf, doc, "json"))
		assert.Equal(t, `{"units":"metal","cutoff":10.0}`+"\n", buf.String())
	})

	t.Run("text is indented", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeDocument(&buf, doc, "text"))
		assert.Equal(t, "{\n    \"units\": \"metal\",\n    \"cutoff\": 10.0\n}\n", buf.String())
	})

	t.Run("yaml keeps key order", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeDocument(&buf, doc, "yaml"))
		assert.Equal(t, "units: metal\ncutoff: 10.0\n", buf.String())
	})
}
