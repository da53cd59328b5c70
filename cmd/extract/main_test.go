package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTasksFromStdin(t *testing.T) {
	in := "Here you go:\n```json\n[{\"task\":\"Book venue\",\"description\":\"Reserve the hall\",\"priority\":\"high\",\"estimated_duration\":\"2 days\"}]\n```"
	var stdout, stderr bytes.Buffer

	code := run(nil, strings.NewReader(in), &stdout, &stderr, false)

	require.Equal(t, 0, code, stderr.String())
	var out struct {
		Strategy string           `json:"strategy"`
		Count    int              `json:"count"`
		Items    []map[string]any `json:"items"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	assert.Equal(t, "fenced_block", out.Strategy)
	assert.Equal(t, 1, out.Count)
	assert.Equal(t, "Book venue", out.Items[0]["task"])
	assert.Equal(t, map[string]any{"quantity": float64(2), "unit": "days"}, out.Items[0]["estimated_duration"])
	assert.NotContains(t, stdout.String(), "\n  ", "compact output expected when not a terminal")
}

func TestRunScheduleFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "response.txt")
	content := `[{"task_title":"Second","order":2},{"task_title":"First","order":1}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	var stdout, stderr bytes.Buffer

	code := run([]string{"-mode", "schedule", path}, strings.NewReader(""), &stdout, &stderr, true)

	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "\n  ")
	first := strings.Index(stdout.String(), `"First"`)
	second := strings.Index(stdout.String(), `"Second"`)
	assert.True(t, first >= 0 && first < second, "schedule must be sorted by order")
}

func TestRunNoValidRecords(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run(nil, strings.NewReader("no."), &stdout, &stderr, false)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "none valid")
}

func TestRunUsageErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, 2, run([]string{"-mode", "bogus"}, strings.NewReader("[]"), &stdout, &stderr, false))
	assert.Contains(t, stderr.String(), "unknown mode")

	assert.Equal(t, 2, run([]string{"a", "b"}, strings.NewReader(""), &stdout, &stderr, false))
	assert.Equal(t, 2, run([]string{filepath.Join(t.TempDir(), "missing")}, strings.NewReader(""), &stdout, &stderr, false))
	assert.Equal(t, 2, run([]string{"-nope"}, strings.NewReader(""), &stdout, &stderr, false))
}
