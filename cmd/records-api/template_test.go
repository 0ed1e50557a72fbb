package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTemplate_WritesJSONFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "template.json")

	require.NoError(t, runTemplate("json", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "Resources")
	assert.Contains(t, doc, "Outputs")
}

func TestRunTemplate_UnknownFormat(t *testing.T) {
	err := runTemplate("toml", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestGetVersion(t *testing.T) {
	v := getVersion()
	assert.NotEmpty(t, v)
}
