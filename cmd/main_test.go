package main

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestLookupCmd(t *testing.T) {
	t.Setenv("DATA_SOURCE", "static")

	out, err := execute(t, "lookup", "--name", "Monuments", "--visualization", "pins")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	for _, line := range lines {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		assert.Equal(t, "marker", m["type"])
	}

	out, err = execute(t, "lookup", "--name", "Air Pollution", "--visualization", "heatmap")
	require.NoError(t, err)
	assert.Contains(t, out, `"area":"Area1"`)

	out, err = execute(t, "lookup", "--name", "Unknown")
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(out))

	_, err = execute(t, "lookup", "--name", "Monuments", "--visualization", "polygon")
	assert.Error(t, err)

	out, err = execute(t, "lookup")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[5], `"type":"heatmap"`)
}

func TestSampleCmd(t *testing.T) {
	out, err := execute(t, "sample", "--count", "20", "--radius", "300")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 20)
	for _, line := range lines {
		fields := strings.Split(line, ",")
		require.Len(t, fields, 3)
		dist, err := strconv.ParseFloat(fields[2], 64)
		require.NoError(t, err)
		assert.LessOrEqual(t, dist, 300.5)
	}

	_, err = execute(t, "sample", "--radius", "0")
	assert.Error(t, err)

	_, err = execute(t, "sample", "--lat", "95")
	assert.Error(t, err)

	_, err = execute(t, "sample", "--radius", "NaN")
	assert.Error(t, err)

	_, err = execute(t, "sample", "--radius", "+Inf")
	assert.Error(t, err)
}
