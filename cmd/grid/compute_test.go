package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCompute(t *testing.T) {
	path := writeDesc(t, `
columns: 2
cells:
  - label: sidebar
    width:  { min: 10, pref: 10 }
    height: { min: 5, pref: 5 }
  - label: content
    width:  { min: 20, pref: 20 }
    height: { min: 5, pref: 5 }
`)

	var out bytes.Buffer
	require.NoError(t, runCompute(&out, path, 30, 5))

	got := out.String()
	assert.Contains(t, got, "horizontal axis: min=30.0 pref=30.0 flex=0.0")
	assert.Contains(t, got, "vertical axis: min=5.0 pref=5.0 flex=0.0")
	assert.Contains(t, got, "sidebar")
	assert.Contains(t, got, "content")
}

func TestRunCompute_MissingFile(t *testing.T) {
	var out bytes.Buffer
	err := runCompute(&out, "does-not-exist.yaml", 30, 5)
	require.Error(t, err)
}

func TestAvailableSize_ExplicitDimensionsKept(t *testing.T) {
	w, h := availableSize(120, 40)
	assert.Equal(t, 120.0, w)
	assert.Equal(t, 40.0, h)
}

func TestRunRender(t *testing.T) {
	path := writeDesc(t, `
columns: 1
cells:
  - label: pane
    width:  { flex: 1 }
    height: { flex: 1 }
`)

	var out bytes.Buffer
	require.NoError(t, runRender(&out, path, 4, 2))

	got := out.String()
	assert.Contains(t, got, "pane")
	assert.Contains(t, got, "█")
}
