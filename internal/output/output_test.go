// Copyright (c) 2026 The decodiff authors.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/decodiff/decodiff/internal/diff"
)

func sampleResult() *diff.Result {
	return &diff.Result{
		Changes: []diff.Change{
			{Decoration: "Attack Jewel 1", Added: 5, Total: 15},
		},
		NewItems: []diff.NewItem{
			{Decoration: "Expert Jewel 2", Amount: 3},
			{Decoration: "Vitality Jewel 1", Amount: 2},
		},
		TotalChanged: 5,
		TotalNew:     2,
	}
}

func TestWriteText_Layout(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	require.NoError(t, WriteText(&buf, sampleResult()))

	expected := "-----Changes to Existing Decorations-----\n" +
		"Attack Jewel 1, added: 5 | 15\n" +
		"\n-----Newly Added Decorations-----\n" +
		"Expert Jewel 2, amount: 3\n" +
		"Vitality Jewel 1, amount: 2\n" +
		"\nTotal added (changed decorations): 5\n" +
		"Total added (new decorations): 2\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteText_EmptySections(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	require.NoError(t, WriteText(&buf, &diff.Result{}))

	assert.Contains(t, buf.String(), "-----No Changes to Existing Decorations-----")
	assert.Contains(t, buf.String(), "-----No Newly Added Decorations-----")
	assert.Contains(t, buf.String(), "Total added (changed decorations): 0")
}

func TestWriteJSON_RoundTrips(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	require.NoError(t, WriteJSON(&buf, sampleResult()))

	var decoded diff.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *sampleResult(), decoded)
}

func TestWriteYAML_RoundTrips(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	require.NoError(t, WriteYAML(&buf, sampleResult()))

	var decoded diff.Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *sampleResult(), decoded)
}

func TestRenderTerminal_PlainOutput(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	RenderTerminal(&buf, sampleResult(), TableOptions{Padding: 2})

	out := buf.String()
	assert.Contains(t, out, "Changes to Existing Decorations:")
	assert.Contains(t, out, "Attack Jewel 1")
	assert.Contains(t, out, "Newly Added Decorations:")
	assert.Contains(t, out, "Expert Jewel 2")
	assert.Contains(t, out, "Total number added (changed decorations): 5")
	assert.Contains(t, out, "Total number added (new decorations): 2")
}

func TestRenderTerminal_EmptySectionsRenderPlaceholder(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	RenderTerminal(&buf, &diff.Result{}, TableOptions{})

	assert.Contains(t, buf.String(), "(none)")
}

func TestRenderTerminal_Titles(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	RenderTerminal(&buf, sampleResult(), TableOptions{Titles: true, Padding: 2})

	assert.Contains(t, buf.String(), "Decoration")
	assert.Contains(t, buf.String(), "Amount")
}

func TestRenderRawDiff_ModifiedDocuments(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	before := []byte(`{"Attack Jewel 1": 3}`)
	after := []byte(`{"Attack Jewel 1": 5}`)

	require.NoError(t, RenderRawDiff(&buf, before, after, false))
	assert.Contains(t, buf.String(), "Attack Jewel 1")
}

func TestRenderRawDiff_IdenticalDocuments(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	doc := []byte(`{"Attack Jewel 1": 3}`)

	require.NoError(t, RenderRawDiff(&buf, doc, doc, false))
	assert.Contains(t, buf.String(), "identical")
}

func TestRenderRawDiff_EmptyDocumentIsNoop(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	require.NoError(t, RenderRawDiff(&buf, nil, []byte(`{}`), false))
	assert.Empty(t, buf.String())
}
