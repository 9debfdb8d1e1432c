/*
Copyright © 2026 mayapy-launcher authors
SPDX-License-Identifier: MIT
*/

package serializers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type sampleOutcome struct {
	Release int    `json:"release" yaml:"release"`
	Probe   string `json:"probe" yaml:"probe"`
	Python  string `json:"python,omitempty" yaml:"python,omitempty"`
}

func TestFormatIsUnknown(t *testing.T) {
	assert.False(t, FormatJSON.IsUnknown())
	assert.False(t, FormatYAML.IsUnknown())
	assert.False(t, FormatTable.IsUnknown())
	assert.True(t, Format("xml").IsUnknown())
	assert.True(t, Format("").IsUnknown())
}

func TestSerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	require.NoError(t, w.Serialize(sampleOutcome{Release: 2023, Probe: "virtualenv", Python: "3.9.7"}))

	var decoded sampleOutcome
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 2023, decoded.Release)
	assert.Equal(t, "virtualenv", decoded.Probe)
}

func TestSerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)

	require.NoError(t, w.Serialize(sampleOutcome{Release: 2023, Probe: "latest-installed"}))

	var decoded sampleOutcome
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 2023, decoded.Release)
	assert.Equal(t, "latest-installed", decoded.Probe)
}

func TestSerializeTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	require.NoError(t, w.Serialize(sampleOutcome{Release: 2023, Probe: "virtualenv", Python: "3.9.7"}))

	out := buf.String()
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "Release")
	assert.Contains(t, out, "2023")
	assert.Contains(t, out, "Probe")
	assert.Contains(t, out, "virtualenv")
}

func TestSerializeTableOmitsEmptyTaggedFields(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	require.NoError(t, w.Serialize(sampleOutcome{Release: 2020, Probe: "maya-version-pin"}))
	assert.NotContains(t, buf.String(), "Python")
}

func TestSerializeTableSlice(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	require.NoError(t, w.Serialize([]sampleOutcome{
		{Release: 2022, Probe: "a"},
		{Release: 2023, Probe: "b"},
	}))

	out := buf.String()
	assert.Contains(t, out, "2022")
	assert.Contains(t, out, "2023")
}

func TestSerializeTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	require.NoError(t, w.Serialize(struct{}{}))
	assert.Contains(t, buf.String(), "<empty>")
}

func TestSerializeUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("xml"), &buf)

	err := w.Serialize(sampleOutcome{})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unsupported format"))
}

func TestNewFileWriterOrStdoutEmptyPath(t *testing.T) {
	w := NewFileWriterOrStdout(FormatJSON, "  ")
	require.NotNil(t, w)
}
