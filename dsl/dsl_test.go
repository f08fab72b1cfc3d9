package dsl

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragforge/flowgraph/model"
)

const validPipelineYAML = `
id: kb-demo
name: Demo Knowledge Base
description: Builds a small KB from a local folder
spec:
  version: "1.0.0"
  steps:
    - id: fetch-1
      name: Fetch Docs
      type: fetch
      config:
        source: local-folder
        path: /data/docs
    - id: parse-1
      name: Parse Docs
      type: parse
      dependencies: [fetch-1]
      inputs:
        - name: files
          type: data
          required: true
          source: files
      timeout: 60
`

func TestParseFromString(t *testing.T) {
	p, err := ParseFromString(validPipelineYAML)
	require.NoError(t, err)
	assert.Equal(t, "Demo Knowledge Base", p.Name)
	require.Len(t, p.Spec.Steps, 2)
	assert.Equal(t, "fetch", p.Spec.Steps[0].Type)
	assert.Equal(t, []string{"fetch-1"}, p.Spec.Steps[1].Dependencies)
	assert.Equal(t, 60, p.Spec.Steps[1].Timeout)
	assert.Equal(t, model.DataTypeData, p.Spec.Steps[1].Inputs[0].Type)
}

func TestValidateAcceptsWellFormed(t *testing.T) {
	p, err := ParseFromString(validPipelineYAML)
	require.NoError(t, err)
	assert.NoError(t, Validate(p))
}

func TestValidateRejectsMissingName(t *testing.T) {
	p, err := ParseFromString(`
spec:
  version: "1.0.0"
  steps: []
`)
	require.NoError(t, err)
	assert.Error(t, Validate(p))
}

func TestValidateRejectsBadDataType(t *testing.T) {
	p, err := ParseFromString(`
name: bad types
spec:
  version: "1.0.0"
  steps:
    - id: s1
      type: fetch
      inputs:
        - name: x
          type: hologram
`)
	require.NoError(t, err)
	assert.Error(t, Validate(p))
}

func TestValidateRejectsStepWithoutID(t *testing.T) {
	p := &model.Pipeline{
		Name: "anonymous step",
		Spec: model.PipelineSpec{
			Version: "1.0.0",
			Steps:   []model.PipelineStep{{Type: "fetch"}},
		},
	}
	assert.Error(t, Validate(p))
}

func TestRender(t *testing.T) {
	out, err := Render("path: {{ root }}/docs", map[string]any{"root": "/data"})
	require.NoError(t, err)
	assert.Equal(t, "path: /data/docs", out)
}

func TestRenderNoParamsPassthrough(t *testing.T) {
	tmpl := "path: {{ root }}/docs"
	out, err := Render(tmpl, nil)
	require.NoError(t, err)
	assert.Equal(t, tmpl, out)
}

func TestLoadTemplatesAndValidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	doc := strings.ReplaceAll(validPipelineYAML, "/data/docs", "{{ docsDir }}")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	p, err := Load(path, map[string]any{"docsDir": "/srv/corpus"})
	require.NoError(t, err)
	assert.Equal(t, "/srv/corpus", p.Spec.Steps[0].Config["path"])
}

func TestPipelineYAMLRoundTrip(t *testing.T) {
	p, err := ParseFromString(validPipelineYAML)
	require.NoError(t, err)

	out, err := PipelineToYAMLString(p)
	require.NoError(t, err)
	p2, err := ParseFromString(out)
	require.NoError(t, err)
	assert.Equal(t, p.Spec.Steps, p2.Spec.Steps)
	assert.Equal(t, p.Name, p2.Name)
}

func TestPipelineToJSON(t *testing.T) {
	p, err := ParseFromString(validPipelineYAML)
	require.NoError(t, err)
	data, err := PipelineToJSON(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name": "Demo Knowledge Base"`)
}
