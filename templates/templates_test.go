package templates

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragforge/flowgraph/model"
	"github.com/ragforge/flowgraph/registry"
)

func kbParams() map[string]any {
	return map[string]any{
		"sourceUrl":      "/data/docs",
		"embeddingModel": "all-minilm-l6",
		"name":           "product-docs",
		"product":        "acme",
	}
}

func TestBuiltinTemplates(t *testing.T) {
	ts := Builtin()
	require.Len(t, ts, 2)
	assert.NotNil(t, Find("kb-local-folder"))
	assert.NotNil(t, Find("kb-website"))
	assert.Nil(t, Find("kb-carrier-pigeon"))
}

func TestInstantiateLocalFolder(t *testing.T) {
	tpl := Find("kb-local-folder")
	require.NotNil(t, tpl)

	p, err := tpl.Instantiate(context.Background(), registry.NewBuiltinRegistry(), "acme-docs", kbParams())
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "acme-docs", p.Name)
	assert.Equal(t, model.PipelineDraft, p.Status)
	assert.Equal(t, []string{"kb-local-folder"}, p.Templates)
	require.Len(t, p.Spec.Steps, 8)

	// Linear chain: every step after the first depends on its predecessor.
	for i, step := range p.Spec.Steps {
		if i == 0 {
			assert.Empty(t, step.Dependencies)
			continue
		}
		require.Equal(t, []string{p.Spec.Steps[i-1].ID}, step.Dependencies, "step %s", step.ID)
		if len(step.Inputs) > 0 && len(p.Spec.Steps[i-1].Outputs) > 0 {
			assert.Equal(t, p.Spec.Steps[i-1].Outputs[0].Name, step.Inputs[0].Source, "step %s", step.ID)
		}
	}

	fetch := p.Spec.Steps[0]
	assert.Equal(t, "/data/docs", fetch.Config["path"])
	embed := p.Spec.Steps[4]
	assert.Equal(t, "all-minilm-l6", embed.Config["model"])
	pack := p.Spec.Steps[7]
	assert.Equal(t, "product-docs", pack.Config["name"])
	// Unsupplied optional parameter placeholders stay literal.
	assert.Equal(t, "{{version}}", pack.Config["version"])
}

func TestInstantiateMissingRequiredParam(t *testing.T) {
	tpl := Find("kb-website")
	require.NotNil(t, tpl)
	params := kbParams()
	delete(params, "embeddingModel")

	_, err := tpl.Instantiate(context.Background(), registry.NewBuiltinRegistry(), "acme-docs", params)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "embeddingModel")
}

func TestInstantiateRequiresName(t *testing.T) {
	tpl := Find("kb-local-folder")
	_, err := tpl.Instantiate(context.Background(), registry.NewBuiltinRegistry(), "", kbParams())
	assert.Error(t, err)
}

func TestInstantiateKeepsDefaultConfig(t *testing.T) {
	tpl := Find("kb-local-folder")
	p, err := tpl.Instantiate(context.Background(), registry.NewBuiltinRegistry(), "acme-docs", kbParams())
	require.NoError(t, err)
	chunk := p.Spec.Steps[3]
	assert.Equal(t, "semantic", chunk.Config["strategy"])
}

func TestSubstituteParamsPreservesTypes(t *testing.T) {
	config := map[string]any{
		"whole":    "{{ list }}",
		"embedded": "prefix-{{ name }}-suffix",
		"plain":    "untouched",
		"number":   42,
	}
	params := map[string]any{
		"list": []any{"a", "b"},
		"name": "kb",
	}
	out, err := SubstituteParams(config, params)
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, out["whole"])
	assert.Equal(t, "prefix-kb-suffix", out["embedded"])
	assert.Equal(t, "untouched", out["plain"])
	assert.Equal(t, 42, out["number"])
}

func TestSubstituteParamsMissingParamStaysLiteral(t *testing.T) {
	out, err := SubstituteParams(map[string]any{"v": "{{ghost}}"}, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "{{ghost}}", out["v"])
}
