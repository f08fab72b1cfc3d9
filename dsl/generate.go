package dsl

import (
	"gopkg.in/yaml.v3"

	"github.com/ragforge/flowgraph/model"
	"github.com/ragforge/flowgraph/utils"
)

// PipelineToYAML converts a Pipeline struct to YAML bytes
func PipelineToYAML(p *model.Pipeline) ([]byte, error) {
	return yaml.Marshal(p)
}

// PipelineToYAMLString converts a Pipeline struct to a YAML string
func PipelineToYAMLString(p *model.Pipeline) (string, error) {
	bytes, err := PipelineToYAML(p)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// PipelineToJSON converts a Pipeline struct to pretty JSON bytes
func PipelineToJSON(p *model.Pipeline) ([]byte, error) {
	return utils.MarshalJSONIndent(p, "")
}
