// Package dsl reads and writes pipeline documents: YAML/JSON parsing,
// JSON-Schema validation, and parameter templating.
package dsl

import (
	_ "embed"
	"encoding/json"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/ragforge/flowgraph/constants"
	"github.com/ragforge/flowgraph/model"
)

//go:embed pipeline.schema.json
var schemaJSON []byte

// Parse reads a YAML (or JSON, a YAML subset) pipeline file from the given
// path and unmarshals it into a Pipeline struct.
func Parse(path string) (*model.Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseFromString(string(data))
}

// ParseFromString unmarshals a YAML string into a Pipeline struct.
func ParseFromString(yamlStr string) (*model.Pipeline, error) {
	var p model.Pipeline
	if err := yaml.Unmarshal([]byte(yamlStr), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate runs JSON-Schema validation against the embedded pipeline schema.
func Validate(p *model.Pipeline) error {
	// Marshal the pipeline to JSON for validation
	jsonBytes, err := json.Marshal(p)
	if err != nil {
		return err
	}
	// Compile the embedded schema
	schema, err := jsonschema.CompileString(constants.PipelineSchemaFile, string(schemaJSON))
	if err != nil {
		return err
	}
	// Unmarshal JSON into a generic interface for validation
	var doc interface{}
	if err := json.Unmarshal(jsonBytes, &doc); err != nil {
		return err
	}
	return schema.Validate(doc)
}

// Load reads, templates, parses, and validates a pipeline file in one step.
func Load(path string, params map[string]any) (*model.Pipeline, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rendered, err := Render(string(raw), params)
	if err != nil {
		return nil, err
	}
	p, err := ParseFromString(rendered)
	if err != nil {
		return nil, err
	}
	if err := Validate(p); err != nil {
		return nil, err
	}
	return p, nil
}
