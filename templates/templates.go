// Package templates provides ready-made pipeline blueprints. A template is a
// linear chain of catalog step types plus declared parameters; instantiating
// it produces a concrete Pipeline with {{param}} placeholders substituted
// into step configs.
package templates

import (
	"context"
	"regexp"
	"strings"

	pongo2 "github.com/flosch/pongo2/v6"

	"github.com/ragforge/flowgraph/model"
	"github.com/ragforge/flowgraph/registry"
	"github.com/ragforge/flowgraph/utils"
)

// TemplateStep names one catalog step type in a template chain, with config
// overrides layered over the type's default config.
type TemplateStep struct {
	ID     string
	Type   string
	Config map[string]any
}

// Template is a reusable pipeline blueprint.
type Template struct {
	ID          string
	Name        string
	Description string
	Category    string
	Tags        []string
	Parameters  map[string]model.Parameter
	Steps       []TemplateStep
}

var errs = utils.NewErrorWrapper("templates")

// Instantiate builds a concrete pipeline from the template. Steps are chained
// linearly: each step depends on the previous one, with its first input fed
// by the previous step's first output. Parameter placeholders in configs are
// substituted from params.
func (t *Template) Instantiate(ctx context.Context, reg registry.StepRegistry, name string, params map[string]any) (*model.Pipeline, error) {
	if name == "" {
		return nil, errs.Failf("pipeline name is required")
	}
	for pname, p := range t.Parameters {
		if p.Required {
			if _, ok := params[pname]; !ok {
				return nil, errs.Failf("missing required parameter %q", pname)
			}
		}
	}

	p := model.NewPipeline(name, t.Description)
	p.Templates = []string{t.ID}
	p.Tags = append(p.Tags, t.Tags...)
	p.Spec.Parameters = t.Parameters

	var prev *model.PipelineStep
	for _, ts := range t.Steps {
		def, err := reg.Lookup(ctx, ts.Type)
		if err != nil {
			return nil, err
		}
		if def == nil {
			return nil, errs.Failf("template %s references unknown step type %q", t.ID, ts.Type)
		}

		config := map[string]any{}
		for k, v := range def.DefaultConfig {
			config[k] = v
		}
		for k, v := range ts.Config {
			config[k] = v
		}
		config, err = SubstituteParams(config, params)
		if err != nil {
			return nil, err
		}

		step := model.PipelineStep{
			ID:     ts.ID,
			Name:   def.Name,
			Type:   def.Type,
			Config: config,
		}
		for _, in := range def.Inputs {
			step.Inputs = append(step.Inputs, model.StepInput{
				Name:     in.Name,
				Type:     in.Type,
				Required: in.Required,
			})
		}
		for _, out := range def.Outputs {
			step.Outputs = append(step.Outputs, model.StepOutput{
				Name:        out.Name,
				Type:        out.Type,
				Description: out.Description,
			})
		}
		if prev != nil {
			step.Dependencies = []string{prev.ID}
			if len(step.Inputs) > 0 && len(prev.Outputs) > 0 {
				step.Inputs[0].Source = prev.Outputs[0].Name
			}
		}
		p.Spec.Steps = append(p.Spec.Steps, step)
		prev = &p.Spec.Steps[len(p.Spec.Steps)-1]
	}
	return p, nil
}

var placeholderRe = regexp.MustCompile(`^\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}$`)

// SubstituteParams resolves {{param}} placeholders in config values. A value
// that is exactly one placeholder is replaced by the raw parameter value, so
// arrays and objects keep their type; strings with embedded placeholders are
// rendered as pongo2 templates.
func SubstituteParams(config map[string]any, params map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(config))
	for k, v := range config {
		s, ok := v.(string)
		if !ok {
			out[k] = v
			continue
		}
		if m := placeholderRe.FindStringSubmatch(s); m != nil {
			if pv, ok := params[m[1]]; ok {
				out[k] = pv
			} else {
				out[k] = s
			}
			continue
		}
		if strings.Contains(s, "{{") {
			tpl, err := pongo2.FromString(s)
			if err != nil {
				return nil, errs.Wrapf(err, "config key %q", k)
			}
			rendered, err := tpl.Execute(pongo2.Context(params))
			if err != nil {
				return nil, errs.Wrapf(err, "config key %q", k)
			}
			out[k] = rendered
			continue
		}
		out[k] = s
	}
	return out, nil
}
