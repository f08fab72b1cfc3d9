package graph

import (
	"context"
	"errors"
	"testing"

	"github.com/ragforge/flowgraph/model"
	"github.com/ragforge/flowgraph/registry"
	"github.com/ragforge/flowgraph/templates"
)

func chainSteps() []model.PipelineStep {
	return []model.PipelineStep{
		{ID: "a", Name: "Ingest", Type: "fetch", Config: map[string]any{"source": "s3"}},
		{ID: "b", Name: "Middle", Type: "stage", Dependencies: []string{"a"}},
		{ID: "c", Name: "Parse", Type: "parse", Dependencies: []string{"b"}, Timeout: 30},
	}
}

func TestLoadReconstructsChain(t *testing.T) {
	g := newTestGraph(t)
	warnings, err := g.Load(context.Background(), chainSteps())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if g.Len() != 3 {
		t.Fatalf("expected 3 nodes, got %d", g.Len())
	}
	if len(g.Connections()) != 2 {
		t.Fatalf("expected 2 connections, got %d", len(g.Connections()))
	}
	a, b := g.Node("a"), g.Node("b")
	if a == nil || b == nil {
		t.Fatalf("step ids must survive as node ids")
	}
	if a.Name != "Ingest" || a.Config["source"] != "s3" {
		t.Errorf("step name/config not applied: %q %v", a.Name, a.Config)
	}
	if !a.Outputs[0].Bound() || !b.Inputs[0].Bound() {
		t.Errorf("first-port dependency wiring missing")
	}
	if g.Selected() != nil {
		t.Errorf("loading must not select anything")
	}
}

func TestLoadRoundTrip(t *testing.T) {
	g := newTestGraph(t)
	if _, err := g.Load(context.Background(), chainSteps()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	steps := g.ToPipeline()
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(steps))
	}
	wantDeps := [][]string{nil, {"a"}, {"b"}}
	for i, step := range steps {
		if len(step.Dependencies) != len(wantDeps[i]) {
			t.Errorf("step %s deps = %v, want %v", step.ID, step.Dependencies, wantDeps[i])
			continue
		}
		for j, d := range wantDeps[i] {
			if step.Dependencies[j] != d {
				t.Errorf("step %s deps = %v, want %v", step.ID, step.Dependencies, wantDeps[i])
			}
		}
	}
	if steps[2].Timeout != 30 {
		t.Errorf("timeout must survive the round trip, got %d", steps[2].Timeout)
	}
	if steps[1].Inputs[0].Source != "data" {
		t.Errorf("bound input source = %q, want source port name", steps[1].Inputs[0].Source)
	}

	// Loading the emitted list again must rebuild the same topology.
	g2 := newTestGraph(t)
	warnings, err := g2.Load(context.Background(), steps)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("reload warnings: %v", warnings)
	}
	if g2.Len() != 3 || len(g2.Connections()) != 2 {
		t.Errorf("reload topology: %d nodes, %d connections", g2.Len(), len(g2.Connections()))
	}
}

func TestLoadRetryPolicySurvives(t *testing.T) {
	g := newTestGraph(t)
	steps := []model.PipelineStep{
		{ID: "a", Type: "fetch", Retry: &model.RetryPolicy{MaxAttempts: 3, InitialDelayMs: 500}},
	}
	if _, err := g.Load(context.Background(), steps); err != nil {
		t.Fatal(err)
	}
	out := g.ToPipeline()
	if out[0].Retry == nil || out[0].Retry.MaxAttempts != 3 {
		t.Errorf("retry policy lost: %+v", out[0].Retry)
	}
}

func TestLoadWarnsOnUnknownDependency(t *testing.T) {
	g := newTestGraph(t)
	steps := []model.PipelineStep{
		{ID: "p", Type: "parse", Dependencies: []string{"ghost"}},
	}
	warnings, err := g.Load(context.Background(), steps)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", warnings)
	}
	if len(g.Connections()) != 0 {
		t.Errorf("dropped dependency must not leave a connection")
	}
}

func TestLoadWarnsOnUnknownStepType(t *testing.T) {
	g := newTestGraph(t)
	steps := []model.PipelineStep{
		{ID: "x", Type: "mystery"},
		{ID: "p", Type: "parse", Dependencies: []string{"x"}},
	}
	warnings, err := g.Load(context.Background(), steps)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// One for the unknown type, one for the unreconstructable link.
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", warnings)
	}
	if n := g.Node("x"); n == nil || !n.Unresolved {
		t.Errorf("unknown step must load as an unresolved node")
	}
	if len(g.Connections()) != 0 {
		t.Errorf("no connection can attach to a portless node")
	}
}

func TestLoadWarnsOnContestedFirstPort(t *testing.T) {
	g := newTestGraph(t)
	steps := []model.PipelineStep{
		{ID: "a", Type: "fetch"},
		{ID: "b", Type: "fetch"},
		{ID: "p", Type: "parse", Dependencies: []string{"a", "b"}},
	}
	warnings, err := g.Load(context.Background(), steps)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("second dependency must warn, got %v", warnings)
	}
	if len(g.Connections()) != 1 {
		t.Errorf("only the first dependency can bind, got %d connections", len(g.Connections()))
	}
}

func TestLoadReplacesExistingState(t *testing.T) {
	g := newTestGraph(t)
	if _, err := g.AddNode(context.Background(), "fetch"); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Load(context.Background(), chainSteps()); err != nil {
		t.Fatal(err)
	}
	if g.Len() != 3 {
		t.Errorf("Load must replace prior contents, got %d nodes", g.Len())
	}
}

func TestRemoveMiddleOfLoadedChain(t *testing.T) {
	g := newTestGraph(t)
	if _, err := g.Load(context.Background(), chainSteps()); err != nil {
		t.Fatal(err)
	}
	if err := g.RemoveNode("b"); err != nil {
		t.Fatalf("RemoveNode: %v", err)
	}
	if g.Len() != 2 || len(g.Connections()) != 0 {
		t.Errorf("expected 2 nodes and 0 connections, got %d/%d", g.Len(), len(g.Connections()))
	}
	steps := g.ToPipeline()
	for _, step := range steps {
		if len(step.Dependencies) != 0 {
			t.Errorf("step %s kept stale dependencies %v", step.ID, step.Dependencies)
		}
	}
}

// flakyRegistry fails lookups on demand, wrapping a working catalog.
type flakyRegistry struct {
	inner registry.StepRegistry
	fail  bool
}

func (r *flakyRegistry) ListTypes(ctx context.Context) ([]registry.StepTypeDefinition, error) {
	if r.fail {
		return nil, errors.New("catalog offline")
	}
	return r.inner.ListTypes(ctx)
}

func (r *flakyRegistry) Lookup(ctx context.Context, stepType string) (*registry.StepTypeDefinition, error) {
	if r.fail {
		return nil, errors.New("catalog offline")
	}
	return r.inner.Lookup(ctx, stepType)
}

func TestLoadCatalogErrorLeavesGraphIntact(t *testing.T) {
	reg := &flakyRegistry{inner: newTestRegistry()}
	g := New(reg)
	if _, err := g.Load(context.Background(), chainSteps()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	reg.fail = true
	if _, err := g.Load(context.Background(), chainSteps()); err == nil {
		t.Fatalf("catalog error must fail the load")
	}
	if g.Len() != 3 || len(g.Connections()) != 2 {
		t.Errorf("failed load must not touch the graph, got %d nodes %d connections", g.Len(), len(g.Connections()))
	}
}

func TestBuiltinTemplatePipelineValidates(t *testing.T) {
	tpl := templates.Find("kb-local-folder")
	if tpl == nil {
		t.Fatal("kb-local-folder template missing")
	}
	p, err := tpl.Instantiate(context.Background(), registry.NewBuiltinRegistry(), "docs-kb", map[string]any{
		"sourceUrl":      "/data/docs",
		"embeddingModel": "all-minilm-l6",
		"name":           "product-docs",
		"product":        "acme",
	})
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}

	g := New(registry.NewBuiltinRegistry())
	warnings, err := g.Load(context.Background(), p.Spec.Steps)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	res := g.Validate()
	if !res.Valid {
		t.Fatalf("catalog template pipeline must validate clean, got %+v", res.Errors)
	}
	if res := ValidateSteps(p.Spec.Steps); !res.Valid {
		t.Fatalf("template dependencies must all resolve, got %+v", res.Errors)
	}
}

func TestToPipelineEmitsInsertionOrder(t *testing.T) {
	g := newTestGraph(t)
	p, _ := g.AddNode(context.Background(), "parse")
	f, _ := g.AddNode(context.Background(), "fetch")
	if _, err := g.Connect(f.ID, f.Outputs[0].ID, p.ID, p.Inputs[0].ID); err != nil {
		t.Fatal(err)
	}
	steps := g.ToPipeline()
	if steps[0].ID != p.ID || steps[1].ID != f.ID {
		t.Errorf("steps must come out in insertion order, got %s then %s", steps[0].ID, steps[1].ID)
	}
}
