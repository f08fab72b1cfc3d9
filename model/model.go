package model

import (
	"time"

	"github.com/google/uuid"
)

// Pipeline is the persistent authoring document: metadata plus the spec the
// external execution engine consumes.
type Pipeline struct {
	ID          string         `yaml:"id" json:"id"`
	Name        string         `yaml:"name" json:"name"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	Spec        PipelineSpec   `yaml:"spec" json:"spec"`
	Templates   []string       `yaml:"templates,omitempty" json:"templates,omitempty"`
	Status      PipelineStatus `yaml:"status,omitempty" json:"status,omitempty"`
	Tags        []string       `yaml:"tags,omitempty" json:"tags,omitempty"`
	CreatedAt   time.Time      `yaml:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt   time.Time      `yaml:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type PipelineSpec struct {
	Version    string               `yaml:"version" json:"version"`
	Steps      []PipelineStep       `yaml:"steps" json:"steps"`
	Parameters map[string]Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

// PipelineStep is the execution-facing, linear view of one node. Dependencies
// are derived from graph connections, never authored directly.
type PipelineStep struct {
	ID           string         `yaml:"id" json:"id"`
	Name         string         `yaml:"name" json:"name"`
	Type         string         `yaml:"type" json:"type"`
	Config       map[string]any `yaml:"config,omitempty" json:"config,omitempty"`
	Inputs       []StepInput    `yaml:"inputs,omitempty" json:"inputs,omitempty"`
	Outputs      []StepOutput   `yaml:"outputs,omitempty" json:"outputs,omitempty"`
	Dependencies []string       `yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
	Retry        *RetryPolicy   `yaml:"retry,omitempty" json:"retry,omitempty"`
	Timeout      int            `yaml:"timeout,omitempty" json:"timeout,omitempty"` // seconds
}

type StepInput struct {
	Name     string   `yaml:"name" json:"name"`
	Type     DataType `yaml:"type" json:"type"`
	Required bool     `yaml:"required,omitempty" json:"required,omitempty"`
	// Source names the upstream output port feeding this input, when wired.
	Source string `yaml:"source,omitempty" json:"source,omitempty"`
}

type StepOutput struct {
	Name        string   `yaml:"name" json:"name"`
	Type        DataType `yaml:"type" json:"type"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
}

// DataType classifies what travels through a port. Two ports may only be
// connected when their data types are equal.
type DataType string

const (
	DataTypeFile      DataType = "file"
	DataTypeData      DataType = "data"
	DataTypeConfig    DataType = "config"
	DataTypeReference DataType = "reference"
)

// StepCategory groups step types for palette display.
type StepCategory string

const (
	CategoryInput      StepCategory = "input"
	CategoryProcessing StepCategory = "processing"
	CategoryOutput     StepCategory = "output"
	CategoryUtility    StepCategory = "utility"
)

type PipelineStatus string

const (
	PipelineDraft    PipelineStatus = "draft"
	PipelineActive   PipelineStatus = "active"
	PipelinePaused   PipelineStatus = "paused"
	PipelineError    PipelineStatus = "error"
	PipelineArchived PipelineStatus = "archived"
)

type Parameter struct {
	Name        string   `yaml:"name" json:"name"`
	Type        string   `yaml:"type" json:"type"` // string, number, boolean, object, array
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool     `yaml:"required,omitempty" json:"required,omitempty"`
	Default     any      `yaml:"default,omitempty" json:"default,omitempty"`
	Enum        []string `yaml:"enum,omitempty" json:"enum,omitempty"`
}

type RetryPolicy struct {
	MaxAttempts       int     `yaml:"max_attempts" json:"max_attempts"`
	InitialDelayMs    int     `yaml:"initial_delay_ms" json:"initial_delay_ms"`
	BackoffMultiplier float64 `yaml:"backoff_multiplier,omitempty" json:"backoff_multiplier,omitempty"`
	MaxDelayMs        int     `yaml:"max_delay_ms,omitempty" json:"max_delay_ms,omitempty"`
}

// NewPipeline returns an empty draft pipeline with a fresh id.
func NewPipeline(name, description string) *Pipeline {
	now := time.Now().UTC()
	return &Pipeline{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Spec:        PipelineSpec{Version: "1.0.0"},
		Status:      PipelineDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
