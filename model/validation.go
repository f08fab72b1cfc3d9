package model

// ValidationResult is the structural report handed to the editor surface
// before a pipeline is submitted for execution.
type ValidationResult struct {
	Valid    bool                `json:"valid"`
	Errors   []ValidationError   `json:"errors,omitempty"`
	Warnings []ValidationWarning `json:"warnings,omitempty"`
}

type ValidationError struct {
	Type    ValidationErrorType `json:"type"`
	NodeID  string              `json:"node_id,omitempty"`
	Message string              `json:"message"`
}

type ValidationErrorType string

const (
	ErrMissingConnection  ValidationErrorType = "missing_connection"
	ErrCircularDependency ValidationErrorType = "circular_dependency"
	ErrUnknownDependency  ValidationErrorType = "unknown_dependency"
)

type ValidationWarning struct {
	Type    ValidationWarningType `json:"type"`
	NodeID  string                `json:"node_id,omitempty"`
	Message string                `json:"message"`
}

type ValidationWarningType string

const (
	WarnUnknownStepType ValidationWarningType = "unknown_step_type"
	WarnUnwiredOutput   ValidationWarningType = "unwired_output"
	WarnOrphanNode      ValidationWarningType = "orphan_node"
)
