package utils

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorWrapper(t *testing.T) {
	errs := NewErrorWrapper("storage")

	err := errs.Failf("driver %s not supported", "etcd")
	if err == nil || !strings.Contains(err.Error(), "storage: driver etcd not supported") {
		t.Errorf("Failf output: %v", err)
	}

	base := errors.New("disk full")
	wrapped := errs.Wrapf(base, "saving %s", "p1")
	if !errors.Is(wrapped, base) {
		t.Errorf("Wrapf must preserve the cause chain")
	}
	if !strings.Contains(wrapped.Error(), "storage: saving p1") {
		t.Errorf("Wrapf output: %v", wrapped)
	}
	if errs.Wrapf(nil, "ignored") != nil {
		t.Errorf("wrapping nil must stay nil")
	}
}

func TestMarshalJSONIndent(t *testing.T) {
	data, err := MarshalJSONIndent(map[string]string{"k": "v"}, "")
	if err != nil {
		t.Fatalf("MarshalJSONIndent: %v", err)
	}
	if !strings.Contains(string(data), "  \"k\": \"v\"") {
		t.Errorf("default indent not applied: %q", string(data))
	}
}

func TestValidateRequired(t *testing.T) {
	if err := ValidateRequired("name", "kb"); err != nil {
		t.Errorf("non-empty string must pass: %v", err)
	}
	if err := ValidateRequired("name", ""); err == nil {
		t.Errorf("empty string must fail")
	}
	if err := ValidateRequired("name", nil); err == nil {
		t.Errorf("nil must fail")
	}
	if err := ValidateRequired("steps", []any{}); err == nil {
		t.Errorf("empty slice must fail")
	}
}

func TestValidateOneOf(t *testing.T) {
	allowed := []string{"memory", "sqlite", "postgres"}
	if err := ValidateOneOf("driver", "sqlite", allowed); err != nil {
		t.Errorf("allowed value must pass: %v", err)
	}
	if err := ValidateOneOf("driver", "etcd", allowed); err == nil {
		t.Errorf("disallowed value must fail")
	}
}
