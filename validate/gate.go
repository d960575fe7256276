package validate

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonwraymond/policyops/observe"
)

// Outcome error codes.
const (
	CodeSchemaViolation  = "schema_violation"
	CodeValidatorFailure = "validator_failure"
)

// OutcomeError is the structured error carried by a failed Outcome.
type OutcomeError struct {
	Code    string  `json:"code"`
	Message string  `json:"message"`
	Details Details `json:"details"`
}

// Details names the originating tool and, on schema failure, the
// per-field violations.
type Details struct {
	Tool       string      `json:"tool"`
	Violations []Violation `json:"violations,omitempty"`
}

// Error implements error so an OutcomeError can travel through
// error-shaped plumbing unchanged.
func (e *OutcomeError) Error() string {
	if len(e.Details.Violations) == 0 {
		return fmt.Sprintf("validate: %s (tool %q)", e.Message, e.Details.Tool)
	}
	parts := make([]string, len(e.Details.Violations))
	for i, viol := range e.Details.Violations {
		parts[i] = viol.String()
	}
	return fmt.Sprintf("validate: %s (tool %q): %s", e.Message, e.Details.Tool, strings.Join(parts, "; "))
}

// Outcome is the result of gating a tool output. Exactly one of Data
// and Error is meaningful: Data when OK is true, Error otherwise.
type Outcome struct {
	OK    bool          `json:"ok"`
	Data  any           `json:"data,omitempty"`
	Error *OutcomeError `json:"error,omitempty"`
}

// Gate validates tool results against their declared schemas.
//
// Contract: ValidateToolResult never panics and never returns a Go
// error. Expected schema failures and internal validator failures both
// come back as a failed Outcome, distinguished by code and message
// prefix, so callers can tell a data problem from a validator bug.
type Gate struct {
	validator schemaValidator
	logger    observe.Logger
	metrics   observe.Metrics
}

type schemaValidator interface {
	Validate(value any, schema *Schema) (any, []Violation)
}

// NewGate returns a Gate logging through logger and recording through
// metrics. Either may be nil; noops are substituted.
func NewGate(logger observe.Logger, metrics observe.Metrics) *Gate {
	if logger == nil {
		logger = observe.NewNoopLogger()
	}
	if metrics == nil {
		metrics = observe.NewNoopMetrics()
	}
	return &Gate{
		validator: NewValidator(),
		logger:    logger.WithComponent("validate"),
		metrics:   metrics,
	}
}

// ValidateToolResult checks result against schema. On success the
// returned Outcome carries the normalized data, which may differ from
// the input (defaults applied, types coerced); callers must use the
// returned data, not the original.
func (g *Gate) ValidateToolResult(ctx context.Context, result any, schema *Schema, toolName string) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error(ctx, "unexpected error during validation",
				observe.Field{Key: "tool", Value: toolName},
				observe.Field{Key: "panic", Value: fmt.Sprint(r)},
			)
			g.metrics.RecordValidation(ctx, toolName, false)
			outcome = Outcome{
				OK: false,
				Error: &OutcomeError{
					Code:    CodeValidatorFailure,
					Message: fmt.Sprintf("unexpected error during validation: %v", r),
					Details: Details{Tool: toolName},
				},
			}
		}
	}()

	data, violations := g.validator.Validate(result, schema)
	if len(violations) == 0 {
		g.metrics.RecordValidation(ctx, toolName, true)
		return Outcome{OK: true, Data: data}
	}

	g.logger.Warn(ctx, "tool result failed schema validation",
		observe.Field{Key: "tool", Value: toolName},
		observe.Field{Key: "violation_count", Value: len(violations)},
		observe.Field{Key: "first_violation", Value: violations[0].String()},
	)
	g.metrics.RecordValidation(ctx, toolName, false)
	return Outcome{
		OK: false,
		Error: &OutcomeError{
			Code:    CodeSchemaViolation,
			Message: "tool result does not match its declared schema",
			Details: Details{Tool: toolName, Violations: violations},
		},
	}
}

// ValidateToolResultOrError is a convenience that converts a failed
// Outcome into an error. It adds no semantics over ValidateToolResult.
func (g *Gate) ValidateToolResultOrError(ctx context.Context, result any, schema *Schema, toolName string) (any, error) {
	outcome := g.ValidateToolResult(ctx, result, schema, toolName)
	if !outcome.OK {
		return nil, outcome.Error
	}
	return outcome.Data, nil
}
