package codec

import (
	"context"
	"fmt"

	binschema "github.com/reoring/binschema"
)

// ValidateFunc reports whether a value is acceptable.
type ValidateFunc func(ctx context.Context, obj any, env *binschema.Context) bool

// Validator checks a condition on the value in both directions: after the
// child parses and before it builds. Rejection raises a validation_error.
func Validator(sub binschema.Construct, validate ValidateFunc) (*binschema.Adapter, error) {
	if validate == nil {
		return nil, binschema.Issues{binschema.IssueAt("/", binschema.CodeValue, "nil validate func", nil)}
	}
	check := func(ctx context.Context, obj any, env *binschema.Context) (any, error) {
		if !validate(ctx, obj, env) {
			return nil, binschema.Issues{binschema.IssueAt(
				"/", binschema.CodeValidation, fmt.Sprintf("invalid object %v", obj), nil,
			)}
		}
		return obj, nil
	}
	return binschema.NewAdapter(sub, check, check), nil
}

// OneOf validates that the value is a member of the allowed set, using the
// same structural equality as container comparison.
func OneOf(sub binschema.Construct, allowed ...any) (*binschema.Adapter, error) {
	return Validator(sub, func(ctx context.Context, obj any, env *binschema.Context) bool {
		for _, want := range allowed {
			if binschema.ValueEqual(obj, want) {
				return true
			}
		}
		return false
	})
}
