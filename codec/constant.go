package codec

import (
	"context"
	"fmt"

	binschema "github.com/reoring/binschema"
)

// Const enforces a magic value. Parsing fails with a const_error when the
// child's value differs from value; building substitutes value when given nil
// and rejects anything else that differs.
func Const(sub binschema.Construct, value any) (*binschema.Adapter, error) {
	encode := func(ctx context.Context, obj any, env *binschema.Context) (any, error) {
		if obj == nil || binschema.ValueEqual(obj, value) {
			return value, nil
		}
		return nil, constIssue(value, obj)
	}
	decode := func(ctx context.Context, obj any, env *binschema.Context) (any, error) {
		if !binschema.ValueEqual(obj, value) {
			return nil, constIssue(value, obj)
		}
		return obj, nil
	}
	return binschema.NewAdapter(sub, encode, decode), nil
}

func constIssue(expected, got any) binschema.Issues {
	return binschema.Issues{binschema.IssueAt(
		"/",
		binschema.CodeConst,
		fmt.Sprintf("expected %v, found %v", expected, got),
		map[string]any{"expected": fmt.Sprint(expected), "got": fmt.Sprint(got)},
	)}
}
