package codec

import (
	"bytes"
	"context"
	"fmt"

	binschema "github.com/reoring/binschema"
)

// Padding fills the child's width with a repeated pattern byte on build. When
// strict, parsing verifies every padding byte matches the pattern and fails
// with a padding_error otherwise; lax padding accepts anything.
func Padding(sub binschema.Construct, pattern byte, strict bool) (*binschema.Adapter, error) {
	encode := func(ctx context.Context, obj any, env *binschema.Context) (any, error) {
		n, err := binschema.SizeOfWith(sub, env)
		if err != nil {
			return nil, err
		}
		return bytes.Repeat([]byte{pattern}, n), nil
	}
	decode := func(ctx context.Context, obj any, env *binschema.Context) (any, error) {
		if !strict {
			return obj, nil
		}
		got, ok := binschema.AsBytes(obj)
		if !ok {
			return nil, paddingIssue(fmt.Sprintf("expected padding bytes, got %T", obj))
		}
		for i, b := range got {
			if b != pattern {
				return nil, paddingIssue(fmt.Sprintf("expected 0x%02x at byte %d, found 0x%02x", pattern, i, b))
			}
		}
		return obj, nil
	}
	return binschema.NewAdapter(sub, encode, decode), nil
}

func paddingIssue(msg string) binschema.Issues {
	return binschema.Issues{binschema.IssueAt("/", binschema.CodePadding, msg, nil)}
}
