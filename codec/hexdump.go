package codec

import (
	"context"
	"fmt"

	binschema "github.com/reoring/binschema"
	"github.com/reoring/binschema/internal/bits"
)

// HexDump renders the child's bytes as a hex dump string on parse and decodes
// a hex string, ignoring spaces and newlines, on build. The parse and build
// value domains differ on purpose.
func HexDump(sub binschema.Construct, linesize int) (*binschema.Adapter, error) {
	if linesize <= 0 {
		linesize = 16
	}
	encode := func(ctx context.Context, obj any, env *binschema.Context) (any, error) {
		s, ok := obj.(string)
		if !ok {
			return nil, binschema.Issues{binschema.IssueAt(
				"/", binschema.CodeParseError, fmt.Sprintf("expected a hex string, got %T", obj), nil,
			)}
		}
		out, err := bits.ParseDump(s)
		if err != nil {
			return nil, binschema.Issues{binschema.IssueAt("/", binschema.CodeParseError, err.Error(), nil)}
		}
		return out, nil
	}
	decode := func(ctx context.Context, obj any, env *binschema.Context) (any, error) {
		b, ok := binschema.AsBytes(obj)
		if !ok {
			return nil, binschema.Issues{binschema.IssueAt(
				"/", binschema.CodeInvalidType, fmt.Sprintf("expected bytes, got %T", obj), nil,
			)}
		}
		return bits.Dump(b, linesize), nil
	}
	return binschema.NewAdapter(sub, encode, decode), nil
}
