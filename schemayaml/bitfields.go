package schemayaml

import (
	"context"
	"fmt"

	binschema "github.com/reoring/binschema"
	"github.com/reoring/binschema/codec"
	"github.com/reoring/binschema/internal/bits"
)

// Error-returning counterparts of the bit-level declaration macros. Imported
// documents are untrusted data, so declaration failures surface as issues
// instead of panics.

func bitwise(sub binschema.Construct) (binschema.Construct, error) {
	if n, err := binschema.SizeOf(sub); err == nil && n%8 != 0 {
		return nil, importIssue(fmt.Sprintf("bit run of %d bits does not pack into whole bytes", n))
	}
	encoder := func(data []byte) ([]byte, error) { return bits.DecodeBin(data) }
	decoder := func(data []byte) ([]byte, error) { return bits.EncodeBin(data), nil }
	resizer := func(size int) int { return size / 8 }
	return binschema.NewBuffered(sub, encoder, decoder, resizer)
}

func bitField(name string, width int, swapped, signed bool) (binschema.Construct, error) {
	sub, err := binschema.NewStaticField(name, width)
	if err != nil {
		return nil, err
	}
	return codec.BitIntegerWith(sub, width, swapped, signed, 8)
}

func flagField(name string) (binschema.Construct, error) {
	sub, err := bitField(name, 1, false, false)
	if err != nil {
		return nil, err
	}
	encode := func(ctx context.Context, obj any, env *binschema.Context) (any, error) {
		switch v := obj.(type) {
		case bool:
			if v {
				return int64(1), nil
			}
			return int64(0), nil
		case nil:
			return int64(0), nil
		}
		if n, ok := binschema.AsInt(obj); ok {
			return n, nil
		}
		return nil, binschema.Issues{binschema.IssueAt(
			"/", binschema.CodeInvalidType, fmt.Sprintf("expected bool, got %T", obj), nil,
		)}
	}
	decode := func(ctx context.Context, obj any, env *binschema.Context) (any, error) {
		n, ok := binschema.AsInt(obj)
		if !ok {
			return nil, binschema.Issues{binschema.IssueAt(
				"/", binschema.CodeInvalidType, fmt.Sprintf("expected a bit value, got %T", obj), nil,
			)}
		}
		return n != 0, nil
	}
	return binschema.NewAdapter(sub, encode, decode), nil
}
