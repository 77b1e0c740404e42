// Package codec provides the adapter library: value transformations layered
// over a child descriptor. Adapters never touch the stream; the child performs
// all I/O and the adapter rewrites the value on the way in or out.
package codec

import (
	"context"
	"fmt"

	binschema "github.com/reoring/binschema"
	"github.com/reoring/binschema/internal/bits"
)

// BitInteger converts between a width-long bit run and an integer, unsigned
// and unswapped. The child must produce the bit run, typically a StaticField
// inside a Bitwise buffer.
func BitInteger(sub binschema.Construct, width int) (*binschema.Adapter, error) {
	return BitIntegerWith(sub, width, false, false, 8)
}

// BitIntegerWith is BitInteger with the full parameter set: swapped reverses
// bytesize-wide groups before conversion, signed selects two's complement.
func BitIntegerWith(sub binschema.Construct, width int, swapped, signed bool, bytesize int) (*binschema.Adapter, error) {
	if width <= 0 {
		return nil, bitIntegerIssue(fmt.Sprintf("width must be > 0, got %d", width))
	}
	if bytesize <= 0 {
		return nil, bitIntegerIssue(fmt.Sprintf("bytesize must be > 0, got %d", bytesize))
	}
	encode := func(ctx context.Context, obj any, env *binschema.Context) (any, error) {
		n, ok := binschema.AsInt(obj)
		if !ok {
			return nil, bitIntegerIssue(fmt.Sprintf("expected an integer, got %T", obj))
		}
		if !signed && n < 0 {
			return nil, bitIntegerIssue(fmt.Sprintf("unsigned bit integer cannot encode %d", n))
		}
		run := bits.IntToBin(n, width)
		if swapped {
			run = bits.SwapBytes(run, bytesize)
		}
		return run, nil
	}
	decode := func(ctx context.Context, obj any, env *binschema.Context) (any, error) {
		run, ok := binschema.AsBytes(obj)
		if !ok {
			return nil, bitIntegerIssue(fmt.Sprintf("expected a bit run, got %T", obj))
		}
		if swapped {
			run = bits.SwapBytes(run, bytesize)
		}
		return bits.BinToInt(run, signed), nil
	}
	return binschema.NewAdapter(sub, encode, decode), nil
}

func bitIntegerIssue(msg string) binschema.Issues {
	return binschema.Issues{binschema.IssueAt("/", binschema.CodeBitInteger, msg, nil)}
}
