package dsl

import (
	"context"
	"fmt"

	binschema "github.com/reoring/binschema"
	"github.com/reoring/binschema/codec"
	"github.com/reoring/binschema/internal/bits"
)

// Bitwise runs sub against a byte-per-bit view of the stream: parsing expands
// each raw byte into eight bit bytes before the child sees them, building
// packs the child's bit bytes back down. The child's total width must be a
// multiple of eight bits; when the width is statically known the mismatch is
// rejected at declaration time.
func Bitwise(sub binschema.Construct) binschema.Construct {
	if n, err := binschema.SizeOf(sub); err == nil && n%8 != 0 {
		panic(binschema.Issues{binschema.IssueAt(
			"/", binschema.CodeValue,
			fmt.Sprintf("bit run of %d bits does not pack into whole bytes", n), nil,
		)})
	}
	encoder := func(data []byte) ([]byte, error) { return bits.DecodeBin(data) }
	decoder := func(data []byte) ([]byte, error) { return bits.EncodeBin(data), nil }
	resizer := func(size int) int { return size / 8 }
	return binschema.Must(binschema.NewBuffered(sub, encoder, decoder, resizer))
}

// BitStruct declares a struct whose fields are measured in bits.
func BitStruct(name string, subcons ...binschema.Construct) binschema.Construct {
	return Bitwise(Struct(name, subcons...))
}

// BitField declares an unsigned integer of the given bit width. It only makes
// sense inside a Bitwise or BitStruct run.
func BitField(name string, width int) binschema.Construct {
	return binschema.Must(codec.BitInteger(Field(name, width), width))
}

// BitFieldWith is BitField with group swapping and signedness control.
func BitFieldWith(name string, width int, swapped, signed bool, bytesize int) binschema.Construct {
	return binschema.Must(codec.BitIntegerWith(Field(name, width), width, swapped, signed, bytesize))
}

// Bit declares a single-bit unsigned integer.
func Bit(name string) binschema.Construct { return BitField(name, 1) }

// Nibble declares a four-bit unsigned integer.
func Nibble(name string) binschema.Construct { return BitField(name, 4) }

// Octet declares an eight-bit unsigned integer.
func Octet(name string) binschema.Construct { return BitField(name, 8) }

// Flag declares a single bit surfaced as a bool.
func Flag(name string) binschema.Construct {
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
	return codec.Expr(Bit(name), encode, decode)
}

// Padding declares nameless filler bytes, zero-filled on build and unchecked
// on parse.
func Padding(length int) binschema.Construct {
	return PaddingWith(length, 0x00, false)
}

// PaddingWith declares filler with an explicit pattern byte; strict parsing
// verifies every filler byte matches the pattern.
func PaddingWith(length int, pattern byte, strict bool) binschema.Construct {
	return binschema.Must(codec.Padding(Field("", length), pattern, strict))
}
