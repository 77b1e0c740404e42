package binschema

import (
	"context"
	"fmt"
)

// Encoder transforms the child's built bytes into their outer representation.
// It must be length-preserving under the resizer: the encoded length has to
// equal resizer(child size) or the build fails.
type Encoder func(data []byte) ([]byte, error)

// Decoder transforms raw outer bytes into the representation the child parses.
type Decoder func(data []byte) ([]byte, error)

// Resizer maps the child's size to the number of raw bytes occupied on the
// outer stream.
type Resizer func(size int) int

// Buffered materializes an intermediate buffer between the outer stream and
// the child: parse reads resizer(child size) raw bytes, decodes them, and
// parses the child from the decoded view; build runs the child into a scratch
// buffer, encodes it, and writes the result. Pointer-style stream repositioning
// inside a Buffered is unsupported since offsets do not translate across the
// buffer boundary.
type Buffered struct {
	Subconstruct
	encoder Encoder
	decoder Decoder
	resizer Resizer
}

// NewBuffered wraps sub with the given byte transformations.
func NewBuffered(sub Construct, encoder Encoder, decoder Decoder, resizer Resizer) (*Buffered, error) {
	if encoder == nil || decoder == nil || resizer == nil {
		return nil, singleIssue(CodeValue, "encoder, decoder and resizer are required")
	}
	return &Buffered{
		Subconstruct: WrapSubconstruct(sub),
		encoder:      encoder,
		decoder:      decoder,
		resizer:      resizer,
	}, nil
}

func (b *Buffered) ParseStream(ctx context.Context, r *Reader, env *Context) (any, error) {
	size, err := b.SizeOf(env)
	if err != nil {
		return nil, err
	}
	raw, err := r.ReadExact(size)
	if err != nil {
		return nil, prefixPath(err, b.Name())
	}
	decoded, err := b.decoder(raw)
	if err != nil {
		return nil, prefixPath(fieldIssue(err.Error(), r.Offset(), nil), b.Name())
	}
	return b.Sub.ParseStream(ctx, NewReader(decoded), env)
}

func (b *Buffered) BuildStream(ctx context.Context, obj any, w *Writer, env *Context) error {
	size, err := b.SizeOf(env)
	if err != nil {
		return err
	}
	scratch := NewWriter()
	if err := b.Sub.BuildStream(ctx, obj, scratch, env); err != nil {
		return err
	}
	encoded, err := b.encoder(scratch.Bytes())
	if err != nil {
		return prefixPath(fieldIssue(err.Error(), int64(w.Len()), nil), b.Name())
	}
	if len(encoded) != size {
		return prefixPath(fieldIssue(
			fmt.Sprintf("wrong encoded length: expected %d, got %d", size, len(encoded)),
			int64(w.Len()),
			map[string]any{"expected": size, "got": len(encoded)},
		), b.Name())
	}
	return prefixPath(w.WriteExact(size, encoded), b.Name())
}

func (b *Buffered) SizeOf(env *Context) (int, error) {
	n, err := b.Sub.SizeOf(env)
	if err != nil {
		return 0, prefixPath(err, b.Name())
	}
	return b.resizer(n), nil
}
