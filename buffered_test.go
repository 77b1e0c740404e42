package binschema_test

import (
	"bytes"
	"context"
	"testing"

	binschema "github.com/reoring/binschema"
)

func xorBytes(data []byte) ([]byte, error) {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ 0xFF
	}
	return out, nil
}

func TestBuffered_TransformsBothDirections(t *testing.T) {
	ctx := context.Background()
	inner, err := binschema.NewStaticField("raw", 2)
	if err != nil {
		t.Fatalf("declaring field: %v", err)
	}
	buf, err := binschema.NewBuffered(inner, xorBytes, xorBytes, func(n int) int { return n })
	if err != nil {
		t.Fatalf("declaring buffered: %v", err)
	}

	v, err := binschema.Parse(ctx, buf, []byte{0x00, 0xF0})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !bytes.Equal(v.([]byte), []byte{0xFF, 0x0F}) {
		t.Fatalf("expected decoded view, got %x", v)
	}

	out, err := binschema.Build(ctx, buf, []byte{0xFF, 0x0F})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !bytes.Equal(out, []byte{0x00, 0xF0}) {
		t.Fatalf("expected encoded output, got %x", out)
	}
}

func TestBuffered_EncoderLengthMismatch(t *testing.T) {
	ctx := context.Background()
	inner, err := binschema.NewStaticField("raw", 2)
	if err != nil {
		t.Fatalf("declaring field: %v", err)
	}
	grow := func(data []byte) ([]byte, error) { return append(data, 0), nil }
	buf, err := binschema.NewBuffered(inner, grow, xorBytes, func(n int) int { return n })
	if err != nil {
		t.Fatalf("declaring buffered: %v", err)
	}
	if err := func() error {
		_, err := binschema.Build(ctx, buf, []byte{1, 2})
		return err
	}(); err == nil {
		t.Fatalf("expected length mismatch error")
	}
}

func TestBuffered_Resizer(t *testing.T) {
	inner, err := binschema.NewStaticField("bits", 16)
	if err != nil {
		t.Fatalf("declaring field: %v", err)
	}
	buf, err := binschema.NewBuffered(inner,
		func(d []byte) ([]byte, error) { return d, nil },
		func(d []byte) ([]byte, error) { return d, nil },
		func(n int) int { return n / 8 },
	)
	if err != nil {
		t.Fatalf("declaring buffered: %v", err)
	}
	if n, err := binschema.SizeOf(buf); err != nil || n != 2 {
		t.Fatalf("expected resized width 2, got %d %v", n, err)
	}
}

func TestAdapter_DecodeAndEncodeHooks(t *testing.T) {
	ctx := context.Background()
	inner, err := binschema.NewFormatField("quarters", '>', 'B')
	if err != nil {
		t.Fatalf("declaring field: %v", err)
	}
	quadruple := binschema.NewAdapter(inner,
		func(ctx context.Context, obj any, env *binschema.Context) (any, error) {
			n, _ := binschema.AsInt(obj)
			return n / 4, nil
		},
		func(ctx context.Context, obj any, env *binschema.Context) (any, error) {
			n, _ := binschema.AsInt(obj)
			return n * 4, nil
		},
	)

	v, err := binschema.Parse(ctx, quadruple, []byte{8})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v != int64(32) {
		t.Fatalf("expected decode hook to run, got %v", v)
	}
	out, err := binschema.Build(ctx, quadruple, int64(32))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !bytes.Equal(out, []byte{8}) {
		t.Fatalf("expected encode hook to run, got %x", out)
	}
}
