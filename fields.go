package binschema

import (
	"context"
	"fmt"

	"github.com/reoring/binschema/internal/packer"
)

// StaticField reads and writes a fixed number of raw bytes.
type StaticField struct {
	Meta
	length int
}

// NewStaticField builds a fixed-size raw byte field. Parsing returns the raw
// subslice of the input; building accepts []byte, string or an integer and
// checks the serialized width against length.
func NewStaticField(name string, length int) (*StaticField, error) {
	m, err := NewMeta(name, 0)
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, singleIssue(CodeValue, fmt.Sprintf("length must be >= 0, got %d", length))
	}
	return &StaticField{Meta: m, length: length}, nil
}

func (f *StaticField) ParseStream(ctx context.Context, r *Reader, env *Context) (any, error) {
	b, err := r.ReadExact(f.length)
	if err != nil {
		return nil, prefixPath(err, f.Name())
	}
	return b, nil
}

func (f *StaticField) BuildStream(ctx context.Context, obj any, w *Writer, env *Context) error {
	return prefixPath(w.WriteExact(f.length, obj), f.Name())
}

func (f *StaticField) SizeOf(env *Context) (int, error) { return f.length, nil }

// LengthFunc resolves a field length from the surrounding frame at call time.
type LengthFunc func(env *Context) (int64, error)

// CtxLength returns a LengthFunc that reads the named integer from the current
// frame, the common case of a length-prefixed payload.
func CtxLength(name string) LengthFunc {
	return func(env *Context) (int64, error) {
		return env.GetInt(name)
	}
}

// MetaField is StaticField with a runtime length. The length hook runs against
// the current frame on every parse, build and sizeof.
type MetaField struct {
	Meta
	lengthFn LengthFunc
}

// NewMetaField builds a raw byte field whose width is resolved per call.
func NewMetaField(name string, lengthFn LengthFunc) (*MetaField, error) {
	m, err := NewMeta(name, FlagDynamic)
	if err != nil {
		return nil, err
	}
	if lengthFn == nil {
		return nil, singleIssue(CodeValue, "nil length func")
	}
	return &MetaField{Meta: m, lengthFn: lengthFn}, nil
}

func (f *MetaField) length(env *Context) (int, error) {
	n, err := f.lengthFn(env)
	if err != nil {
		return 0, prefixPath(err, f.Name())
	}
	if n < 0 {
		return 0, singleIssue(CodeField, fmt.Sprintf("length must be >= 0, got %d", n))
	}
	return int(n), nil
}

func (f *MetaField) ParseStream(ctx context.Context, r *Reader, env *Context) (any, error) {
	n, err := f.length(env)
	if err != nil {
		return nil, err
	}
	b, err := r.ReadExact(n)
	if err != nil {
		return nil, prefixPath(err, f.Name())
	}
	return b, nil
}

func (f *MetaField) BuildStream(ctx context.Context, obj any, w *Writer, env *Context) error {
	n, err := f.length(env)
	if err != nil {
		return err
	}
	return prefixPath(w.WriteExact(n, obj), f.Name())
}

func (f *MetaField) SizeOf(env *Context) (int, error) { return f.length(env) }

// FormatField is a fixed-format scalar field backed by the packer: a single
// struct-style format code plus an endianness token ('<', '>' or '='). Parsed
// integers come back as int64, floats as float64.
type FormatField struct {
	Meta
	pk *packer.Packer
}

// NewFormatField builds a packer-backed field. An endianness outside the three
// tokens or an unknown format code fails with a value_error.
func NewFormatField(name string, endianness, code byte) (*FormatField, error) {
	m, err := NewMeta(name, 0)
	if err != nil {
		return nil, err
	}
	pk, err := packer.New(endianness, code)
	if err != nil {
		return nil, singleIssue(CodeValue, err.Error())
	}
	return &FormatField{Meta: m, pk: pk}, nil
}

func (f *FormatField) ParseStream(ctx context.Context, r *Reader, env *Context) (any, error) {
	b, err := r.ReadExact(f.pk.Width())
	if err != nil {
		return nil, prefixPath(err, f.Name())
	}
	v, err := f.pk.Unpack(b)
	if err != nil {
		return nil, prefixPath(fieldIssue(err.Error(), r.Offset(), nil), f.Name())
	}
	return v, nil
}

func (f *FormatField) BuildStream(ctx context.Context, obj any, w *Writer, env *Context) error {
	b, err := f.pk.Pack(obj)
	if err != nil {
		return prefixPath(fieldIssue(err.Error(), int64(w.Len()), nil), f.Name())
	}
	return prefixPath(w.WriteExact(f.pk.Width(), b), f.Name())
}

func (f *FormatField) SizeOf(env *Context) (int, error) { return f.pk.Width(), nil }
