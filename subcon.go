package binschema

import "context"

// Subconstruct wraps an inner construct, inheriting its name and flags and
// forwarding all three operations unchanged. Wrapper descriptors embed it and
// override what they need.
type Subconstruct struct {
	Sub Construct
}

// WrapSubconstruct builds the forwarding base around sub.
func WrapSubconstruct(sub Construct) Subconstruct { return Subconstruct{Sub: sub} }

func (s Subconstruct) Name() string { return s.Sub.Name() }

func (s Subconstruct) Flags() Flag { return s.Sub.Flags() }

func (s Subconstruct) ParseStream(ctx context.Context, r *Reader, env *Context) (any, error) {
	return s.Sub.ParseStream(ctx, r, env)
}

func (s Subconstruct) BuildStream(ctx context.Context, obj any, w *Writer, env *Context) error {
	return s.Sub.BuildStream(ctx, obj, w, env)
}

func (s Subconstruct) SizeOf(env *Context) (int, error) {
	return s.Sub.SizeOf(env)
}

// Unwrap exposes the wrapped construct, for tree walkers.
func (s Subconstruct) Unwrap() Construct { return s.Sub }

// AdapterFunc transforms a value during parse (decode) or build (encode).
// The hook receives the call context and the current frame; it must not touch
// the stream.
type AdapterFunc func(ctx context.Context, obj any, env *Context) (any, error)

// Adapter is a subconstruct that inserts a value transformation: decode after
// the child parses, encode before the child builds. The child performs all
// stream I/O; size is unchanged.
type Adapter struct {
	Subconstruct
	encode AdapterFunc
	decode AdapterFunc
}

// NewAdapter wraps sub with the given transformation pair. A nil hook passes
// the value through unchanged.
func NewAdapter(sub Construct, encode, decode AdapterFunc) *Adapter {
	return &Adapter{Subconstruct: WrapSubconstruct(sub), encode: encode, decode: decode}
}

func (a *Adapter) ParseStream(ctx context.Context, r *Reader, env *Context) (any, error) {
	obj, err := a.Sub.ParseStream(ctx, r, env)
	if err != nil {
		return nil, err
	}
	if a.decode == nil {
		return obj, nil
	}
	return a.decode(ctx, obj, env)
}

func (a *Adapter) BuildStream(ctx context.Context, obj any, w *Writer, env *Context) error {
	if a.encode != nil {
		enc, err := a.encode(ctx, obj, env)
		if err != nil {
			return err
		}
		obj = enc
	}
	return a.Sub.BuildStream(ctx, obj, w, env)
}
