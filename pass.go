package binschema

import "context"

// Pass is the no-op construct: parse returns nil, build writes nothing, size
// is zero. It doubles as the sentinel "pass the value through unchanged" for
// mapping defaults.
var Pass Construct = passConstruct{}

type passConstruct struct{}

func (passConstruct) Name() string { return "" }

func (passConstruct) Flags() Flag { return 0 }

func (passConstruct) ParseStream(ctx context.Context, r *Reader, env *Context) (any, error) {
	return nil, nil
}

func (passConstruct) BuildStream(ctx context.Context, obj any, w *Writer, env *Context) error {
	return nil
}

func (passConstruct) SizeOf(env *Context) (int, error) { return 0, nil }
