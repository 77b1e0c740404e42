package codec

import (
	binschema "github.com/reoring/binschema"
)

// Expr is the generic user-supplied transform: decode runs after the child
// parses, encode before it builds. Either hook may be nil to pass the value
// through unchanged.
//
//	codec.Expr(quarters,
//	    func(ctx context.Context, obj any, env *binschema.Context) (any, error) { ... }, // encode
//	    func(ctx context.Context, obj any, env *binschema.Context) (any, error) { ... }, // decode
//	)
func Expr(sub binschema.Construct, encode, decode binschema.AdapterFunc) *binschema.Adapter {
	return binschema.NewAdapter(sub, encode, decode)
}
