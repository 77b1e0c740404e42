package binschema

import "context"

// ParseOpt bundles parsing options.
type ParseOpt struct {
	// MaxBytes rejects inputs longer than the cap with a truncated issue.
	// Zero means no cap.
	MaxBytes int64
	// FailFast stops struct traversal at the first issue. The default
	// collects issues across siblings and reports them together.
	FailFast bool
}

// Parse is the primary entry point. It wraps data in a read cursor, allocates
// a fresh root context, and delegates to the construct.
func Parse(ctx context.Context, c Construct, data []byte, opts ...ParseOpt) (any, error) {
	if c == nil {
		return nil, singleIssue(CodeParseError, "nil construct")
	}
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return nil, singleIssue(CodeTruncated, "max bytes exceeded")
	}
	env := NewRootContext()
	env.failFast = opt.FailFast
	return c.ParseStream(ctx, NewReader(data), env)
}

// ParseString parses text taken byte-for-byte: every rune must fit a single
// byte (the ISO-8859-1 subset of text), otherwise a field_error is raised.
func ParseString(ctx context.Context, c Construct, text string, opts ...ParseOpt) (any, error) {
	b, ok := AsBytes(text)
	if !ok {
		return nil, singleIssue(CodeField, "text contains runes outside the single-byte range")
	}
	return Parse(ctx, c, b, opts...)
}

// Build serializes obj, allocating the output buffer and a fresh root context.
func Build(ctx context.Context, c Construct, obj any) ([]byte, error) {
	if c == nil {
		return nil, singleIssue(CodeParseError, "nil construct")
	}
	w := NewWriter()
	if err := c.BuildStream(ctx, obj, w, NewRootContext()); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// SizeOf returns the serialized width of c given an empty context. Any failure
// inside the size computation is wrapped into a sizeof_error issue so callers
// can tell size-phase failures apart.
func SizeOf(c Construct) (int, error) {
	return SizeOfWith(c, nil)
}

// SizeOfWith is SizeOf with an explicit context, for descriptors whose width
// depends on previously parsed values.
func SizeOfWith(c Construct, env *Context) (int, error) {
	if c == nil {
		return 0, sizeofIssue(singleIssue(CodeParseError, "nil construct"))
	}
	if env == nil {
		env = NewRootContext()
	}
	n, err := c.SizeOf(env)
	if err != nil {
		if iss, ok := AsIssues(err); ok && len(iss) > 0 && iss[0].Code == CodeSizeof {
			return 0, err
		}
		return 0, sizeofIssue(err)
	}
	return n, nil
}
