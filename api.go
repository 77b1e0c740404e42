package binschema

import (
	"context"
	"strings"
)

// Flag is the bitset of behavioral markers carried by every construct. Only
// FlagEmbed changes behavior in this package; the others are preserved across
// wrapping for extension compatibility.
type Flag uint8

const (
	FlagCopyContext Flag = 1 << iota
	FlagDynamic
	FlagEmbed
	FlagNesting
)

// Has reports whether all bits of f2 are set.
func (f Flag) Has(f2 Flag) bool { return f&f2 == f2 }

// Construct is the contract every layout descriptor satisfies. Descriptors
// are immutable after construction, hold no per-call state, and are safe to
// share across goroutines; each call owns its Reader/Writer and Context tree.
//
// ParseStream, BuildStream and SizeOf are the extension points; end users go
// through the package-level Parse, Build and SizeOf entry points instead.
type Construct interface {
	// Name returns the descriptor name, or "" for nameless descriptors such
	// as padding.
	Name() string
	// Flags returns the descriptor's flag set.
	Flags() Flag
	// ParseStream reads the descriptor's bytes from r and returns the parsed
	// value, recording named results into env as a Struct directs.
	ParseStream(ctx context.Context, r *Reader, env *Context) (any, error)
	// BuildStream writes obj's bytes to w.
	BuildStream(ctx context.Context, obj any, w *Writer, env *Context) error
	// SizeOf returns the serialized width in bytes. Descriptors whose width
	// depends on runtime data fail unless env carries the needed values.
	SizeOf(env *Context) (int, error)
}

// Meta carries the name and flags shared by all descriptors. Implementations
// embed it and obtain Name/Flags for free.
type Meta struct {
	name  string
	flags Flag
}

// NewMeta validates and records a descriptor name. The name "_" and any name
// starting with "<" are reserved and rejected with a value_error. The empty
// string means nameless.
func NewMeta(name string, flags Flag) (Meta, error) {
	if name == "_" || strings.HasPrefix(name, "<") {
		return Meta{}, singleIssue(CodeValue, "reserved name "+name)
	}
	return Meta{name: name, flags: flags}, nil
}

// Name returns the descriptor name ("" when nameless).
func (m Meta) Name() string { return m.name }

// Flags returns the descriptor flag set.
func (m Meta) Flags() Flag { return m.flags }

// WithFlags returns a copy with extra flags OR'd in.
func (m Meta) WithFlags(f Flag) Meta { return Meta{name: m.name, flags: m.flags | f} }

// WithoutFlags returns a copy with the given flags cleared.
func (m Meta) WithoutFlags(f Flag) Meta { return Meta{name: m.name, flags: m.flags &^ f} }

// InheritFlags returns a copy with the union of the children's flags OR'd in.
func (m Meta) InheritFlags(children ...Construct) Meta {
	f := m.flags
	for _, c := range children {
		f |= c.Flags()
	}
	return Meta{name: m.name, flags: f}
}

// Must panics when err is non-nil and returns c otherwise. It mirrors the
// MustBuild convention of builder APIs and keeps declaration sites compact:
//
//	rec := binschema.Must(binschema.NewStruct("rec", f1, f2))
func Must[C Construct](c C, err error) C {
	if err != nil {
		panic(err)
	}
	return c
}
