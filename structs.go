package binschema

import "context"

// Struct is an ordered sequence of child descriptors, parsed and built
// strictly in declaration order. Named children record their value both in the
// output container and in the current frame, so child k can reference every
// value produced by children 0..k-1. Nameless children consume and produce
// their bytes without appearing in the output.
//
// When nested (the default) the struct pushes a fresh frame on entry; the
// previous frame stays reachable through "_". A child carrying FlagEmbed is
// handed the struct's own output container and fills it in place, flattening
// its fields into the parent.
//
// Child issues are collected across siblings and reported together; a parse
// started with ParseOpt.FailFast stops at the first failing child instead.
type Struct struct {
	Meta
	nested  bool
	subcons []Construct
}

// NewStruct builds a nested struct over the given children. Flags are
// inherited from the children, except FlagEmbed which never propagates
// upward on its own.
func NewStruct(name string, subcons ...Construct) (*Struct, error) {
	return newStruct(name, true, subcons)
}

// NewUnnestedStruct builds a struct that keeps the caller's frame instead of
// pushing its own, so its children share the enclosing namespace.
func NewUnnestedStruct(name string, subcons ...Construct) (*Struct, error) {
	return newStruct(name, false, subcons)
}

func newStruct(name string, nested bool, subcons []Construct) (*Struct, error) {
	m, err := NewMeta(name, 0)
	if err != nil {
		return nil, err
	}
	m = m.InheritFlags(subcons...).WithoutFlags(FlagEmbed)
	return &Struct{Meta: m, nested: nested, subcons: subcons}, nil
}

// Subcons returns the children in declaration order.
func (s *Struct) Subcons() []Construct { return s.subcons }

func (s *Struct) ParseStream(ctx context.Context, r *Reader, env *Context) (any, error) {
	obj := env.TakeEmbedTarget()
	if obj == nil {
		obj = NewContainer()
		if s.nested {
			env = env.Nest()
		}
	}
	var collected Issues
	for _, sc := range s.subcons {
		embed := sc.Flags().Has(FlagEmbed)
		if embed {
			env.SetEmbedTarget(obj)
		}
		sub, err := sc.ParseStream(ctx, r, env)
		if err != nil {
			err = prefixPath(err, s.Name())
			iss, ok := AsIssues(err)
			if env.failFast || !ok {
				return nil, err
			}
			collected = append(collected, iss...)
			continue
		}
		if sc.Name() != "" && !embed {
			obj.Set(sc.Name(), sub)
			env.Set(sc.Name(), sub)
		}
	}
	if len(collected) > 0 {
		return nil, collected
	}
	return obj, nil
}

func (s *Struct) BuildStream(ctx context.Context, obj any, w *Writer, env *Context) error {
	if !env.TakeEmbedBuild() && s.nested {
		env = env.Nest()
	}
	var collected Issues
	for _, sc := range s.subcons {
		var sub any
		switch {
		case sc.Flags().Has(FlagEmbed):
			env.SetEmbedBuild()
			sub = obj
		case sc.Name() == "":
			sub = nil
		default:
			cont, ok := obj.(*Container)
			if !ok {
				// Tolerated: a non-container value where a named child is
				// expected skips the child entirely.
				continue
			}
			v, _ := cont.Get(sc.Name())
			sub = v
			env.Set(sc.Name(), v)
		}
		if err := sc.BuildStream(ctx, sub, w, env); err != nil {
			err = prefixPath(err, s.Name())
			iss, ok := AsIssues(err)
			if env.failFast || !ok {
				return err
			}
			collected = append(collected, iss...)
		}
	}
	if len(collected) > 0 {
		return collected
	}
	return nil
}

func (s *Struct) SizeOf(env *Context) (int, error) {
	if s.nested {
		env = env.Nest()
	}
	sum := 0
	for _, sc := range s.subcons {
		n, err := sc.SizeOf(env)
		if err != nil {
			return 0, prefixPath(err, s.Name())
		}
		sum += n
	}
	return sum, nil
}

// Embedded marks sub so an enclosing Struct flattens its fields into its own
// output instead of nesting them under sub's name.
type Embedded struct {
	Subconstruct
	meta Meta
}

// NewEmbedded wraps sub with FlagEmbed set.
func NewEmbedded(sub Construct) *Embedded {
	m := Meta{name: sub.Name(), flags: sub.Flags() | FlagEmbed}
	return &Embedded{Subconstruct: WrapSubconstruct(sub), meta: m}
}

func (e *Embedded) Flags() Flag { return e.meta.Flags() }
