package binschema

// Context is the frame threaded through parse and build recursion. Frames form
// a cons-list linked by a parent pointer: entering a nested Struct pushes a
// fresh frame, and children reach ancestor frames through the reserved "_"
// name. Ordinary lookups hit only the current frame.
//
// The embed hand-off between a parent Struct and an embedded child Struct is
// carried by typed fields placed by the parent and consumed by the child in
// the same transition, so a completed call never leaves hand-off state behind.
type Context struct {
	parent   *Context
	vals     *Container
	failFast bool

	embedTarget *Container // parse-side hand-off: child adopts this output
	embedBuild  bool       // build-side hand-off: child skips re-nesting
}

// NewRootContext returns a fresh top-level frame, as created once per
// top-level Parse/Build/SizeOf call.
func NewRootContext() *Context {
	return &Context{vals: NewContainer()}
}

// Nest pushes a child frame whose parent is c. The fail-fast setting carries
// into the child frame.
func (c *Context) Nest() *Context {
	return &Context{parent: c, vals: NewContainer(), failFast: c.failFast}
}

// FailFast reports whether traversal should stop at the first issue instead
// of collecting issues across siblings.
func (c *Context) FailFast() bool { return c.failFast }

// Parent returns the enclosing frame, or nil at the root.
func (c *Context) Parent() *Context { return c.parent }

// Get resolves name in the current frame. The reserved name "_" resolves to
// the parent frame itself, letting expression hooks walk the ancestor chain.
func (c *Context) Get(name string) (any, bool) {
	if name == "_" {
		if c.parent == nil {
			return nil, false
		}
		return c.parent, true
	}
	return c.vals.Get(name)
}

// GetInt resolves name in the current frame as an integer.
func (c *Context) GetInt(name string) (int64, error) {
	return c.vals.GetInt(name)
}

// Set stores a value in the current frame.
func (c *Context) Set(name string, val any) { c.vals.Set(name, val) }

// Values exposes the current frame's container.
func (c *Context) Values() *Container { return c.vals }

// SetEmbedTarget arms the parse-side embed hand-off for the next child.
func (c *Context) SetEmbedTarget(obj *Container) { c.embedTarget = obj }

// TakeEmbedTarget consumes the parse-side hand-off, returning nil when none
// is armed.
func (c *Context) TakeEmbedTarget() *Container {
	t := c.embedTarget
	c.embedTarget = nil
	return t
}

// SetEmbedBuild arms the build-side embed hand-off for the next child.
func (c *Context) SetEmbedBuild() { c.embedBuild = true }

// TakeEmbedBuild consumes the build-side hand-off.
func (c *Context) TakeEmbedBuild() bool {
	b := c.embedBuild
	c.embedBuild = false
	return b
}
