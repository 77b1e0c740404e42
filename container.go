package binschema

import (
	"bytes"

	gojson "github.com/goccy/go-json"
)

// Pair is a key-value entry used to seed a Container.
type Pair struct {
	Key string
	Val any
}

// P builds a Pair. It exists to keep Container literals short:
//
//	NewContainer(P("len", int64(4)), P("data", []byte{1, 2, 3, 4}))
func P(key string, val any) Pair { return Pair{Key: key, Val: val} }

// Container is an ordered mapping from names to values. It is both the parsed
// output of a Struct and the context threaded through parse/build calls.
// Values are restricted to int64, []byte, string, bool, float64, *Container,
// []any and nil; the typed accessors fail with an invalid_type Issue when a
// value is of another kind.
//
// Insertion order is preserved for iteration so that building from a parsed
// Container round-trips cleanly. Equality ignores order.
type Container struct {
	keys []string
	vals map[string]any
}

// NewContainer creates a Container seeded with the given pairs, in order.
func NewContainer(pairs ...Pair) *Container {
	c := &Container{vals: make(map[string]any, len(pairs))}
	for _, p := range pairs {
		c.Set(p.Key, p.Val)
	}
	return c
}

// Get returns the value stored under name.
func (c *Container) Get(name string) (any, bool) {
	v, ok := c.vals[name]
	return v, ok
}

// Set stores val under name. Setting an existing name overwrites the value in
// place and keeps the original insertion position.
func (c *Container) Set(name string, val any) {
	if _, ok := c.vals[name]; !ok {
		c.keys = append(c.keys, name)
	}
	c.vals[name] = val
}

// Del removes name. Removing an absent name is a no-op.
func (c *Container) Del(name string) {
	if _, ok := c.vals[name]; !ok {
		return
	}
	delete(c.vals, name)
	for i, k := range c.keys {
		if k == name {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
}

// Contains reports whether name is present.
func (c *Container) Contains(name string) bool {
	_, ok := c.vals[name]
	return ok
}

// Len returns the number of entries.
func (c *Container) Len() int { return len(c.keys) }

// Keys returns the names in insertion order. The slice is a copy.
func (c *Container) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Clone returns a shallow copy: nested Containers and byte slices are shared.
func (c *Container) Clone() *Container {
	out := &Container{keys: make([]string, len(c.keys)), vals: make(map[string]any, len(c.vals))}
	copy(out.keys, c.keys)
	for k, v := range c.vals {
		out.vals[k] = v
	}
	return out
}

// Equal reports whether both containers hold the same key-value set. Order is
// irrelevant. Byte slices compare by content, nested Containers recursively,
// integers across int/int64 representations.
func (c *Container) Equal(other *Container) bool {
	if c == nil || other == nil {
		return c == other
	}
	if len(c.vals) != len(other.vals) {
		return false
	}
	for k, v := range c.vals {
		ov, ok := other.vals[k]
		if !ok || !ValueEqual(v, ov) {
			return false
		}
	}
	return true
}

// GetInt returns the value under name as int64.
func (c *Container) GetInt(name string) (int64, error) {
	v, ok := c.vals[name]
	if !ok {
		return 0, singleIssue(CodeInvalidType, "missing entry "+name)
	}
	n, ok := AsInt(v)
	if !ok {
		return 0, singleIssue(CodeInvalidType, "entry "+name+" is not an integer")
	}
	return n, nil
}

// GetBytes returns the value under name as a byte slice. Strings are returned
// byte-for-byte.
func (c *Container) GetBytes(name string) ([]byte, error) {
	v, ok := c.vals[name]
	if !ok {
		return nil, singleIssue(CodeInvalidType, "missing entry "+name)
	}
	b, ok := AsBytes(v)
	if !ok {
		return nil, singleIssue(CodeInvalidType, "entry "+name+" is not a byte sequence")
	}
	return b, nil
}

// GetString returns the value under name as a string.
func (c *Container) GetString(name string) (string, error) {
	v, ok := c.vals[name]
	if !ok {
		return "", singleIssue(CodeInvalidType, "missing entry "+name)
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	}
	return "", singleIssue(CodeInvalidType, "entry "+name+" is not a string")
}

// GetContainer returns the value under name as a nested Container.
func (c *Container) GetContainer(name string) (*Container, error) {
	v, ok := c.vals[name]
	if !ok {
		return nil, singleIssue(CodeInvalidType, "missing entry "+name)
	}
	sub, ok := v.(*Container)
	if !ok {
		return nil, singleIssue(CodeInvalidType, "entry "+name+" is not a container")
	}
	return sub, nil
}

// MarshalJSON emits a JSON object preserving insertion order. Values are
// encoded with goccy/go-json; byte slices therefore follow the standard
// base64 convention.
func (c *Container) MarshalJSON() ([]byte, error) {
	b := &bytes.Buffer{}
	b.WriteByte('{')
	for i, k := range c.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		kb, err := gojson.Marshal(k)
		if err != nil {
			return nil, err
		}
		b.Write(kb)
		b.WriteByte(':')
		vb, err := gojson.Marshal(c.vals[k])
		if err != nil {
			return nil, err
		}
		b.Write(vb)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// AsInt normalizes any Go integer representation to int64.
func AsInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case uint:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	}
	return 0, false
}

// AsBytes normalizes a value to a byte sequence. Strings convert rune by rune;
// runes outside the single-byte range do not qualify.
func AsBytes(v any) ([]byte, bool) {
	switch b := v.(type) {
	case []byte:
		return b, true
	case string:
		out := make([]byte, 0, len(b))
		for _, r := range b {
			if r > 0xff {
				return nil, false
			}
			out = append(out, byte(r))
		}
		return out, true
	}
	return nil, false
}

// ValueEqual compares two container values structurally: byte sequences and
// strings by content, integers across representations, containers by key set.
func ValueEqual(a, b any) bool {
	if ab, ok := AsBytes(a); ok {
		if bb, ok2 := AsBytes(b); ok2 {
			return bytes.Equal(ab, bb)
		}
		return false
	}
	if an, ok := AsInt(a); ok {
		bn, ok2 := AsInt(b)
		return ok2 && an == bn
	}
	if ac, ok := a.(*Container); ok {
		bc, ok2 := b.(*Container)
		return ok2 && ac.Equal(bc)
	}
	return a == b
}
