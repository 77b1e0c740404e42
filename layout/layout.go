// Package layout projects a construct tree into a serializable description,
// used for inspection and the CLI's describe output.
package layout

import (
	gojson "github.com/goccy/go-json"

	binschema "github.com/reoring/binschema"
)

// Node describes one descriptor in a layout tree.
type Node struct {
	Kind     string  `json:"kind"`
	Name     string  `json:"name,omitempty"`
	Size     *int    `json:"size,omitempty"`
	Embedded bool    `json:"embedded,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// Describe walks the construct tree and returns its description. Size is
// filled only where the width is computable without runtime values.
func Describe(c binschema.Construct) *Node {
	if c == nil {
		return nil
	}
	n := &Node{
		Kind:     kindOf(c),
		Name:     c.Name(),
		Embedded: c.Flags().Has(binschema.FlagEmbed),
	}
	if size, err := binschema.SizeOf(c); err == nil {
		n.Size = &size
	}
	switch v := c.(type) {
	case *binschema.Struct:
		for _, sc := range v.Subcons() {
			n.Children = append(n.Children, Describe(sc))
		}
	case interface{ Unwrap() binschema.Construct }:
		n.Children = append(n.Children, Describe(v.Unwrap()))
	}
	return n
}

// MarshalJSON renders the description with goccy's encoder, matching the
// ordered output of container marshaling.
func MarshalJSON(c binschema.Construct) ([]byte, error) {
	return gojson.MarshalIndent(Describe(c), "", "  ")
}

func kindOf(c binschema.Construct) string {
	switch c.(type) {
	case *binschema.Struct:
		return "struct"
	case *binschema.StaticField:
		return "field"
	case *binschema.MetaField:
		return "metafield"
	case *binschema.FormatField:
		return "format"
	case *binschema.Buffered:
		return "buffered"
	case *binschema.Adapter:
		return "adapter"
	case *binschema.Embedded:
		return "embedded"
	default:
		if c == binschema.Pass {
			return "pass"
		}
		return "construct"
	}
}
