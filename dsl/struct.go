package dsl

import (
	binschema "github.com/reoring/binschema"
	"github.com/reoring/binschema/codec"
)

// Struct declares an ordered sequence of named fields parsed and built in
// declaration order.
func Struct(name string, subcons ...binschema.Construct) binschema.Construct {
	return binschema.Must(binschema.NewStruct(name, subcons...))
}

// UnnestedStruct declares a struct whose children share the enclosing frame
// instead of getting their own.
func UnnestedStruct(name string, subcons ...binschema.Construct) binschema.Construct {
	return binschema.Must(binschema.NewUnnestedStruct(name, subcons...))
}

// Embedded flattens an inner struct's fields into the enclosing struct's
// output.
func Embedded(sub binschema.Construct) binschema.Construct {
	return binschema.NewEmbedded(sub)
}

// Magic declares a nameless fixed byte sequence that must appear verbatim.
func Magic(data []byte) binschema.Construct {
	return binschema.Must(codec.Const(Field("", len(data)), data))
}

// Const requires sub to parse exactly value; building nil substitutes it.
func Const(sub binschema.Construct, value any) binschema.Construct {
	return binschema.Must(codec.Const(sub, value))
}

// Enum maps parsed integers to symbolic names and back. A nil default raises
// on unknown values; binschema.Pass passes them through.
func Enum(sub binschema.Construct, symbols map[string]int64) binschema.Construct {
	return EnumWithDefault(sub, symbols, nil, nil)
}

// EnumWithDefault is Enum with explicit fallback values for unknown wire
// values (decDefault) and unknown symbols (encDefault).
func EnumWithDefault(sub binschema.Construct, symbols map[string]int64, decDefault, encDefault any) binschema.Construct {
	encoding := make(codec.MappingTable, len(symbols))
	decoding := make(codec.MappingTable, len(symbols))
	for name, value := range symbols {
		encoding[name] = value
		decoding[value] = name
	}
	return binschema.Must(codec.Mapping(sub, decoding, encoding, decDefault, encDefault))
}

// SymmetricMapping applies the same table in both directions: decode through
// it, encode through its reverse.
func SymmetricMapping(sub binschema.Construct, table codec.MappingTable, dflt any) binschema.Construct {
	return binschema.Must(codec.Mapping(sub, table, table.Reversed(), dflt, dflt))
}

// OneOf restricts sub's value to a fixed set in both directions.
func OneOf(sub binschema.Construct, allowed ...any) binschema.Construct {
	return binschema.Must(codec.OneOf(sub, allowed...))
}

// HexDump surfaces sub's bytes as a hex dump string.
func HexDump(sub binschema.Construct) binschema.Construct {
	return binschema.Must(codec.HexDump(sub, 16))
}

// ExprAdapter attaches user-supplied encode/decode hooks to sub.
func ExprAdapter(sub binschema.Construct, encode, decode binschema.AdapterFunc) binschema.Construct {
	return codec.Expr(sub, encode, decode)
}

// Rename presents sub under a different field name, leaving its behavior
// untouched.
func Rename(name string, sub binschema.Construct) binschema.Construct {
	m, err := binschema.NewMeta(name, sub.Flags())
	if err != nil {
		panic(err)
	}
	return &renamed{Subconstruct: binschema.WrapSubconstruct(sub), meta: m}
}

type renamed struct {
	binschema.Subconstruct
	meta binschema.Meta
}

func (r *renamed) Name() string { return r.meta.Name() }

func (r *renamed) Flags() binschema.Flag { return r.meta.Flags() }
