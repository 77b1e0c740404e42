package codec

import (
	"context"
	"fmt"

	binschema "github.com/reoring/binschema"
)

// MappingTable associates wire values with domain values. Integer keys are
// normalized to int64 at lookup time, so entries may be written with plain
// int literals.
type MappingTable map[any]any

// Reversed returns the table with keys and values exchanged. Values must be
// valid map keys.
func (t MappingTable) Reversed() MappingTable {
	out := make(MappingTable, len(t))
	for k, v := range t {
		out[v] = k
	}
	return out
}

func (t MappingTable) lookup(obj any) (any, bool) {
	key := obj
	if n, ok := binschema.AsInt(obj); ok {
		key = n
	}
	v, ok := t[key]
	return v, ok
}

func normalizeTable(t MappingTable) MappingTable {
	out := make(MappingTable, len(t))
	for k, v := range t {
		if n, ok := binschema.AsInt(k); ok {
			out[n] = v
		} else {
			out[k] = v
		}
	}
	return out
}

// Mapping substitutes values through lookup tables: decoding after the child
// parses, encoding before it builds. A nil default raises a mapping_error on
// a miss; the Pass singleton passes the unmapped value through unchanged; any
// other default is substituted. Single-byte sequences are normalized to their
// byte value before the decode lookup.
func Mapping(sub binschema.Construct, decoding, encoding MappingTable, decDefault, encDefault any) (*binschema.Adapter, error) {
	dec := normalizeTable(decoding)
	enc := normalizeTable(encoding)
	apply := func(table MappingTable, dflt any, obj any) (any, error) {
		if v, ok := table.lookup(obj); ok {
			return v, nil
		}
		switch {
		case dflt == nil:
			return nil, mappingIssue(fmt.Sprintf("no mapping for %v", obj))
		case dflt == binschema.Pass:
			return obj, nil
		default:
			return dflt, nil
		}
	}
	encode := func(ctx context.Context, obj any, env *binschema.Context) (any, error) {
		return apply(enc, encDefault, obj)
	}
	decode := func(ctx context.Context, obj any, env *binschema.Context) (any, error) {
		if b, ok := obj.([]byte); ok && len(b) == 1 {
			obj = int64(b[0])
		}
		return apply(dec, decDefault, obj)
	}
	return binschema.NewAdapter(sub, encode, decode), nil
}

func mappingIssue(msg string) binschema.Issues {
	return binschema.Issues{binschema.IssueAt("/", binschema.CodeMapping, msg, nil)}
}
