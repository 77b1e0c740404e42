// Package dsl provides the declaration macros used to describe binary layouts
// compactly. Every macro returns a ready Construct and panics on invalid
// declaration arguments, so layout declarations stay free of error plumbing:
//
//	rec := dsl.Struct("record",
//	    dsl.UBInt8("len"),
//	    dsl.FieldFor("data", "len"),
//	)
//
// Runtime parse and build failures still surface as ordinary errors from the
// binschema entry points.
package dsl
