package binschema

// Package binschema provides:
//
// - Declarative binary layouts built from small composable constructs
// - One declaration driving both directions: Parse (bytes -> value) and
//   Build (value -> bytes), plus a SizeOf query
// - A stable error model via Issues (construct path, code, message, offset)
// - An ordered Container doubling as parsed output and parse/build context
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place declaration macros under dsl/, value adapters under codec/, and the CLI under cmd/binschema.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	rec := dsl.Struct("record",
//	    dsl.UBInt8("len"),
//	    dsl.UBInt16("kind"),
//	)
//	v, err := binschema.Parse(ctx, rec, data)
//	out, err := binschema.Build(ctx, rec, v)
//	n, err := binschema.SizeOf(rec)
