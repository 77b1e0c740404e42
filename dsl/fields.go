package dsl

import (
	binschema "github.com/reoring/binschema"
)

// Field declares a fixed-size raw byte field.
func Field(name string, length int) binschema.Construct {
	return binschema.Must(binschema.NewStaticField(name, length))
}

// Bytes is Field under its other customary name.
func Bytes(name string, length int) binschema.Construct {
	return Field(name, length)
}

// FieldFor declares a raw byte field whose length is the named integer parsed
// earlier in the same struct.
func FieldFor(name, lengthField string) binschema.Construct {
	return binschema.Must(binschema.NewMetaField(name, binschema.CtxLength(lengthField)))
}

// FieldOf declares a raw byte field with a caller-supplied length hook.
func FieldOf(name string, length binschema.LengthFunc) binschema.Construct {
	return binschema.Must(binschema.NewMetaField(name, length))
}

func format(name string, endianness, code byte) binschema.Construct {
	return binschema.Must(binschema.NewFormatField(name, endianness, code))
}

// Unsigned big-endian integers.
func UBInt8(name string) binschema.Construct  { return format(name, '>', 'B') }
func UBInt16(name string) binschema.Construct { return format(name, '>', 'H') }
func UBInt32(name string) binschema.Construct { return format(name, '>', 'L') }
func UBInt64(name string) binschema.Construct { return format(name, '>', 'Q') }

// Unsigned little-endian integers.
func ULInt8(name string) binschema.Construct  { return format(name, '<', 'B') }
func ULInt16(name string) binschema.Construct { return format(name, '<', 'H') }
func ULInt32(name string) binschema.Construct { return format(name, '<', 'L') }
func ULInt64(name string) binschema.Construct { return format(name, '<', 'Q') }

// Unsigned native-endian integers.
func UNInt8(name string) binschema.Construct  { return format(name, '=', 'B') }
func UNInt16(name string) binschema.Construct { return format(name, '=', 'H') }
func UNInt32(name string) binschema.Construct { return format(name, '=', 'L') }
func UNInt64(name string) binschema.Construct { return format(name, '=', 'Q') }

// Signed big-endian integers.
func SBInt8(name string) binschema.Construct  { return format(name, '>', 'b') }
func SBInt16(name string) binschema.Construct { return format(name, '>', 'h') }
func SBInt32(name string) binschema.Construct { return format(name, '>', 'l') }
func SBInt64(name string) binschema.Construct { return format(name, '>', 'q') }

// Signed little-endian integers.
func SLInt8(name string) binschema.Construct  { return format(name, '<', 'b') }
func SLInt16(name string) binschema.Construct { return format(name, '<', 'h') }
func SLInt32(name string) binschema.Construct { return format(name, '<', 'l') }
func SLInt64(name string) binschema.Construct { return format(name, '<', 'q') }

// Signed native-endian integers.
func SNInt8(name string) binschema.Construct  { return format(name, '=', 'b') }
func SNInt16(name string) binschema.Construct { return format(name, '=', 'h') }
func SNInt32(name string) binschema.Construct { return format(name, '=', 'l') }
func SNInt64(name string) binschema.Construct { return format(name, '=', 'q') }

// IEEE 754 floats, big, little and native endian.
func BFloat32(name string) binschema.Construct { return format(name, '>', 'f') }
func BFloat64(name string) binschema.Construct { return format(name, '>', 'd') }
func LFloat32(name string) binschema.Construct { return format(name, '<', 'f') }
func LFloat64(name string) binschema.Construct { return format(name, '<', 'd') }
func NFloat32(name string) binschema.Construct { return format(name, '=', 'f') }
func NFloat64(name string) binschema.Construct { return format(name, '=', 'd') }
