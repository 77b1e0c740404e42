// Package schemayaml imports layout declarations from YAML documents, so
// layouts can ship as data files next to the binaries they describe.
//
// A document declares one struct:
//
//	name: header
//	fields:
//	  - { name: sig, type: magic, value: "4d5a" }
//	  - { name: len, type: ubint8 }
//	  - { name: data, type: bytes, lengthFrom: len }
//	  - name: flags
//	    type: bitstruct
//	    fields:
//	      - { name: version, type: bitfield, width: 3 }
//	      - { name: secure, type: flag }
//	      - { type: padding, length: 4 }
package schemayaml

import (
	"encoding/hex"
	"fmt"

	"gopkg.in/yaml.v3"

	binschema "github.com/reoring/binschema"
	"github.com/reoring/binschema/codec"
)

type fieldSpec struct {
	Name       string           `yaml:"name"`
	Type       string           `yaml:"type"`
	Length     int              `yaml:"length"`
	LengthFrom string           `yaml:"lengthFrom"`
	Width      int              `yaml:"width"`
	Value      string           `yaml:"value"`
	Pattern    string           `yaml:"pattern"`
	Strict     bool             `yaml:"strict"`
	Signed     bool             `yaml:"signed"`
	Swapped    bool             `yaml:"swapped"`
	Of         string           `yaml:"of"`
	Symbols    map[string]int64 `yaml:"symbols"`
	Embed      bool             `yaml:"embed"`
	Fields     []fieldSpec      `yaml:"fields"`
}

type docSpec struct {
	Name   string      `yaml:"name"`
	Bits   bool        `yaml:"bits"`
	Fields []fieldSpec `yaml:"fields"`
}

// formatTypes maps scalar type names to packer endianness and format code.
var formatTypes = map[string][2]byte{
	"ubint8": {'>', 'B'}, "ubint16": {'>', 'H'}, "ubint32": {'>', 'L'}, "ubint64": {'>', 'Q'},
	"ulint8": {'<', 'B'}, "ulint16": {'<', 'H'}, "ulint32": {'<', 'L'}, "ulint64": {'<', 'Q'},
	"unint8": {'=', 'B'}, "unint16": {'=', 'H'}, "unint32": {'=', 'L'}, "unint64": {'=', 'Q'},
	"sbint8": {'>', 'b'}, "sbint16": {'>', 'h'}, "sbint32": {'>', 'l'}, "sbint64": {'>', 'q'},
	"slint8": {'<', 'b'}, "slint16": {'<', 'h'}, "slint32": {'<', 'l'}, "slint64": {'<', 'q'},
	"snint8": {'=', 'b'}, "snint16": {'=', 'h'}, "snint32": {'=', 'l'}, "snint64": {'=', 'q'},
	"bfloat32": {'>', 'f'}, "bfloat64": {'>', 'd'},
	"lfloat32": {'<', 'f'}, "lfloat64": {'<', 'd'},
	"nfloat32": {'=', 'f'}, "nfloat64": {'=', 'd'},
}

// Import decodes a YAML layout document into a ready construct.
func Import(data []byte) (binschema.Construct, error) {
	var doc docSpec
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, importIssue(fmt.Sprintf("invalid layout document: %v", err))
	}
	if doc.Name == "" {
		return nil, importIssue("layout document needs a name")
	}
	return buildStruct(doc.Name, doc.Bits, doc.Fields)
}

func buildStruct(name string, bits bool, fields []fieldSpec) (binschema.Construct, error) {
	subcons := make([]binschema.Construct, 0, len(fields))
	for i, f := range fields {
		sc, err := buildField(f)
		if err != nil {
			return nil, prefixField(err, name, i, f.Name)
		}
		if f.Embed {
			sc = binschema.NewEmbedded(sc)
		}
		subcons = append(subcons, sc)
	}
	st, err := binschema.NewStruct(name, subcons...)
	if err != nil {
		return nil, err
	}
	if !bits {
		return st, nil
	}
	return bitwise(st)
}

func buildField(f fieldSpec) (binschema.Construct, error) {
	if ec, ok := formatTypes[f.Type]; ok {
		return binschema.NewFormatField(f.Name, ec[0], ec[1])
	}
	switch f.Type {
	case "bytes", "field":
		if f.LengthFrom != "" {
			return binschema.NewMetaField(f.Name, binschema.CtxLength(f.LengthFrom))
		}
		return binschema.NewStaticField(f.Name, f.Length)
	case "padding":
		pattern, err := patternByte(f.Pattern)
		if err != nil {
			return nil, err
		}
		sub, err := binschema.NewStaticField("", f.Length)
		if err != nil {
			return nil, err
		}
		return codec.Padding(sub, pattern, f.Strict)
	case "magic", "const":
		want, err := hexValue(f.Value)
		if err != nil {
			return nil, err
		}
		sub, err := binschema.NewStaticField(f.Name, len(want))
		if err != nil {
			return nil, err
		}
		return codec.Const(sub, want)
	case "enum":
		sub, err := enumBase(f)
		if err != nil {
			return nil, err
		}
		encoding := make(codec.MappingTable, len(f.Symbols))
		decoding := make(codec.MappingTable, len(f.Symbols))
		for sym, val := range f.Symbols {
			encoding[sym] = val
			decoding[val] = sym
		}
		return codec.Mapping(sub, decoding, encoding, nil, nil)
	case "struct":
		return buildStruct(f.Name, false, f.Fields)
	case "bitstruct":
		return buildStruct(f.Name, true, f.Fields)
	case "bitfield":
		return bitField(f.Name, f.Width, f.Swapped, f.Signed)
	case "bit":
		return bitField(f.Name, 1, false, false)
	case "nibble":
		return bitField(f.Name, 4, false, false)
	case "octet":
		return bitField(f.Name, 8, false, false)
	case "flag":
		return flagField(f.Name)
	case "hexdump":
		sub, err := binschema.NewStaticField(f.Name, f.Length)
		if err != nil {
			return nil, err
		}
		return codec.HexDump(sub, 16)
	case "":
		return nil, importIssue("field needs a type")
	default:
		return nil, importIssue(fmt.Sprintf("unknown field type %q", f.Type))
	}
}

func enumBase(f fieldSpec) (binschema.Construct, error) {
	of := f.Of
	if of == "" {
		of = "ubint8"
	}
	ec, ok := formatTypes[of]
	if !ok {
		return nil, importIssue(fmt.Sprintf("unknown enum base type %q", of))
	}
	return binschema.NewFormatField(f.Name, ec[0], ec[1])
}

func patternByte(s string) (byte, error) {
	if s == "" {
		return 0x00, nil
	}
	b, err := hexValue(s)
	if err != nil || len(b) != 1 {
		return 0, importIssue(fmt.Sprintf("pattern must be one hex byte, got %q", s))
	}
	return b[0], nil
}

func hexValue(s string) ([]byte, error) {
	if s == "" {
		return nil, importIssue("missing hex value")
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, importIssue(fmt.Sprintf("invalid hex value %q", s))
	}
	return b, nil
}

func importIssue(msg string) binschema.Issues {
	return binschema.Issues{binschema.IssueAt("/", binschema.CodeParseError, msg, nil)}
}

func prefixField(err error, structName string, index int, fieldName string) error {
	iss, ok := binschema.AsIssues(err)
	if !ok {
		return err
	}
	label := fieldName
	if label == "" {
		label = fmt.Sprintf("#%d", index)
	}
	out := make(binschema.Issues, len(iss))
	for i, it := range iss {
		suffix := it.Path
		if suffix == "/" {
			suffix = ""
		}
		it.Path = "/" + structName + "/" + label + suffix
		out[i] = it
	}
	return out
}
