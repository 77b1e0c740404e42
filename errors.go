package binschema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeField       = "field_error"       // stream too short, length mismatch, negative length
	CodeSizeof      = "sizeof_error"      // wraps any failure raised while computing a size
	CodeValue       = "value_error"       // invalid construction arguments (reserved name, bad endianness)
	CodeBitInteger  = "bit_integer_error" // negative value for an unsigned bit integer
	CodeMapping     = "mapping_error"     // value not in the map and no default provided
	CodeConst       = "const_error"       // parsed or built value differs from the expected magic
	CodePadding     = "padding_error"     // strict padding mismatch on parse
	CodeValidation  = "validation_error"  // OneOf/Validator rejection
	CodeInvalidType = "invalid_type"      // container value of an unexpected kind
	CodeParseError  = "parse_error"       // malformed external input (schema files, hex text)
	CodeTruncated   = "truncated"         // input exceeds the configured byte cap
)

// Issue represents a single parse/build/sizeof failure.
type Issue struct {
	Path    string // Slash-separated construct path (for example: /record/len).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, expected values, etc.
	Cause   error  // Optional: underlying error.
	Offset  int64  // Byte offset in the stream (-1 when unknown).
	// Params carries structured parameters (e.g., {"expected":2, "got":1})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. field_error at /record/len
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
