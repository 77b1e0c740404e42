package binschema

import "fmt"

// Reader is a read cursor over an immutable byte slice. It borrows the input;
// the slice must outlive the parse call. ReadExact returns subslices of the
// input, so callers that retain parsed bytes should copy them.
type Reader struct {
	data []byte
	off  int
}

// NewReader wraps data in a cursor positioned at offset zero.
func NewReader(data []byte) *Reader { return &Reader{data: data} }

// ReadExact reads exactly n bytes, failing with a field_error when fewer
// remain or n is negative.
func (r *Reader) ReadExact(n int) ([]byte, error) {
	if n < 0 {
		return nil, fieldIssue(fmt.Sprintf("length must be >= 0, got %d", n), int64(r.off), map[string]any{"requested": n})
	}
	if rem := len(r.data) - r.off; rem < n {
		return nil, fieldIssue(fmt.Sprintf("expected %d bytes, found %d", n, rem), int64(r.off), map[string]any{"expected": n, "got": rem})
	}
	out := r.data[r.off : r.off+n]
	r.off += n
	return out, nil
}

// Remaining reports the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.off }

// Offset reports the current read position.
func (r *Reader) Offset() int64 { return int64(r.off) }

// Writer is the append-only output buffer owned by the top-level Build call
// and handed down the recursion by reference.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty output buffer.
func NewWriter() *Writer { return &Writer{} }

// Append appends raw bytes.
func (w *Writer) Append(p []byte) { w.buf = append(w.buf, p...) }

// Len reports the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// Bytes returns the accumulated output. The slice aliases the buffer.
func (w *Writer) Bytes() []byte { return w.buf }

// WriteExact appends data after checking that its serialized width equals
// length. The width of a value is derived by kind: byte sequence length,
// 1 for a single byte, the minimal 1/2/4-byte unsigned width for an integer,
// and the character count for a string (each rune must fit one byte).
func (w *Writer) WriteExact(length int, data any) error {
	if length < 0 {
		return fieldIssue(fmt.Sprintf("length must be >= 0, got %d", length), int64(len(w.buf)), map[string]any{"requested": length})
	}
	enc, n, ok := encodeDataValue(data)
	if !ok {
		return fieldIssue(fmt.Sprintf("cannot serialize value of type %T", data), int64(len(w.buf)), nil)
	}
	if n != length {
		return fieldIssue(fmt.Sprintf("expected %d bytes, found %d", length, n), int64(len(w.buf)), map[string]any{"expected": length, "got": n})
	}
	w.buf = append(w.buf, enc...)
	return nil
}

// encodeDataValue serializes a raw write value and reports its width.
// Integers keep the legacy magnitude inference (1, 2 or 4 bytes, big-endian);
// typed widths belong in FormatField.
func encodeDataValue(data any) ([]byte, int, bool) {
	switch v := data.(type) {
	case []byte:
		return v, len(v), true
	case byte:
		return []byte{v}, 1, true
	case string:
		b, ok := AsBytes(v)
		if !ok {
			return nil, 0, false
		}
		return b, len(b), true
	}
	if n, ok := AsInt(data); ok {
		switch {
		case n >= 0 && n < 1<<8:
			return []byte{byte(n)}, 1, true
		case n >= 0 && n < 1<<16:
			return []byte{byte(n >> 8), byte(n)}, 2, true
		default:
			return []byte{byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n)}, 4, true
		}
	}
	return nil, 0, false
}
