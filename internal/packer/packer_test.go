package packer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_Validation(t *testing.T) {
	_, err := New('!', 'B')
	require.Error(t, err)

	_, err = New('>', 'x')
	require.Error(t, err)

	p, err := New('>', 'B')
	require.NoError(t, err)
	require.Equal(t, 1, p.Width())
}

func TestWidths(t *testing.T) {
	widths := map[byte]int{
		'b': 1, 'B': 1,
		'h': 2, 'H': 2,
		'l': 4, 'L': 4,
		'i': 4, 'I': 4,
		'q': 8, 'Q': 8,
		'f': 4, 'd': 8,
	}
	for code, want := range widths {
		p, err := New('>', code)
		require.NoError(t, err)
		require.Equal(t, want, p.Width(), "code %q", string(code))
	}
}

func TestUnpack_Endianness(t *testing.T) {
	be, err := New('>', 'H')
	require.NoError(t, err)
	v, err := be.Unpack([]byte{0x12, 0x34})
	require.NoError(t, err)
	require.Equal(t, int64(0x1234), v)

	le, err := New('<', 'H')
	require.NoError(t, err)
	v, err = le.Unpack([]byte{0x12, 0x34})
	require.NoError(t, err)
	require.Equal(t, int64(0x3412), v)
}

func TestUnpack_SignExtension(t *testing.T) {
	for _, tc := range []struct {
		code byte
		data []byte
		want int64
	}{
		{'b', []byte{0xFF}, -1},
		{'B', []byte{0xFF}, 255},
		{'h', []byte{0xFF, 0xFE}, -2},
		{'H', []byte{0xFF, 0xFE}, 0xFFFE},
		{'l', []byte{0x80, 0, 0, 0}, math.MinInt32},
		{'L', []byte{0x80, 0, 0, 0}, 0x80000000},
	} {
		p, err := New('>', tc.code)
		require.NoError(t, err)
		v, err := p.Unpack(tc.data)
		require.NoError(t, err)
		require.Equal(t, tc.want, v, "code %q", string(tc.code))
	}
}

func TestUnpack_LengthMismatch(t *testing.T) {
	p, err := New('>', 'L')
	require.NoError(t, err)
	_, err = p.Unpack([]byte{1, 2})
	require.Error(t, err)
}

func TestPack_RoundTrip(t *testing.T) {
	for _, tc := range []struct {
		code byte
		v    int64
	}{
		{'b', -128},
		{'B', 200},
		{'h', -30000},
		{'H', 60000},
		{'l', -2000000000},
		{'L', 4000000000},
		{'q', math.MinInt64},
		{'Q', -1}, // uint64 max as its int64 reinterpretation
	} {
		p, err := New('>', tc.code)
		require.NoError(t, err)
		data, err := p.Pack(tc.v)
		require.NoError(t, err)
		require.Len(t, data, p.Width())
		back, err := p.Unpack(data)
		require.NoError(t, err)
		require.Equal(t, tc.v, back, "code %q", string(tc.code))
	}
}

func TestPack_RangeChecks(t *testing.T) {
	b, err := New('>', 'b')
	require.NoError(t, err)
	_, err = b.Pack(int64(128))
	require.Error(t, err)
	_, err = b.Pack(int64(-129))
	require.Error(t, err)

	ub, err := New('>', 'B')
	require.NoError(t, err)
	_, err = ub.Pack(int64(-1))
	require.Error(t, err)
	_, err = ub.Pack(int64(256))
	require.Error(t, err)
}

func TestPack_IntegerKinds(t *testing.T) {
	p, err := New('>', 'H')
	require.NoError(t, err)
	for _, v := range []any{int(7), int8(7), int16(7), int32(7), int64(7), uint(7), uint8(7), uint16(7), uint32(7), uint64(7)} {
		data, err := p.Pack(v)
		require.NoError(t, err, "%T", v)
		require.Equal(t, []byte{0, 7}, data)
	}
	_, err = p.Pack("7")
	require.Error(t, err)
}

func TestFloat_RoundTrip(t *testing.T) {
	f, err := New('>', 'f')
	require.NoError(t, err)
	data, err := f.Pack(1.5)
	require.NoError(t, err)
	require.Len(t, data, 4)
	v, err := f.Unpack(data)
	require.NoError(t, err)
	require.Equal(t, 1.5, v)

	d, err := New('<', 'd')
	require.NoError(t, err)
	data, err = d.Pack(math.Pi)
	require.NoError(t, err)
	require.Len(t, data, 8)
	v, err = d.Unpack(data)
	require.NoError(t, err)
	require.Equal(t, math.Pi, v)

	// integers coerce to float for float codes
	data, err = d.Pack(int64(3))
	require.NoError(t, err)
	v, err = d.Unpack(data)
	require.NoError(t, err)
	require.Equal(t, float64(3), v)
}
