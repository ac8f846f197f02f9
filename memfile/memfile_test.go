package memfile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEntries = []Entry{
	{0, 0x012a_4020},
	{1, 0x1500_fffe},
	{2, 0x03e0_0008},
}

func TestWriteMIF(t *testing.T) {
	assert := assert.New(t)

	buff := &bytes.Buffer{}
	err := WriteMIF(buff, testEntries, 0)
	require.NoError(t, err)

	expected := []string{
		"WIDTH=32;",
		"DEPTH=3;",
		"",
		"ADDRESS_RADIX=HEX;",
		"DATA_RADIX=HEX;",
		"",
		"CONTENT BEGIN",
		"00000000:012A4020;",
		"00000001:1500FFFE;",
		"00000002:03E00008;",
		"END;",
		"",
	}
	assert.Equal(strings.Join(expected, "\n"), buff.String())
}

func TestWriteMIF_Depth(t *testing.T) {
	assert := assert.New(t)

	buff := &bytes.Buffer{}
	err := WriteMIF(buff, testEntries, 256)
	require.NoError(t, err)
	assert.Contains(buff.String(), "DEPTH=256;\n")

	buff.Reset()
	err = WriteMIF(buff, nil, 0)
	require.NoError(t, err)
	assert.Contains(buff.String(), "DEPTH=1;\n")
	assert.True(strings.HasSuffix(buff.String(), "CONTENT BEGIN\nEND;\n"))
}

func TestMIF_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	buff := &bytes.Buffer{}
	require.NoError(t, WriteMIF(buff, testEntries, 16))

	entries, err := ReadMIF(buff)
	assert.NoError(err)
	assert.Equal(testEntries, entries)
}

func TestReadMIF_Radix(t *testing.T) {
	assert := assert.New(t)

	text := strings.Join([]string{
		"-- generated elsewhere",
		"WIDTH = 32;",
		"DEPTH = 4;",
		"ADDRESS_RADIX = DEC;",
		"DATA_RADIX = BIN;",
		"CONTENT",
		"BEGIN",
		"  10 : 00000000000000000000000000001000; -- jr $zero",
		"END;",
	}, "\n")

	entries, err := ReadMIF(strings.NewReader(text))
	assert.NoError(err)
	assert.Equal([]Entry{{10, 0x8}}, entries)
}

func TestReadMIF_Errors(t *testing.T) {
	assert := assert.New(t)

	tests := map[string]struct {
		text   string
		err    error
		lineno int
	}{
		"no-end":     {"CONTENT BEGIN\n0:0;\n", ErrMifEnd, 0},
		"bad-radix":  {"ADDRESS_RADIX=ROMAN;\n", ErrMifRadix, 1},
		"bad-width":  {"WIDTH=16;\n", ErrMifSyntax, 1},
		"bad-header": {"WIDTH 32;\n", ErrMifSyntax, 1},
		"no-colon":   {"CONTENT BEGIN\n00000000 012A4020;\nEND;\n", ErrMifSyntax, 2},
		"no-semi":    {"CONTENT BEGIN\n0:1\nEND;\n", ErrMifSyntax, 2},
		"bad-word":   {"CONTENT BEGIN\n0:XYZ;\nEND;\n", ErrMifSyntax, 2},
		"wide-word":  {"CONTENT BEGIN\n0:123456789;\nEND;\n", ErrMifSyntax, 2},
		"after-end":  {"CONTENT BEGIN\nEND;\n0:0;\n", ErrMifSyntax, 3},
	}

	for name, test := range tests {
		_, err := ReadMIF(strings.NewReader(test.text))
		assert.ErrorIs(err, test.err, name)
		if test.lineno != 0 {
			el, ok := err.(*ErrLine)
			if assert.True(ok, name) {
				assert.Equal(test.lineno, el.LineNo, name)
			}
		}
	}
}

func TestRaw(t *testing.T) {
	assert := assert.New(t)

	buff := &bytes.Buffer{}
	err := WriteRaw(buff, testEntries)
	require.NoError(t, err)
	assert.Equal([]byte{
		0x01, 0x2a, 0x40, 0x20,
		0x15, 0x00, 0xff, 0xfe,
		0x03, 0xe0, 0x00, 0x08,
	}, buff.Bytes())

	entries, err := ReadRaw(buff)
	assert.NoError(err)
	assert.Equal(testEntries, entries)
}

func TestRaw_Gaps(t *testing.T) {
	assert := assert.New(t)

	buff := &bytes.Buffer{}
	err := WriteRaw(buff, []Entry{{2, 0xdeadbeef}})
	require.NoError(t, err)
	assert.Equal(12, buff.Len())

	entries, err := ReadRaw(buff)
	assert.NoError(err)
	assert.Equal([]Entry{{0, 0}, {1, 0}, {2, 0xdeadbeef}}, entries)
}

func TestWriteRaw_Address(t *testing.T) {
	assert := assert.New(t)

	for _, address := range []uint32{RAW_DEPTH_MAX, 0xffff_ffff} {
		buff := &bytes.Buffer{}
		err := WriteRaw(buff, []Entry{{0, 0x1234}, {address, 0xdeadbeef}})
		assert.ErrorIs(err, ErrRawAddress, "%#x", address)
		assert.Equal(0, buff.Len())
	}

	buff := &bytes.Buffer{}
	err := WriteRaw(buff, []Entry{{RAW_DEPTH_MAX - 1, 0xdeadbeef}})
	assert.NoError(err)
	assert.Equal(4*RAW_DEPTH_MAX, buff.Len())
}

func TestReadRaw_Length(t *testing.T) {
	assert := assert.New(t)

	_, err := ReadRaw(bytes.NewReader([]byte{1, 2, 3}))
	assert.ErrorIs(err, ErrRawLength)
}

func TestCollect(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(testEntries, Collect(All(testEntries)))
	assert.Nil(Collect(All(nil)))
}
