package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBytes(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		codepage string
		want     string
	}{
		{"utf-8 passthrough", []byte("héllo"), "", "héllo"},
		{"explicit utf-8", []byte("plain"), "UTF-8", "plain"},
		{"windows-1252 e-acute", []byte{0xE9}, "ANSI_1252", "é"},
		{"windows-1251 cyrillic", []byte{0xC0}, "ansi_1251", "А"},
		{"cp850 u-umlaut", []byte{0x81}, "DOS850", "ü"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeBytes(tc.data, tc.codepage)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeBytesUnknownCodepage(t *testing.T) {
	_, err := DecodeBytes([]byte("x"), "EBCDIC-9000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported codepage "EBCDIC-9000"`)
}

func TestSniffCodepage(t *testing.T) {
	data := []byte("0\nSECTION\n2\nHEADER\n9\n$ACADVER\n1\nAC1027\n9\n$DWGCODEPAGE\n3\nANSI_1252\n0\nENDSEC\n0\nEOF")
	assert.Equal(t, "ANSI_1252", SniffCodepage(data))
}

func TestSniffCodepageAbsent(t *testing.T) {
	data := []byte("0\nSECTION\n2\nENTITIES\n0\nENDSEC\n0\nEOF")
	assert.Equal(t, "", SniffCodepage(data))
}

func TestSniffCodepageCRLF(t *testing.T) {
	data := []byte("9\r\n$DWGCODEPAGE\r\n3\r\nANSI_1251\r\n0\r\nEOF")
	assert.Equal(t, "ANSI_1251", SniffCodepage(data))
}
