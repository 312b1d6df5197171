package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/MrJamesThe3rd/dispatch/internal/encoding"
)

const grid = "Code;Ville;Tarif de base;Wilaya\nBJA;Béjaïa;450,00;Béjaïa\nTLM;Tlemcen;600,00;Tlemcen\nGHA;Ghardaïa;1.250,00;Ghardaïa\n"

func readAll(t *testing.T, input []byte) (string, string) {
	t.Helper()

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(got), r.Charset
}

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	input := grid + "ALG;الجزائر;300,00;Alger\n"

	got, charset := readAll(t, []byte(input))
	assert.Equal(t, input, got)
	assert.Equal(t, "UTF-8", charset)
}

func TestNewUTF8Reader_Windows1252(t *testing.T) {
	latin, err := charmap.Windows1252.NewEncoder().Bytes([]byte(grid))
	require.NoError(t, err)

	got, charset := readAll(t, latin)
	assert.Equal(t, grid, got)
	assert.NotEqual(t, "UTF-8", charset)
}

func TestNewUTF8Reader_UTF8BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, grid...)

	got, charset := readAll(t, input)
	assert.Equal(t, grid, got)
	assert.Equal(t, "UTF-8", charset)
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()

	input, err := enc.Bytes([]byte(grid))
	require.NoError(t, err)

	got, charset := readAll(t, input)
	assert.Equal(t, grid, got)
	assert.Equal(t, "UTF-16LE", charset)
}

func TestNewUTF8Reader_Empty(t *testing.T) {
	got, charset := readAll(t, nil)
	assert.Empty(t, got)
	assert.Equal(t, "UTF-8", charset)
}
