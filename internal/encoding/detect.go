// Package encoding turns uploaded text files of unknown charset into UTF-8.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const sniffLen = 4096

// Fallback is assumed when nothing else matches; spreadsheet exports on
// French locale Windows machines use it.
const Fallback = "windows-1252"

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// decoders lists the chardet charsets we transcode. Arabic code pages are
// common for city names in tariff grids.
var decoders = map[string]encoding.Encoding{
	"ISO-8859-1":   charmap.Windows1252,
	"windows-1252": charmap.Windows1252,
	"ISO-8859-6":   charmap.ISO8859_6,
	"windows-1256": charmap.Windows1256,
	"ISO-8859-9":   charmap.ISO8859_9,
	"UTF-16LE":     unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"UTF-16BE":     unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
}

// Decoded is UTF-8 text together with the charset it was read as.
type Decoded struct {
	io.Reader
	Charset string
}

// NewUTF8Reader sniffs the start of r and returns a reader producing UTF-8.
//
// A BOM wins, then valid UTF-8 passes through, then chardet is asked, and
// Fallback is used when chardet names a charset we do not decode.
func NewUTF8Reader(r io.Reader) (*Decoded, error) {
	br := bufio.NewReaderSize(r, sniffLen)

	buf, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("peek: %w", err)
	}

	switch {
	case bytes.HasPrefix(buf, bomUTF8):
		_, _ = br.Discard(len(bomUTF8))
		return &Decoded{Reader: br, Charset: "UTF-8"}, nil
	case bytes.HasPrefix(buf, bomUTF16LE):
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		return &Decoded{Reader: transform.NewReader(br, dec), Charset: "UTF-16LE"}, nil
	case bytes.HasPrefix(buf, bomUTF16BE):
		dec := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
		return &Decoded{Reader: transform.NewReader(br, dec), Charset: "UTF-16BE"}, nil
	}

	if validUTF8Prefix(buf) {
		return &Decoded{Reader: br, Charset: "UTF-8"}, nil
	}

	charset := Fallback

	if result, err := chardet.NewTextDetector().DetectBest(buf); err == nil {
		if result.Charset == "UTF-8" {
			return &Decoded{Reader: br, Charset: "UTF-8"}, nil
		}

		if _, ok := decoders[result.Charset]; ok {
			charset = result.Charset
		}
	}

	return &Decoded{
		Reader:  transform.NewReader(br, decoders[charset].NewDecoder()),
		Charset: charset,
	}, nil
}

// validUTF8Prefix is utf8.Valid that tolerates a rune cut at the sniff boundary.
func validUTF8Prefix(buf []byte) bool {
	if utf8.Valid(buf) {
		return true
	}

	if len(buf) < sniffLen {
		return false
	}

	for cut := 1; cut < utf8.UTFMax && cut < len(buf); cut++ {
		if utf8.Valid(buf[:len(buf)-cut]) {
			return true
		}
	}

	return false
}
