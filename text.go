package songcache

import (
	"bytes"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeText reads the file at path and returns its contents decoded to a
// Go string, sniffing a leading byte-order mark the way song.ini/notes.chart
// files in the wild are encoded: UTF-16 (either endianness) with a BOM,
// UTF-8 with a BOM, or bare UTF-8.
func decodeText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return decodeTextBytes(raw)
}

func decodeTextBytes(raw []byte) (string, error) {
	if len(raw) < 3 {
		return strings.ToValidUTF8(string(raw), "�"), nil
	}

	var enc encoding.Encoding
	switch {
	case raw[0] == 0xFE && raw[1] == 0xFF:
		enc = unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM)
	case raw[0] == 0xFF && raw[1] == 0xFE:
		enc = unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)
	case raw[0] == 0xEF && raw[1] == 0xBB && raw[2] == 0xBF:
		return strings.ToValidUTF8(string(bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})), "�"), nil
	default:
		return strings.ToValidUTF8(string(raw), "�"), nil
	}

	decoded, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		// The unicode decoder already substitutes invalid code units with
		// the replacement character; a non-nil err here still leaves a
		// usable partial decode, so fall through rather than failing the
		// whole scan over one bad file.
		return strings.ToValidUTF8(string(decoded), "�"), nil
	}
	return strings.ToValidUTF8(string(decoded), "�"), nil
}
