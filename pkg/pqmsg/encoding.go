package pqmsg

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Encoding converts string fields between UTF-8 and a client encoding.
// The zero value is UTF8.
type Encoding struct {
	name        string
	codec       encoding.Encoding // nil for UTF8 and SQL_ASCII
	passthrough bool              // SQL_ASCII: bytes are copied unchecked
}

var (
	// UTF8 validates strings in both directions and copies them unchanged.
	UTF8 = Encoding{name: "UTF8"}
	// SQLASCII copies bytes without validation or conversion.
	SQLASCII = Encoding{name: "SQL_ASCII", passthrough: true}
)

// Keys are normalized with normalizeEncodingName.
var encodings = map[string]Encoding{
	"utf8":     UTF8,
	"unicode":  UTF8,
	"sqlascii": SQLASCII,

	"latin1":   {name: "LATIN1", codec: charmap.ISO8859_1},
	"latin2":   {name: "LATIN2", codec: charmap.ISO8859_2},
	"latin3":   {name: "LATIN3", codec: charmap.ISO8859_3},
	"latin4":   {name: "LATIN4", codec: charmap.ISO8859_4},
	"latin5":   {name: "LATIN5", codec: charmap.ISO8859_9},
	"latin6":   {name: "LATIN6", codec: charmap.ISO8859_10},
	"latin7":   {name: "LATIN7", codec: charmap.ISO8859_13},
	"latin8":   {name: "LATIN8", codec: charmap.ISO8859_14},
	"latin9":   {name: "LATIN9", codec: charmap.ISO8859_15},
	"latin10":  {name: "LATIN10", codec: charmap.ISO8859_16},
	"iso88595": {name: "ISO_8859_5", codec: charmap.ISO8859_5},
	"iso88596": {name: "ISO_8859_6", codec: charmap.ISO8859_6},
	"iso88597": {name: "ISO_8859_7", codec: charmap.ISO8859_7},
	"iso88598": {name: "ISO_8859_8", codec: charmap.ISO8859_8},
	"win866":   {name: "WIN866", codec: charmap.CodePage866},
	"win874":   {name: "WIN874", codec: charmap.Windows874},
	"win1250":  {name: "WIN1250", codec: charmap.Windows1250},
	"win1251":  {name: "WIN1251", codec: charmap.Windows1251},
	"win1252":  {name: "WIN1252", codec: charmap.Windows1252},
	"win1253":  {name: "WIN1253", codec: charmap.Windows1253},
	"win1254":  {name: "WIN1254", codec: charmap.Windows1254},
	"win1255":  {name: "WIN1255", codec: charmap.Windows1255},
	"win1256":  {name: "WIN1256", codec: charmap.Windows1256},
	"win1257":  {name: "WIN1257", codec: charmap.Windows1257},
	"win1258":  {name: "WIN1258", codec: charmap.Windows1258},
	"koi8r":    {name: "KOI8R", codec: charmap.KOI8R},
	"koi8u":    {name: "KOI8U", codec: charmap.KOI8U},
}

// LookupEncoding resolves a PostgreSQL encoding name such as "UTF8",
// "LATIN1" or "win1252". Case, underscores and dashes are ignored.
func LookupEncoding(name string) (Encoding, error) {
	enc, ok := encodings[normalizeEncodingName(name)]
	if !ok {
		return Encoding{}, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return enc, nil
}

func normalizeEncodingName(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'A' && c <= 'Z':
			sb.WriteByte(c + ('a' - 'A'))
		case c == '_' || c == '-' || c == ' ':
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// Name returns the canonical PostgreSQL name of the encoding.
func (e Encoding) Name() string {
	if e.name == "" {
		return UTF8.name
	}
	return e.name
}

// decode converts client-encoded bytes to a UTF-8 string.
func (e Encoding) decode(b []byte) (string, error) {
	switch {
	case e.passthrough:
		return string(b), nil
	case e.codec == nil:
		if _, _, err := transform.Bytes(encoding.UTF8Validator, b); err != nil {
			return "", err
		}
		return string(b), nil
	default:
		out, err := e.codec.NewDecoder().Bytes(b)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
}

// encode converts a UTF-8 string to client-encoded bytes.
func (e Encoding) encode(s string) ([]byte, error) {
	switch {
	case e.passthrough:
		return []byte(s), nil
	case e.codec == nil:
		if _, _, err := transform.String(encoding.UTF8Validator, s); err != nil {
			return nil, err
		}
		return []byte(s), nil
	default:
		return e.codec.NewEncoder().Bytes([]byte(s))
	}
}
