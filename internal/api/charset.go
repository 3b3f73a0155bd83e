package api

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Charset is a message charset accepted by the gateway.
type Charset string

// Supported charsets.
const (
	CharsetUTF8        Charset = "utf-8"
	CharsetKOI8R       Charset = "koi8-r"
	CharsetWindows1251 Charset = "windows-1251"
)

func (cs Charset) validate() error {
	switch cs {
	case CharsetUTF8, CharsetKOI8R, CharsetWindows1251:
		return nil
	}
	return &CharsetError{Charset: string(cs)}
}

func (cs Charset) encoding() encoding.Encoding {
	switch cs {
	case CharsetKOI8R:
		return charmap.KOI8R
	case CharsetWindows1251:
		return charmap.Windows1251
	}
	return nil
}

// Encode converts a UTF-8 string to the charset. Runes the charset cannot
// represent are replaced with the charset's substitution byte.
func (cs Charset) Encode(s string) string {
	enc := cs.encoding()
	if enc == nil {
		return s
	}
	out, err := encoding.ReplaceUnsupported(enc.NewEncoder()).String(s)
	if err != nil {
		return s
	}
	return out
}

// Decode converts bytes in the charset to UTF-8.
func (cs Charset) Decode(b []byte) ([]byte, error) {
	enc := cs.encoding()
	if enc == nil {
		return b, nil
	}
	return enc.NewDecoder().Bytes(b)
}
