package id3

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// legacyEncodings is the fallback chain tried when a text frame is not
// valid UTF-8 and Options.LegacyEncodings is set. Latin-1 comes last
// because it accepts any byte sequence.
var legacyEncodings = []encoding.Encoding{
	simplifiedchinese.GBK,
	simplifiedchinese.GB18030,
	traditionalchinese.Big5,
	charmap.ISO8859_1,
}

// DecodeTextFrame decodes an ID3v2 text frame payload.
//
// The first payload byte is the text-encoding indicator and is always
// skipped; the remaining bytes are decoded as UTF-8 with invalid sequences
// dropped. This is deliberately not a full ID3 text-encoding state machine:
// the indicator value is not branched on. Trailing NULs and surrounding
// whitespace are stripped. Returns "" when the payload has no room for
// text after the indicator byte.
func DecodeTextFrame(payload []byte, opts Options) string {
	if len(payload) <= 1 {
		return ""
	}
	return cleanText(decodeBytes(payload[1:], opts))
}

// decodeBytes turns raw frame bytes into a string, best effort.
func decodeBytes(raw []byte, opts Options) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	if opts.LegacyEncodings {
		for _, enc := range legacyEncodings {
			out, err := enc.NewDecoder().Bytes(raw)
			if err != nil {
				continue
			}
			if s := string(out); !strings.ContainsRune(s, utf8.RuneError) {
				return s
			}
		}
	}
	// Drop undecodable sequences rather than fail.
	return strings.ToValidUTF8(string(raw), "")
}

// cleanText strips trailing/leading NUL padding, then whitespace.
func cleanText(s string) string {
	return strings.TrimSpace(strings.Trim(s, "\x00"))
}
