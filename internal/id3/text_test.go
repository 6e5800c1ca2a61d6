package id3

import "testing"

func TestDecodeTextFrame(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		want    string
	}{
		{"empty", nil, ""},
		{"indicator only", []byte{0x00}, ""},
		{"ascii", []byte{0x00, 'S', 'o', 'n', 'g'}, "Song"},
		{"trailing nuls", []byte{0x00, 'S', 'o', 'n', 'g', 0x00, 0x00}, "Song"},
		{"surrounding whitespace", []byte{0x00, ' ', 'S', 'o', 'n', 'g', ' ', 0x00}, "Song"},
		{"utf8", append([]byte{0x03}, "日本語"...), "日本語"},
		// The indicator byte is skipped but never branched on.
		{"bogus indicator", []byte{0x42, 'S', 'o', 'n', 'g'}, "Song"},
		// Invalid UTF-8 sequences are dropped, not fatal.
		{"invalid utf8", []byte{0x00, 'A', 0xC3, 0x28, 'B'}, "A(B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeTextFrame(tt.payload, Options{}); got != tt.want {
				t.Errorf("DecodeTextFrame(%v) = %q, want %q", tt.payload, got, tt.want)
			}
		})
	}
}

func TestDecodeTextFrame_LegacyEncodings(t *testing.T) {
	// "你好" in GBK.
	gbk := []byte{0x00, 0xC4, 0xE3, 0xBA, 0xC3}

	if got := DecodeTextFrame(gbk, Options{LegacyEncodings: true}); got != "你好" {
		t.Errorf("GBK decode = %q, want %q", got, "你好")
	}

	// Without the option the same bytes degrade to a UTF-8 repair.
	if got := DecodeTextFrame(gbk, Options{}); got == "你好" {
		t.Error("legacy decode must be opt-in")
	}

	// A lone high byte is invalid in every CJK charset and falls through
	// to Latin-1, which accepts anything.
	latin1 := []byte{0x00, 0xE9}
	if got := DecodeTextFrame(latin1, Options{LegacyEncodings: true}); got != "é" {
		t.Errorf("Latin-1 fallback = %q, want %q", got, "é")
	}
}
