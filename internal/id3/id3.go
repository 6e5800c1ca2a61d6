// Package id3 parses ID3v2 tag structures from raw MP3 file bytes.
//
// The parser is deliberately lenient: malformed headers, truncated frames
// and undecodable text all degrade to partial results and warnings. No
// parse path returns an error or panics.
package id3

import (
	"fmt"
	"strings"

	binutil "github.com/glassflow/mp3meta/internal/binary"
	"github.com/glassflow/mp3meta/internal/lrc"
	"github.com/glassflow/mp3meta/internal/types"
)

// headerSize is the fixed ID3v2 tag header length.
const headerSize = 10

// Options control optional parser behavior.
type Options struct {
	// LegacyEncodings retries text frames that are not valid UTF-8
	// against GBK, GB18030, Big5 and Latin-1.
	LegacyEncodings bool

	// MaxCoverSize skips APIC payloads larger than this many bytes.
	// Zero means no limit.
	MaxCoverSize int
}

// Header is a parsed ID3v2 tag header.
type Header struct {
	Version byte // Major version (2, 3 or 4)
	Flags   byte
	Size    uint32 // Tag size excluding the header, syncsafe
}

// TagSize returns the total tag length including the 10-byte header.
func (h Header) TagSize() int {
	return headerSize + int(h.Size)
}

// ParseHeader reads the ID3v2 tag header at the start of data. ok is false
// when the buffer is too short or does not start with the "ID3" marker,
// which means "no tag present", not an error.
func ParseHeader(data []byte) (Header, bool) {
	v := binutil.NewView(data)
	magic, ok := v.Bytes(0, 3)
	if v.Len() < headerSize || !ok || string(magic) != "ID3" {
		return Header{}, false
	}
	version, _ := v.Byte(3)
	flags, _ := v.Byte(5)
	size := binutil.DecodeSyncsafe(data[6:10])
	return Header{Version: version, Flags: flags, Size: size}, true
}

// ParseTag scans the ID3v2 tag at the start of data and fills rec with
// whatever it can extract. It reports whether a tag was present at all;
// false means "no tag", not an error, and rec is left untouched.
func ParseTag(data []byte, rec *types.Metadata, opts Options) bool {
	v := binutil.NewView(data)

	header, ok := ParseHeader(data)
	if !ok {
		return false
	}

	if _, clean, _ := v.Syncsafe(6); !clean {
		rec.Warn("tag", "syncsafe tag size has a high bit set; masking", 6)
	}

	tagEnd := header.TagSize()
	if tagEnd > v.Len() {
		rec.Warn("tag", fmt.Sprintf("declared tag size %d runs past end of file", header.Size), 0)
		tagEnd = v.Len()
	}

	cursor := headerSize
	if header.Flags&0x40 != 0 {
		// Extended header: 4-byte big-endian size, cursor advances past it.
		if ext, ok := v.U32BE(cursor); ok {
			cursor += int(ext)
		}
	}

	walkFrames(v, cursor, tagEnd, header.Version, rec, opts)
	return true
}

// walkFrames iterates frames between cursor and tagEnd, dispatching by
// frame id. A non-positive or out-of-range frame size terminates the walk:
// the remaining bytes are treated as padding or corruption, and everything
// decoded so far stands.
func walkFrames(v binutil.View, cursor, tagEnd int, version byte, rec *types.Metadata, opts Options) {
	for cursor < tagEnd-headerSize {
		idBytes, ok := v.Bytes(cursor, 4)
		if !ok {
			return
		}
		id := string(idBytes)

		// ID3v2.2 uses a 6-byte frame header with a syncsafe size;
		// v2.3/v2.4 use 10 bytes with a plain big-endian size.
		headerLen := 6
		var frameSize int
		if version >= 3 {
			headerLen = 10
			u, ok := v.U32BE(cursor + 4)
			if !ok {
				return
			}
			frameSize = int(u)
		} else {
			u, clean, ok := v.Syncsafe(cursor + 4)
			if !ok {
				return
			}
			if !clean {
				rec.Warn("frame", "syncsafe frame size has a high bit set; masking", int64(cursor+4))
			}
			frameSize = int(u)
		}

		dataOffset := cursor + headerLen
		if frameSize <= 0 || dataOffset+frameSize > tagEnd {
			if frameSize > 0 {
				rec.Warn("frame", fmt.Sprintf("frame %q size %d runs past tag end", id, frameSize), int64(cursor))
			}
			return
		}

		payload, ok := v.Bytes(dataOffset, frameSize)
		if !ok {
			return
		}
		dispatchFrame(id, payload, rec, opts)

		cursor = dataOffset + frameSize
	}
}

// dispatchFrame routes one frame payload to the matching decoder.
//
// Text fields are assigned whenever a frame of the matching id decodes to
// something non-empty, so with duplicate frame ids the last non-empty
// value wins. This matches the player this parser was extracted from and
// is covered by tests as intended behavior.
func dispatchFrame(id string, payload []byte, rec *types.Metadata, opts Options) {
	switch id {
	case "TIT2":
		if text := DecodeTextFrame(payload, opts); text != "" {
			rec.Title = text
		}
	case "TPE1":
		if text := DecodeTextFrame(payload, opts); text != "" {
			rec.Artist = text
		}
	case "TALB":
		if text := DecodeTextFrame(payload, opts); text != "" {
			rec.Album = text
		}
	case "APIC":
		if opts.MaxCoverSize > 0 && len(payload) > opts.MaxCoverSize {
			rec.Warn("cover", fmt.Sprintf("APIC frame of %d bytes exceeds limit %d; skipping", len(payload), opts.MaxCoverSize), 0)
			return
		}
		if img, mime, ok := ExtractPicture(payload); ok {
			rec.Cover = &types.Cover{Data: img, MIMEType: mime}
		}
	case "USLT":
		text := DecodeTextFrame(payload, opts)
		if text != "" && strings.Contains(text, "[00:") {
			rec.Lyrics = lrc.Parse(text)
		}
	}
}
