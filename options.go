package mp3meta

import "github.com/glassflow/mp3meta/internal/types"

// Option configures parsing behavior.
//
// Options use the functional options pattern:
//
//	rec, err := mp3meta.ParseFile("song.mp3",
//	    mp3meta.WithLegacyTextEncodings(),
//	    mp3meta.WithMaxCoverSize(10*1024*1024),
//	)
type Option func(*parseOptions)

// parseOptions holds configuration for a parse call.
type parseOptions struct {
	unknownArtist   string
	unknownAlbum    string
	legacyEncodings bool // Retry non-UTF-8 text against legacy charsets
	maxCoverSize    int  // Maximum APIC payload in bytes (0 = no limit)
	noDuration      bool // Skip the MPEG duration probe in ParseFile
}

// defaultOptions returns the default configuration.
func defaultOptions() *parseOptions {
	return &parseOptions{
		unknownArtist: types.UnknownArtist,
		unknownAlbum:  types.UnknownAlbum,
	}
}

// WithPlaceholders overrides the artist and album defaults used when a
// tag carries no value for them.
//
// The built-in defaults are the Chinese placeholders the library shipped
// with (UnknownArtist, UnknownAlbum).
func WithPlaceholders(artist, album string) Option {
	return func(o *parseOptions) {
		o.unknownArtist = artist
		o.unknownAlbum = album
	}
}

// WithLegacyTextEncodings retries text frames that are not valid UTF-8
// against GBK, GB18030, Big5 and finally Latin-1.
//
// By default such frames are decoded as UTF-8 with invalid sequences
// dropped. Enable this for files tagged by older East-Asian software.
func WithLegacyTextEncodings() Option {
	return func(o *parseOptions) {
		o.legacyEncodings = true
	}
}

// WithMaxCoverSize skips embedded pictures larger than the given number
// of bytes, recording a warning instead.
//
// Default is 0 (no limit).
func WithMaxCoverSize(bytes int) Option {
	return func(o *parseOptions) {
		o.maxCoverSize = bytes
	}
}

// WithoutDuration disables the MPEG frame probe in ParseFile, leaving
// DurationSeconds at 0.
//
// Use this when a real decoder supplies the duration anyway.
func WithoutDuration() Option {
	return func(o *parseOptions) {
		o.noDuration = true
	}
}
