// Package types holds the shared data model for mp3meta.
package types

import "fmt"

// Default placeholders used when a tag carries no artist/album. These match
// the strings shown by the player the library was extracted from.
const (
	UnknownArtist = "未知艺术家"
	UnknownAlbum  = "未知专辑"
)

// Metadata is the result of one parse call.
//
// A Metadata is created once per parse and never mutated after return.
// Fields that could not be extracted keep their defaults: Title falls back
// to the filename stem, Artist/Album to the unknown placeholders, Cover to
// nil and Lyrics to an empty slice.
type Metadata struct {
	Title  string
	Artist string
	Album  string

	// DurationSeconds is filled by the MPEG frame probe (ParseFile) or a
	// caller-side decoder; the tag parser itself leaves it at 0.
	DurationSeconds float64

	// Cover is the embedded front cover, if an APIC frame was found.
	Cover *Cover

	// Lyrics is sorted ascending by timestamp; equal timestamps keep
	// their encounter order.
	Lyrics []LyricLine

	// Warnings encountered during parsing (non-fatal issues).
	Warnings []Warning
}

// Cover is an embedded picture extracted from an APIC frame.
type Cover struct {
	Data     []byte
	MIMEType string
}

// LyricLine is a single timestamped lyrics line.
type LyricLine struct {
	Seconds float64
	Text    string
}

// Warning represents a non-fatal issue encountered during parsing.
//
// The parser never fails on malformed input; anything it had to skip or
// repair is recorded here instead. Stages: "tag", "frame", "text",
// "cover", "lyrics", "duration".
type Warning struct {
	Stage   string
	Message string

	// File offset where the issue occurred (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}

// Warn appends a warning to the record.
func (m *Metadata) Warn(stage, message string, offset int64) {
	m.Warnings = append(m.Warnings, Warning{Stage: stage, Message: message, Offset: offset})
}
