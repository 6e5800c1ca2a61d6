// Package mp3meta extracts ID3v2 metadata from MP3 files without an
// external tagging library.
//
// mp3meta reads tag structures directly from raw file bytes: frame
// headers, syncsafe integers, embedded pictures and timestamped lyrics.
// It was extracted from a music player, and it keeps that player's
// contract: a parse call never fails.
//
// # Quick Start
//
//	rec, err := mp3meta.ParseFile("song.mp3")
//	if err != nil {
//		log.Fatal(err) // file could not be read
//	}
//	fmt.Printf("%s - %s (%s)\n", rec.Artist, rec.Title, rec.Album)
//
// Parsing an already-read buffer:
//
//	rec := mp3meta.Parse("song.mp3", data)
//
// # Graceful Degradation
//
// Malformed input is never an error. A missing tag yields a record whose
// title is the filename stem and whose artist/album are placeholder
// strings; a truncated frame stops the frame walk and keeps everything
// decoded before it; undecodable text is repaired best-effort. Anything
// the parser had to skip is recorded in Metadata.Warnings:
//
//	for _, w := range rec.Warnings {
//		log.Printf("warning: %s", w)
//	}
//
// # Lyrics
//
// USLT frames carrying LRC-style "[mm:ss.xx]" timestamps are parsed into
// Metadata.Lyrics, sorted ascending by timestamp. A simplified caption
// markup with begin="..." attributes is supported as a fallback format.
//
// # Concurrency
//
// A parse call owns its input buffer for the call's duration and shares
// no mutable state, so concurrent parses of different buffers need no
// locking. ParseMany batches files across runtime.NumCPU() goroutines.
package mp3meta
