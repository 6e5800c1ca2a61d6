// Command tagdump prints the ID3v2 metadata of an MP3 file.
//
// Useful for checking what the parser actually extracts from a given
// file, warnings included.
//
// Usage:
//
//	tagdump [-cover out.jpg] [-legacy] <file.mp3>
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/glassflow/mp3meta"
)

func main() {
	coverOut := flag.String("cover", "", "write the embedded cover to this file")
	legacy := flag.Bool("legacy", false, "retry non-UTF-8 text against legacy charsets")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: tagdump [-cover out.jpg] [-legacy] <file.mp3>")
		os.Exit(1)
	}
	path := flag.Arg(0)

	var opts []mp3meta.Option
	if *legacy {
		opts = append(opts, mp3meta.WithLegacyTextEncodings())
	}

	rec, err := mp3meta.ParseFile(path, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Title:    %s\n", rec.Title)
	fmt.Printf("Artist:   %s\n", rec.Artist)
	fmt.Printf("Album:    %s\n", rec.Album)
	if rec.DurationSeconds > 0 {
		fmt.Printf("Duration: %.1fs\n", rec.DurationSeconds)
	}

	if rec.Cover != nil {
		fmt.Printf("Cover:    %s, %d bytes\n", rec.Cover.MIMEType, len(rec.Cover.Data))
		if *coverOut != "" {
			if err := os.WriteFile(*coverOut, rec.Cover.Data, 0o644); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing cover: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("          written to %s\n", *coverOut)
		}
	}

	if len(rec.Lyrics) > 0 {
		fmt.Printf("\nLyrics (%d lines):\n", len(rec.Lyrics))
		for _, line := range rec.Lyrics {
			fmt.Printf("  [%7.2f] %s\n", line.Seconds, line.Text)
		}
	}

	if len(rec.Warnings) > 0 {
		fmt.Println("\nWarnings:")
		for _, w := range rec.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}
}
