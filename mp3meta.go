package mp3meta

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/glassflow/mp3meta/internal/id3"
	"github.com/glassflow/mp3meta/internal/mpeg"
	"github.com/glassflow/mp3meta/internal/types"
)

// Parse extracts ID3v2 metadata from the raw bytes of an MP3 file.
//
// Parse never fails: malformed or absent tags degrade to a record carrying
// defaults (title from the filename stem of name, placeholder artist and
// album) plus warnings describing what was skipped. name is only used for
// the title fallback and may be empty.
//
// The input slice is only read, never retained or mutated; concurrent
// calls on distinct buffers are safe.
func Parse(name string, data []byte, opts ...Option) *Metadata {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return parse(name, data, options)
}

func parse(name string, data []byte, options *parseOptions) *types.Metadata {
	rec := &types.Metadata{
		Title:  stem(name),
		Artist: options.unknownArtist,
		Album:  options.unknownAlbum,
	}

	id3.ParseTag(data, rec, id3.Options{
		LegacyEncodings: options.legacyEncodings,
		MaxCoverSize:    options.maxCoverSize,
	})

	return rec
}

// ParseFile reads path and parses its metadata.
//
// The returned error covers file I/O only; tag problems surface as
// warnings on the record, exactly as with Parse. Unless disabled with
// WithoutDuration, DurationSeconds is filled by probing MPEG frame
// headers after the tag.
func ParseFile(path string, opts ...Option) (*Metadata, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	rec := parse(path, data, options)

	if !options.noDuration {
		tagSize := 0
		if header, ok := id3.ParseHeader(data); ok {
			tagSize = header.TagSize()
		}
		if info, ok := mpeg.Probe(data, tagSize); ok {
			rec.DurationSeconds = info.DurationSeconds
		} else {
			rec.Warn("duration", "no valid MPEG frame found", 0)
		}
	}

	return rec, nil
}

// ParseFileContext is ParseFile with context support for cancellation.
//
// The context is checked before the file is read; parsing itself is
// bounded by tag size and runs to completion.
func ParseFileContext(ctx context.Context, path string, opts ...Option) (*Metadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ParseFile(path, opts...)
}

// ParseMany parses multiple files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. The first
// file that cannot be read fails the whole batch.
func ParseMany(ctx context.Context, paths ...string) ([]*Metadata, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Metadata, len(paths))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			rec, err := ParseFile(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = rec
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// stem returns the base name of path without its extension.
func stem(path string) string {
	if path == "" {
		return ""
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
