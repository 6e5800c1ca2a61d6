package mp3meta

import (
	"github.com/glassflow/mp3meta/internal/types"
)

// Metadata is an alias to types.Metadata.
// Re-exported from internal/types to keep the public API in one package.
type Metadata = types.Metadata

// Cover is an alias to types.Cover.
// Re-exported from internal/types to keep the public API in one package.
type Cover = types.Cover

// LyricLine is an alias to types.LyricLine.
// Re-exported from internal/types to keep the public API in one package.
type LyricLine = types.LyricLine

// Warning is an alias to types.Warning.
// Re-exported from internal/types to keep the public API in one package.
type Warning = types.Warning

// Re-export the default artist/album placeholders.
const (
	UnknownArtist = types.UnknownArtist
	UnknownAlbum  = types.UnknownAlbum
)
