package id3

// ExtractPicture extracts the embedded image from an APIC frame payload.
//
// APIC layout:
//
//	[1 byte]          Text encoding (skipped)
//	[null-terminated] MIME type (ASCII/Latin-1)
//	[1 byte]          Picture type (skipped)
//	[null-terminated] Description (skipped)
//	[remaining]       Picture data
//
// The MIME and description scans are bounded at the end of the payload, so
// a frame missing its terminators degrades to "no picture" instead of
// reading out of range. An empty MIME string defaults to image/jpeg.
func ExtractPicture(payload []byte) (imageData []byte, mimeType string, ok bool) {
	if len(payload) <= 4 {
		return nil, "", false
	}

	pos := 1
	mimeEnd := pos
	for mimeEnd < len(payload)-1 && payload[mimeEnd] != 0 {
		mimeEnd++
	}
	mimeType = string(payload[pos:mimeEnd])

	// Skip the MIME terminator and the picture-type byte.
	pos = mimeEnd + 2

	// Skip the description up to its terminator.
	for pos < len(payload)-1 && payload[pos] != 0 {
		pos++
	}
	pos++

	if pos >= len(payload) {
		return nil, "", false
	}

	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return payload[pos:], mimeType, true
}
