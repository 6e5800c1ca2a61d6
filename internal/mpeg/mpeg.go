// Package mpeg derives stream properties from MPEG audio frame headers.
//
// The tag parser itself never touches audio data; this probe is the
// in-repo stand-in for the external decoder that supplies duration. It
// reads frame headers only, so it is cheap but approximate for unusual
// streams.
package mpeg

import (
	"encoding/binary"

	binutil "github.com/glassflow/mp3meta/internal/binary"
)

// Bitrate table (MPEG1 Layer III) in kbps.
var bitrateTable = []int{
	0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 0,
}

// Sample rate table (MPEG1) in Hz.
var sampleRateTable = []int{
	44100, 48000, 32000, 0,
}

// Samples per MPEG1 Layer III frame.
const samplesPerFrame = 1152

// Info holds stream properties derived from frame headers.
type Info struct {
	DurationSeconds float64
	Bitrate         int // bits per second
	SampleRate      int // Hz
	Channels        int
	VBR             bool
}

// Probe searches for the first valid MPEG frame after the ID3 tag and
// derives bitrate, sample rate, channel count and duration. ok is false
// when no valid frame exists in the buffer.
func Probe(data []byte, tagSize int) (Info, bool) {
	v := binutil.NewView(data)

	offset := tagSize
	if offset < 0 {
		offset = 0
	}

	for offset <= v.Len()-4 {
		header, valid := frameHeaderAt(v, offset)
		if valid {
			bitrate, sampleRate, channels := decodeFrameHeader(header)
			if bitrate > 0 && sampleRate > 0 {
				info := Info{
					Bitrate:    bitrate,
					SampleRate: sampleRate,
					Channels:   channels,
				}
				if dur, vbr := vbrDuration(v, offset, sampleRate); vbr {
					info.DurationSeconds = dur
					info.VBR = true
				} else {
					info.DurationSeconds = cbrDuration(bitrate, v.Len(), tagSize)
				}
				return info, true
			}
		}
		offset++
	}

	return Info{}, false
}

// frameHeaderAt reads 4 bytes at offset and validates sync, version and
// layer bits.
func frameHeaderAt(v binutil.View, offset int) (uint32, bool) {
	header, ok := v.U32BE(offset)
	if !ok {
		return 0, false
	}

	// Frame sync: 11 set bits.
	if header&0xFFE00000 != 0xFFE00000 {
		return 0, false
	}

	version := (header >> 19) & 0x3
	layer := (header >> 17) & 0x3

	// MPEG1 (11) or MPEG2 (10), Layer III (01).
	if version != 3 && version != 2 {
		return 0, false
	}
	if layer != 1 {
		return 0, false
	}

	return header, true
}

// decodeFrameHeader extracts bitrate, sample rate and channels.
func decodeFrameHeader(header uint32) (bitrate, sampleRate, channels int) {
	bitrateIdx := (header >> 12) & 0xF
	if bitrateIdx < uint32(len(bitrateTable)) {
		bitrate = bitrateTable[bitrateIdx] * 1000
	}

	sampleRateIdx := (header >> 10) & 0x3
	if sampleRateIdx < uint32(len(sampleRateTable)) {
		sampleRate = sampleRateTable[sampleRateIdx]
	}

	channelMode := (header >> 6) & 0x3
	if channelMode == 3 {
		channels = 1
	} else {
		channels = 2
	}

	return
}

// vbrDuration checks for Xing/Info and VBRI headers and computes duration
// from the embedded frame count.
func vbrDuration(v binutil.View, frameOffset int, sampleRate int) (float64, bool) {
	// Xing/Info sits 36 bytes after the frame header for MPEG1.
	marker, ok := v.Bytes(frameOffset+36, 4)
	if !ok {
		return 0, false
	}

	switch string(marker) {
	case "Xing", "Info":
		flagBytes, ok := v.Bytes(frameOffset+40, 4)
		if !ok {
			return 0, false
		}
		flags := binary.BigEndian.Uint32(flagBytes)
		if flags&0x0001 == 0 {
			return 0, false
		}
		frameBytes, ok := v.Bytes(frameOffset+44, 4)
		if !ok {
			return 0, false
		}
		numFrames := binary.BigEndian.Uint32(frameBytes)
		return framesDuration(numFrames, sampleRate), true

	case "VBRI":
		frameBytes, ok := v.Bytes(frameOffset+36+14, 4)
		if !ok {
			return 0, false
		}
		numFrames := binary.BigEndian.Uint32(frameBytes)
		return framesDuration(numFrames, sampleRate), true
	}

	return 0, false
}

// framesDuration converts a frame count to seconds.
func framesDuration(numFrames uint32, sampleRate int) float64 {
	if sampleRate <= 0 {
		return 0
	}
	totalSamples := uint64(numFrames) * samplesPerFrame
	return float64(totalSamples) / float64(sampleRate)
}

// cbrDuration estimates duration for constant-bitrate streams from the
// audio byte count.
func cbrDuration(bitrate int, fileSize, tagSize int) float64 {
	if bitrate <= 0 {
		return 0
	}
	audioSize := fileSize - tagSize
	if audioSize <= 0 {
		return 0
	}
	return float64(audioSize*8) / float64(bitrate)
}
