// Package binary provides bounds-checked access to an in-memory tag buffer.
package binary

import "encoding/binary"

// View wraps a byte slice with bounds-checked accessors.
//
// Every accessor returns an ok flag instead of panicking on short input, so
// offset arithmetic over corrupt tags can never take down the parse. A View
// never copies or mutates the underlying slice.
type View struct {
	data []byte
}

// NewView creates a View over data.
func NewView(data []byte) View {
	return View{data: data}
}

// Len returns the length of the underlying buffer.
func (v View) Len() int {
	return len(v.data)
}

// Bytes returns n bytes starting at off, without copying.
func (v View) Bytes(off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(v.data)-n {
		return nil, false
	}
	return v.data[off : off+n], true
}

// Byte returns the single byte at off.
func (v View) Byte(off int) (byte, bool) {
	if off < 0 || off >= len(v.data) {
		return 0, false
	}
	return v.data[off], true
}

// U32BE reads a big-endian uint32 at off.
func (v View) U32BE(off int) (uint32, bool) {
	b, ok := v.Bytes(off, 4)
	if !ok {
		return 0, false
	}
	return binary.BigEndian.Uint32(b), true
}

// Syncsafe reads a 4-byte syncsafe integer at off: the low 7 bits of each
// byte, most-significant byte first. High bits are silently masked off;
// clean reports whether all four high bits were clear.
func (v View) Syncsafe(off int) (val uint32, clean, ok bool) {
	b, ok := v.Bytes(off, 4)
	if !ok {
		return 0, false, false
	}
	val = DecodeSyncsafe(b)
	clean = b[0]|b[1]|b[2]|b[3] < 0x80
	return val, clean, true
}

// DecodeSyncsafe decodes a 4-byte syncsafe integer (7 bits per byte).
// ID3v2 uses 7-bit encoding where bit 7 is always 0; a set high bit is
// dropped rather than rejected, matching lenient legacy decoders.
func DecodeSyncsafe(b []byte) uint32 {
	if len(b) != 4 {
		return 0
	}
	return uint32(b[0]&0x7F)<<21 |
		uint32(b[1]&0x7F)<<14 |
		uint32(b[2]&0x7F)<<7 |
		uint32(b[3]&0x7F)
}
