package id3

import (
	"bytes"
	"testing"
)

// apicPayload assembles an APIC frame payload.
func apicPayload(mime string, pictureType byte, description string, image []byte) []byte {
	payload := []byte{0x00}
	payload = append(payload, mime...)
	payload = append(payload, 0x00, pictureType)
	payload = append(payload, description...)
	payload = append(payload, 0x00)
	payload = append(payload, image...)
	return payload
}

func TestExtractPicture(t *testing.T) {
	image := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	data, mime, ok := ExtractPicture(apicPayload("image/png", 0x03, "", image))
	if !ok {
		t.Fatal("expected a picture")
	}
	if mime != "image/png" {
		t.Errorf("mime = %q, want image/png", mime)
	}
	if !bytes.Equal(data, image) {
		t.Errorf("image = %v, want %v (verbatim)", data, image)
	}
}

func TestExtractPicture_WithDescription(t *testing.T) {
	image := []byte{0xFF, 0xD8, 0xFF}

	data, mime, ok := ExtractPicture(apicPayload("image/jpeg", 0x03, "front cover", image))
	if !ok {
		t.Fatal("expected a picture")
	}
	if mime != "image/jpeg" {
		t.Errorf("mime = %q, want image/jpeg", mime)
	}
	if !bytes.Equal(data, image) {
		t.Errorf("image = %v, want %v", data, image)
	}
}

func TestExtractPicture_EmptyMIMEDefaultsToJPEG(t *testing.T) {
	_, mime, ok := ExtractPicture(apicPayload("", 0x00, "", []byte{1, 2, 3}))
	if !ok {
		t.Fatal("expected a picture")
	}
	if mime != "image/jpeg" {
		t.Errorf("mime = %q, want the image/jpeg default", mime)
	}
}

func TestExtractPicture_TooShort(t *testing.T) {
	for _, payload := range [][]byte{nil, {0}, {0, 'a', 0, 1}} {
		if _, _, ok := ExtractPicture(payload); ok {
			t.Errorf("ExtractPicture(%v) should find nothing", payload)
		}
	}
}

func TestExtractPicture_NoImageData(t *testing.T) {
	// MIME and terminators present, nothing after the description.
	payload := []byte{0x00}
	payload = append(payload, "image/png"...)
	payload = append(payload, 0x00, 0x03, 0x00)

	if _, _, ok := ExtractPicture(payload); ok {
		t.Error("expected no picture when the payload ends at the description")
	}
}

func TestExtractPicture_UnterminatedMIME(t *testing.T) {
	// No NUL anywhere: the bounded scans run off the end and the
	// extractor reports nothing instead of panicking.
	payload := append([]byte{0x00}, "image/pngxxxxxxxx"...)

	if _, _, ok := ExtractPicture(payload); ok {
		t.Error("expected no picture for an unterminated MIME string")
	}
}
