package types

import "testing"

func TestWarningString(t *testing.T) {
	w := Warning{Stage: "frame", Message: "size runs past tag end"}
	if got := w.String(); got != "frame: size runs past tag end" {
		t.Errorf("String() = %q", got)
	}

	w.Offset = 42
	if got := w.String(); got != "frame (at offset 42): size runs past tag end" {
		t.Errorf("String() = %q", got)
	}
}

func TestWarn(t *testing.T) {
	var m Metadata
	m.Warn("tag", "first", 0)
	m.Warn("cover", "second", 7)

	if len(m.Warnings) != 2 {
		t.Fatalf("got %d warnings", len(m.Warnings))
	}
	if m.Warnings[0].Stage != "tag" || m.Warnings[1].Offset != 7 {
		t.Errorf("warnings = %v", m.Warnings)
	}
}
