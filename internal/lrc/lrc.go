// Package lrc parses timestamped lyrics text.
//
// Two fixed formats are supported: LRC bracket timestamps
// ("[mm:ss.xx]text") and a simplified caption markup carrying
// begin="..." attributes on tagged elements. Parse tries LRC first and
// falls back to the caption format only when LRC yields nothing; there is
// no format extensibility beyond these two.
package lrc

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/glassflow/mp3meta/internal/types"
)

var (
	// One or more leading timestamp tags, then the trailing text shared
	// by all of them.
	lrcLineRe = regexp.MustCompile(`^((?:\[\d{2}:\d{2}\.\d{2,3}\])+)(.*)$`)
	lrcTagRe  = regexp.MustCompile(`\[(\d{2}):(\d{2})\.(\d{2,3})\]`)

	captionLongRe  = regexp.MustCompile(`<p[^>]*begin="(\d{2}):(\d{2}):(\d{2})\.(\d{2})"[^>]*>(.*?)</p>`)
	captionShortRe = regexp.MustCompile(`<p[^>]*begin="(\d{2}):(\d{2})\.(\d{2})"[^>]*>(.*?)</p>`)
	markupRe       = regexp.MustCompile(`<[^>]+>`)
)

// Parse extracts timestamped lyrics from text, trying the LRC bracket
// format first and the caption format when LRC finds nothing. The result
// is sorted ascending by timestamp; equal timestamps keep input order.
func Parse(text string) []types.LyricLine {
	if lines := ParseLRC(text); len(lines) > 0 {
		return lines
	}
	return ParseTTML(text)
}

// ParseLRC parses LRC-format lyrics.
//
// Each non-blank line is one or more "[mm:ss.xx]" or "[mm:ss.xxx]" tags
// followed by the line text; every tag yields a separate entry carrying
// the same text. Lines with empty trailing text are dropped.
func ParseLRC(text string) []types.LyricLine {
	var lines []types.LyricLine
	if text == "" {
		return lines
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		m := lrcLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		body := strings.TrimSpace(m[2])
		if body == "" {
			continue
		}

		for _, tag := range lrcTagRe.FindAllStringSubmatch(m[1], -1) {
			lines = append(lines, types.LyricLine{
				Seconds: toSeconds("00", tag[1], tag[2], tag[3]),
				Text:    body,
			})
		}
	}

	sortLines(lines)
	return lines
}

// ParseTTML parses the simplified caption markup.
//
// Elements with begin="HH:MM:SS.xx" are tried first; when none match, the
// shorter begin="MM:SS.xx" form is tried. Embedded markup inside the
// captured text is stripped before trimming.
func ParseTTML(text string) []types.LyricLine {
	var lines []types.LyricLine
	if text == "" {
		return lines
	}

	for _, m := range captionLongRe.FindAllStringSubmatch(text, -1) {
		if body := stripMarkup(m[5]); body != "" {
			lines = append(lines, types.LyricLine{
				Seconds: toSeconds(m[1], m[2], m[3], m[4]),
				Text:    body,
			})
		}
	}

	if len(lines) == 0 {
		for _, m := range captionShortRe.FindAllStringSubmatch(text, -1) {
			if body := stripMarkup(m[4]); body != "" {
				lines = append(lines, types.LyricLine{
					Seconds: toSeconds("00", m[1], m[2], m[3]),
					Text:    body,
				})
			}
		}
	}

	sortLines(lines)
	return lines
}

func stripMarkup(s string) string {
	return strings.TrimSpace(markupRe.ReplaceAllString(s, ""))
}

// toSeconds converts matched time fields to seconds. A 2-digit fraction is
// centiseconds and is normalized to milliseconds; 3 digits are used as is.
func toSeconds(hours, minutes, seconds, fraction string) float64 {
	h, _ := strconv.Atoi(hours)
	m, _ := strconv.Atoi(minutes)
	s, _ := strconv.Atoi(seconds)
	ms, _ := strconv.Atoi(fraction)
	if len(fraction) == 2 {
		ms *= 10
	}
	return float64(h)*3600 + float64(m)*60 + float64(s) + float64(ms)/1000.0
}

// sortLines sorts ascending by timestamp, keeping input order for equal
// timestamps.
func sortLines(lines []types.LyricLine) {
	slices.SortStableFunc(lines, func(a, b types.LyricLine) int {
		return cmp.Compare(a.Seconds, b.Seconds)
	})
}
