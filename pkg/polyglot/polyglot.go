// Package polyglot detects buffers that are structurally valid as more than
// one file format. Each format predicate inspects only the bytes relevant to
// its format; heuristic text formats require at least two corroborating
// patterns so a single stray tag cannot produce a false positive.
package polyglot

import (
	"bytes"
	"encoding/binary"

	"github.com/LegendeTestimony/sentinel-AI-sub000/pkg/models"
)

// matchConfidence is fixed once two or more formats are confirmed: multiple
// validity is a structural fact, not a probabilistic judgment.
const matchConfidence = 95

type predicate struct {
	name       string
	executable bool // exec/script-capable format
	check      func(data []byte) bool
}

var predicates = []predicate{
	{"jpeg", false, func(d []byte) bool {
		return bytes.HasPrefix(d, []byte{0xFF, 0xD8, 0xFF})
	}},
	{"png", false, func(d []byte) bool {
		return bytes.HasPrefix(d, []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A})
	}},
	{"gif", false, func(d []byte) bool {
		return bytes.HasPrefix(d, []byte("GIF87a")) || bytes.HasPrefix(d, []byte("GIF89a"))
	}},
	// The PDF header is valid anywhere in the first 1024 bytes, which is
	// exactly what makes PDF such a popular polyglot half.
	{"pdf", false, func(d []byte) bool {
		limit := len(d)
		if limit > 1024 {
			limit = 1024
		}
		return bytes.Contains(d[:limit], []byte("%PDF-"))
	}},
	// ZIP readers locate the end-of-central-directory record from the back,
	// so a trailing archive is enough.
	{"zip", false, func(d []byte) bool {
		if bytes.HasPrefix(d, []byte{0x50, 0x4B, 0x03, 0x04}) {
			return true
		}
		tail := d
		if len(tail) > 1024 {
			tail = tail[len(tail)-1024:]
		}
		return bytes.Contains(tail, []byte{0x50, 0x4B, 0x05, 0x06})
	}},
	{"pe", true, isPE},
	{"elf", true, func(d []byte) bool {
		return bytes.HasPrefix(d, []byte{0x7F, 'E', 'L', 'F'})
	}},
	{"html", true, func(d []byte) bool {
		return countPatterns(d, [][]byte{
			[]byte("<html"), []byte("<!doctype"), []byte("<script"),
			[]byte("<body"), []byte("<head"), []byte("<iframe"),
		}) >= 2
	}},
	{"script", true, func(d []byte) bool {
		if bytes.HasPrefix(d, []byte("#!")) {
			return true
		}
		return countPatterns(d, [][]byte{
			[]byte("function"), []byte("eval("), []byte("<?php"),
			[]byte("import "), []byte("#include"), []byte("powershell"),
		}) >= 2
	}},
}

// isPE requires both the MZ prefix and a valid PE header at the offset the
// DOS header points to; a bare coincidental MZ pair does not qualify.
func isPE(d []byte) bool {
	if len(d) < 0x40 || d[0] != 'M' || d[1] != 'Z' {
		return false
	}
	peOffset := int(binary.LittleEndian.Uint32(d[0x3C:0x40]))
	if peOffset < 0 || peOffset+4 > len(d) {
		return false
	}
	return bytes.Equal(d[peOffset:peOffset+4], []byte("PE\x00\x00"))
}

func countPatterns(data []byte, patterns [][]byte) int {
	lower := bytes.ToLower(data)
	count := 0
	for _, p := range patterns {
		if bytes.Contains(lower, p) {
			count++
		}
	}
	return count
}

// criticalPairs lists executable-class formats co-valid with media or
// document formats. Checked first; the first hit decides the risk tier.
var criticalPairs = [][2]string{
	{"pe", "jpeg"}, {"pe", "png"}, {"pe", "gif"}, {"pe", "pdf"}, {"pe", "zip"},
	{"elf", "jpeg"}, {"elf", "png"}, {"elf", "gif"}, {"elf", "pdf"}, {"elf", "zip"},
	{"script", "pdf"},
}

var highPairs = [][2]string{
	{"pdf", "zip"}, {"pdf", "html"},
	{"zip", "jpeg"}, {"zip", "png"}, {"zip", "gif"},
	{"html", "jpeg"}, {"html", "png"}, {"html", "gif"},
	{"script", "jpeg"}, {"script", "png"},
}

// Detect evaluates every format predicate and classifies the risk of any
// multi-format combination found.
func Detect(data []byte) models.PolyglotResult {
	var formats []string
	execCapable := false
	for _, p := range predicates {
		if p.check(data) {
			formats = append(formats, p.name)
			if p.executable {
				execCapable = true
			}
		}
	}
	if len(formats) < 2 {
		return models.PolyglotResult{Risk: models.PolyglotLow}
	}

	result := models.PolyglotResult{
		IsPolyglot: true,
		Formats:    formats,
		Confidence: matchConfidence,
	}

	matched := make(map[string]bool, len(formats))
	for _, f := range formats {
		matched[f] = true
	}
	for _, pair := range criticalPairs {
		if matched[pair[0]] && matched[pair[1]] {
			result.DangerousPairs = append(result.DangerousPairs, pair[0]+"+"+pair[1])
		}
	}
	if len(result.DangerousPairs) > 0 {
		result.Risk = models.PolyglotCritical
		return result
	}
	for _, pair := range highPairs {
		if matched[pair[0]] && matched[pair[1]] {
			result.DangerousPairs = append(result.DangerousPairs, pair[0]+"+"+pair[1])
		}
	}
	switch {
	case len(result.DangerousPairs) > 0:
		result.Risk = models.PolyglotHigh
	case execCapable:
		result.Risk = models.PolyglotMedium
	default:
		result.Risk = models.PolyglotLow
	}
	return result
}

// MatchedFormats reports just the format names whose predicates hold,
// without risk classification. Used as a raw structural signal.
func MatchedFormats(data []byte) []string {
	var formats []string
	for _, p := range predicates {
		if p.check(data) {
			formats = append(formats, p.name)
		}
	}
	return formats
}
