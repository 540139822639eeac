// Package payload hunts for embedded executable content: shellcode
// prologues, long base64 blobs, nested executables, encrypted regions and
// script fragments. Every scan is bounded so output and cost stay
// proportional to the buffer.
package payload

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"regexp"

	"github.com/LegendeTestimony/sentinel-AI-sub000/pkg/entropy"
	"github.com/LegendeTestimony/sentinel-AI-sub000/pkg/models"
)

// Thresholds holds the tunable constants of the payload hunter. The
// confidence values are empirical and carried as configuration.
type Thresholds struct {
	MaxShellcodeHits    int     `yaml:"max_shellcode_hits"`
	Base64MinRun        int     `yaml:"base64_min_run"`
	Base64MinDecoded    int     `yaml:"base64_min_decoded"`
	MaxBase64Hits       int     `yaml:"max_base64_hits"`
	EncryptedEntropy    float64 `yaml:"encrypted_entropy"`
	BlockSize           int     `yaml:"block_size"`
	MaxBlockHits        int     `yaml:"max_block_hits"`
	MaxExecutableHits   int     `yaml:"max_executable_hits"`
	MinScriptMatch      int     `yaml:"min_script_match"`
	PreviewBytes        int     `yaml:"preview_bytes"`
	ShellcodeConfidence int     `yaml:"shellcode_confidence"`
	ScriptConfidence    int     `yaml:"script_confidence"`
}

// DefaultThresholds returns the stock hunter configuration.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MaxShellcodeHits:    5,
		Base64MinRun:        40,
		Base64MinDecoded:    32,
		MaxBase64Hits:       10,
		EncryptedEntropy:    7.5,
		BlockSize:           512,
		MaxBlockHits:        3,
		MaxExecutableHits:   3,
		MinScriptMatch:      12,
		PreviewBytes:        32,
		ShellcodeConfidence: 70,
		ScriptConfidence:    65,
	}
}

type shellcodePattern struct {
	name       string
	pattern    []byte
	confidence int
}

// shellcodePatterns is a small table of well-known prologue and sled byte
// sequences. Static fact base.
var shellcodePatterns = []shellcodePattern{
	{"NOP sled", bytes.Repeat([]byte{0x90}, 8), 70},
	{"INT3 sled", bytes.Repeat([]byte{0xCC}, 8), 55},
	{"x86 function prologue", []byte{0x55, 0x8B, 0xEC}, 50},
	{"x64 function prologue", []byte{0x55, 0x48, 0x89, 0xE5}, 55},
	{"GetPC call/pop", []byte{0xE8, 0x00, 0x00, 0x00, 0x00, 0x58}, 80},
}

var base64Run = regexp.MustCompile(`[A-Za-z0-9+/]{40,}={0,2}`)

var scriptPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<script[^>]{0,200}>`),
	regexp.MustCompile(`(?i)\beval\s*\(`),
	regexp.MustCompile(`(?i)powershell(\.exe)?\s+-enc[odema]*\s+[A-Za-z0-9+/=]{8,}`),
	regexp.MustCompile(`(?i)FromBase64String\s*\(`),
	regexp.MustCompile(`(?i)document\.write\s*\(`),
	regexp.MustCompile(`(?i)cmd(\.exe)?\s*/c\s+\S+`),
}

// Hunt runs the five independent payload scans against the buffer. The
// identification result steers which scans are meaningful for this type.
func Hunt(data []byte, id models.FileIdentificationResult, cfg Thresholds) models.PayloadAnalysis {
	var payloads []models.EmbeddedPayload
	payloads = append(payloads, scanShellcode(data, cfg)...)
	payloads = append(payloads, scanBase64(data, cfg)...)
	payloads = append(payloads, scanEmbeddedExecutables(data, id, cfg)...)
	payloads = append(payloads, scanEncryptedBlobs(data, id.TypeID, cfg)...)
	payloads = append(payloads, scanScripts(data, id, cfg)...)

	analysis := models.PayloadAnalysis{Payloads: payloads}
	if len(payloads) == 0 {
		analysis.Summary = "no embedded payloads found"
		return analysis
	}

	total := 0
	for _, p := range payloads {
		total += p.Confidence
	}
	avg := float64(total) / float64(len(payloads))
	// Independent corroborating findings raise, never lower, the aggregate.
	scaled := avg * (1.0 + 0.15*float64(len(payloads)-1))
	if scaled > 100 {
		scaled = 100
	}
	analysis.Risk = int(scaled)
	analysis.Summary = fmt.Sprintf("%d embedded payload(s) found", len(payloads))
	return analysis
}

func scanShellcode(data []byte, cfg Thresholds) []models.EmbeddedPayload {
	var hits []models.EmbeddedPayload
	for _, sp := range shellcodePatterns {
		offset := 0
		for len(hits) < cfg.MaxShellcodeHits {
			idx := bytes.Index(data[offset:], sp.pattern)
			if idx < 0 {
				break
			}
			at := offset + idx
			hits = append(hits, models.EmbeddedPayload{
				Kind:        models.PayloadShellcode,
				Offset:      at,
				Length:      len(sp.pattern),
				Confidence:  sp.confidence,
				Preview:     hexPreview(data[at:], len(sp.pattern), cfg.PreviewBytes),
				Description: sp.name + " byte sequence",
			})
			offset = at + len(sp.pattern)
		}
		if len(hits) >= cfg.MaxShellcodeHits {
			break
		}
	}
	return hits
}

func scanBase64(data []byte, cfg Thresholds) []models.EmbeddedPayload {
	var hits []models.EmbeddedPayload
	locs := base64Run.FindAllIndex(data, cfg.MaxBase64Hits)
	for _, loc := range locs {
		run := data[loc[0]:loc[1]]
		if len(run) < cfg.Base64MinRun {
			continue
		}
		decoded, err := base64.StdEncoding.DecodeString(string(run))
		if err != nil {
			if decoded, err = base64.RawStdEncoding.DecodeString(string(run)); err != nil {
				continue
			}
		}
		if len(decoded) < cfg.Base64MinDecoded {
			continue
		}

		confidence := 50
		description := "long base64 run decoding to unknown data"
		switch {
		case bytes.HasPrefix(decoded, []byte("MZ")),
			bytes.Contains(decoded, []byte{0x7F, 'E', 'L', 'F'}):
			confidence = 90
			description = "base64 run decodes to an executable image"
		case entropy.Shannon(decoded) > cfg.EncryptedEntropy:
			confidence = 70
			description = "base64 run decodes to likely encrypted or compressed data"
		}
		hits = append(hits, models.EmbeddedPayload{
			Kind:        models.PayloadBase64,
			Offset:      loc[0],
			Length:      len(run),
			Confidence:  confidence,
			Preview:     hexPreview(decoded, len(decoded), cfg.PreviewBytes),
			Description: description,
		})
	}
	return hits
}

// scanEmbeddedExecutables accepts an MZ pair only when its DOS header points
// at a valid PE signature inside the buffer.
func scanEmbeddedExecutables(data []byte, id models.FileIdentificationResult, cfg Thresholds) []models.EmbeddedPayload {
	var hits []models.EmbeddedPayload
	offset := 0
	for len(hits) < cfg.MaxExecutableHits {
		idx := bytes.Index(data[offset:], []byte("MZ"))
		if idx < 0 {
			break
		}
		at := offset + idx
		offset = at + 2
		if at == 0 && id.Category == models.CategoryExecutable {
			continue // the file itself, not an embedded copy
		}
		if !isPEAt(data, at) {
			continue
		}
		hits = append(hits, models.EmbeddedPayload{
			Kind:        models.PayloadExecutable,
			Offset:      at,
			Length:      len(data) - at,
			Confidence:  95,
			Preview:     hexPreview(data[at:], len(data)-at, cfg.PreviewBytes),
			Description: "embedded PE executable with valid header chain",
		})
	}
	return hits
}

func isPEAt(data []byte, at int) bool {
	if at < 0 || at+0x40 > len(data) || data[at] != 'M' || data[at+1] != 'Z' {
		return false
	}
	peOffset := int(binary.LittleEndian.Uint32(data[at+0x3C : at+0x40]))
	if peOffset <= 0 || at+peOffset+4 > len(data) {
		return false
	}
	return bytes.Equal(data[at+peOffset:at+peOffset+4], []byte("PE\x00\x00"))
}

// scanEncryptedBlobs is skipped for types whose baseline already expects
// near-random content; flagging compression as encryption helps nobody.
func scanEncryptedBlobs(data []byte, typeID string, cfg Thresholds) []models.EmbeddedPayload {
	if baseline, ok := entropy.Lookup(typeID); ok && baseline.Typical > 7.0 {
		return nil
	}
	var hits []models.EmbeddedPayload
	for off := 0; off+cfg.BlockSize <= len(data) && len(hits) < cfg.MaxBlockHits; off += cfg.BlockSize {
		block := data[off : off+cfg.BlockSize]
		e := entropy.Shannon(block)
		if e <= cfg.EncryptedEntropy {
			continue
		}
		hits = append(hits, models.EmbeddedPayload{
			Kind:        models.PayloadEncryptedBlob,
			Offset:      off,
			Length:      cfg.BlockSize,
			Confidence:  60,
			Preview:     hexPreview(block, len(block), cfg.PreviewBytes),
			Description: fmt.Sprintf("high-entropy block (%.2f bits/byte) in a low-entropy file type", e),
		})
	}
	return hits
}

// scanScripts is skipped when the file is already a script or markup type,
// where such patterns are simply the content.
func scanScripts(data []byte, id models.FileIdentificationResult, cfg Thresholds) []models.EmbeddedPayload {
	if id.Category == models.CategoryScript {
		return nil
	}
	var hits []models.EmbeddedPayload
	for _, re := range scriptPatterns {
		loc := re.FindIndex(data)
		if loc == nil || loc[1]-loc[0] < 1 {
			continue
		}
		snippet := data[loc[0]:]
		if len(snippet) > 120 {
			snippet = snippet[:120]
		}
		if printableCount(snippet) < cfg.MinScriptMatch {
			continue
		}
		hits = append(hits, models.EmbeddedPayload{
			Kind:        models.PayloadScript,
			Offset:      loc[0],
			Length:      loc[1] - loc[0],
			Confidence:  cfg.ScriptConfidence,
			Preview:     hexPreview(data[loc[0]:], loc[1]-loc[0], cfg.PreviewBytes),
			Description: fmt.Sprintf("script pattern %q in a non-script file", re.String()),
		})
	}
	return hits
}

// CodePatterns reports which script patterns appear in the buffer, as names
// only. It feeds the threat scorer as a raw structural signal.
func CodePatterns(data []byte) []string {
	var names []string
	for _, re := range scriptPatterns {
		if re.Match(data) {
			names = append(names, re.String())
		}
	}
	return names
}

func printableCount(data []byte) int {
	n := 0
	for _, b := range data {
		if b >= 32 && b <= 126 {
			n++
		}
	}
	return n
}

func hexPreview(data []byte, length, max int) string {
	if length > len(data) {
		length = len(data)
	}
	if length > max {
		return hex.EncodeToString(data[:max]) + "..."
	}
	return hex.EncodeToString(data[:length])
}
