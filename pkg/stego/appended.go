package stego

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"unicode/utf8"

	"github.com/LegendeTestimony/sentinel-AI-sub000/pkg/models"
)

var (
	jpegEOI     = []byte{0xFF, 0xD9}
	pngIENDType = []byte("IEND")
)

// appendedFinding carries one appended-data detection plus whatever content
// could be recovered from it.
type appendedFinding struct {
	technique models.SteganographyTechnique
	message   string
	rawSample string
	offset    int
	byteCount int
}

// detectAppended looks for data after the format's end-of-content marker.
// Only the region after the last occurrence of the marker counts; trailing
// zero padding is ignored.
func detectAppended(data []byte, typeID string, cfg Thresholds) *appendedFinding {
	var end int
	switch typeID {
	case "jpeg":
		idx := bytes.LastIndex(data, jpegEOI)
		if idx < 0 {
			return nil
		}
		end = idx + len(jpegEOI)
	case "png":
		idx := bytes.LastIndex(data, pngIENDType)
		if idx < 0 {
			return nil
		}
		// IEND chunk: 4-byte type tag followed by a 4-byte CRC.
		end = idx + len(pngIENDType) + 4
	default:
		return nil
	}
	if end >= len(data) {
		return nil
	}

	trailing := bytes.TrimRight(data[end:], "\x00")
	if len(trailing) < cfg.MinAppendedBytes {
		return nil
	}

	finding := &appendedFinding{
		offset:    end,
		byteCount: len(trailing),
		rawSample: hexPreview(trailing, cfg.PreviewBytes),
	}
	finding.technique = models.SteganographyTechnique{
		Name:       "appended-data",
		Confidence: 85,
		Description: fmt.Sprintf("%d bytes of data appended after the %s end marker",
			len(trailing), typeID),
		Evidence: []string{
			fmt.Sprintf("end marker terminates at offset %d, file continues for %d bytes", end, len(data)-end),
			"trailing region is not zero padding",
		},
	}
	if msg, ok := decodeText(trailing, cfg.PrintableRatio); ok {
		finding.message = msg
		finding.technique.Confidence = 95
		finding.technique.Evidence = append(finding.technique.Evidence,
			"appended region decodes to readable text")
	}
	return finding
}

// decodeText attempts a best-effort text decode: UTF-8 first, then a
// single-byte fallback, each requiring the configured printable ratio over a
// sample of the data.
func decodeText(data []byte, minRatio float64) (string, bool) {
	sample := data
	if len(sample) > 512 {
		sample = sample[:512]
	}
	if utf8.Valid(sample) && printableRatio(sample) >= minRatio {
		return string(bytes.TrimRight(data, "\x00")), true
	}
	// Single-byte fallback: map each byte to its Latin-1 rune.
	if printableRatio(sample) >= minRatio {
		runes := make([]rune, 0, len(data))
		for _, b := range data {
			runes = append(runes, rune(b))
		}
		return string(runes), true
	}
	return "", false
}

func printableRatio(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}
	printable := 0
	for _, b := range data {
		if (b >= 32 && b <= 126) || b == '\n' || b == '\r' || b == '\t' {
			printable++
		}
	}
	return float64(printable) / float64(len(data))
}

func hexPreview(data []byte, max int) string {
	if len(data) > max {
		return hex.EncodeToString(data[:max]) + "..."
	}
	return hex.EncodeToString(data)
}
