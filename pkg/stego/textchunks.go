package stego

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/LegendeTestimony/sentinel-AI-sub000/pkg/models"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// textChunkFinding is one extracted textual metadata entry.
type textChunkFinding struct {
	keyword  string
	text     string
	location string
}

// extractTextChunks walks the PNG chunk stream and collects textual metadata
// chunks (tEXt, iTXt). The walk stops at IEND or on any malformed length so
// it can never loop or read past the buffer.
func extractTextChunks(data []byte) []textChunkFinding {
	if !bytes.HasPrefix(data, pngMagic) {
		return nil
	}
	var findings []textChunkFinding
	pos := len(pngMagic)
	for pos+12 <= len(data) {
		length := binary.BigEndian.Uint32(data[pos : pos+4])
		chunkType := string(data[pos+4 : pos+8])
		if length > uint32(len(data)) || pos+12+int(length) > len(data) {
			break
		}
		if chunkType == "IEND" {
			break
		}
		if chunkType == "tEXt" || chunkType == "iTXt" {
			payload := data[pos+8 : pos+8+int(length)]
			if f, ok := splitTextChunk(chunkType, payload, pos); ok {
				findings = append(findings, f)
			}
		}
		pos += 12 + int(length)
	}
	return findings
}

// splitTextChunk separates the keyword from the payload at the first NUL and
// keeps only fully printable text.
func splitTextChunk(chunkType string, payload []byte, offset int) (textChunkFinding, bool) {
	sep := bytes.IndexByte(payload, 0)
	if sep <= 0 || sep == len(payload)-1 {
		return textChunkFinding{}, false
	}
	keyword := string(payload[:sep])
	text := payload[sep+1:]
	if chunkType == "iTXt" {
		// iTXt carries compression flags and language tags between the
		// keyword and the text, each NUL-terminated.
		if last := bytes.LastIndexByte(text, 0); last >= 0 {
			text = text[last+1:]
		}
	}
	if len(text) == 0 || printableRatio(text) < 1.0 {
		return textChunkFinding{}, false
	}
	return textChunkFinding{
		keyword:  keyword,
		text:     string(text),
		location: fmt.Sprintf("%s chunk %q at offset %d", chunkType, keyword, offset),
	}, true
}

// textChunkTechnique summarizes extracted chunks as a detection technique.
func textChunkTechnique(findings []textChunkFinding) models.SteganographyTechnique {
	evidence := make([]string, 0, len(findings))
	for _, f := range findings {
		evidence = append(evidence, f.location)
	}
	return models.SteganographyTechnique{
		Name:        "text-chunk-metadata",
		Confidence:  70,
		Description: fmt.Sprintf("%d textual metadata chunk(s) carry readable payloads", len(findings)),
		Evidence:    evidence,
	}
}
