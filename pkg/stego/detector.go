// Package stego detects and, where possible, extracts hidden content from a
// byte buffer whose type has already been identified. Techniques accumulate
// independently; several may fire for the same buffer.
package stego

import (
	"fmt"
	"strings"

	"github.com/LegendeTestimony/sentinel-AI-sub000/pkg/models"
)

// Detect runs the type-specific technique set plus the generic checks and
// aggregates the outcome. It never fails; malformed carriers simply produce
// fewer findings.
func Detect(data []byte, typeID string, cfg Thresholds) models.SteganographyResult {
	var techniques []models.SteganographyTechnique
	extracted := &models.ExtractedHiddenData{}

	if finding := detectAppended(data, typeID, cfg); finding != nil {
		techniques = append(techniques, finding.technique)
		extracted.TotalBytes += finding.byteCount
		extracted.Locations = append(extracted.Locations,
			fmt.Sprintf("appended data at offset %d", finding.offset))
		if finding.message != "" {
			extracted.Messages = append(extracted.Messages, finding.message)
		} else if finding.rawSample != "" {
			extracted.RawSamples = append(extracted.RawSamples, finding.rawSample)
		}
	}

	if typeID == "png" {
		if chunks := extractTextChunks(data); len(chunks) > 0 {
			techniques = append(techniques, textChunkTechnique(chunks))
			for _, c := range chunks {
				extracted.Messages = append(extracted.Messages, c.text)
				extracted.Locations = append(extracted.Locations, c.location)
				extracted.TotalBytes += len(c.text)
			}
		}
	}

	if typeID == "png" || typeID == "bmp" {
		if technique, msg := extractLSB(data, typeID, cfg); technique != nil {
			techniques = append(techniques, *technique)
			extracted.Messages = append(extracted.Messages, msg)
			extracted.Locations = append(extracted.Locations, "pixel data bit plane")
			extracted.TotalBytes += len(msg)
		}
	}

	if isImageType(typeID) {
		if technique := chiSquareCheck(data, cfg); technique != nil {
			techniques = append(techniques, *technique)
		}
	}
	if technique := entropyWindowScan(data, typeID, cfg); technique != nil {
		techniques = append(techniques, *technique)
	}

	result := models.SteganographyResult{Techniques: techniques}
	for _, t := range techniques {
		if t.Confidence > result.Confidence {
			result.Confidence = t.Confidence
		}
	}
	result.Detected = len(techniques) > 0
	result.Summary = summarize(techniques)
	if len(extracted.Messages) > 0 || len(extracted.RawSamples) > 0 || extracted.TotalBytes > 0 {
		result.Extracted = extracted
	}
	return result
}

func isImageType(typeID string) bool {
	switch typeID {
	case "jpeg", "png", "gif", "bmp", "tiff", "webp":
		return true
	}
	return false
}

func summarize(techniques []models.SteganographyTechnique) string {
	if len(techniques) == 0 {
		return "no steganographic indicators found"
	}
	names := make([]string, len(techniques))
	for i, t := range techniques {
		names[i] = t.Name
	}
	return fmt.Sprintf("%d technique(s) fired: %s", len(techniques), strings.Join(names, ", "))
}
