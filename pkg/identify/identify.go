// Package identify combines signature matching, container resolution and the
// caller-claimed filename extension into a single typed identification. The
// filename is used for extension extraction only and is never trusted for
// type determination.
package identify

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/LegendeTestimony/sentinel-AI-sub000/pkg/container"
	"github.com/LegendeTestimony/sentinel-AI-sub000/pkg/models"
	"github.com/LegendeTestimony/sentinel-AI-sub000/pkg/signature"
)

const (
	// Blend weights when a container resolution exists.
	signatureShare = 30
	containerShare = 70

	extensionBonus = 5
)

// Identify produces the file identification result for one buffer. It never
// fails: an unrecognized buffer yields the "unknown" type with confidence 0.
func Identify(data []byte, filename string) models.FileIdentificationResult {
	claimed := claimedExtension(filename)

	matches := signature.Scan(data)
	if len(matches) == 0 {
		return models.FileIdentificationResult{
			TypeID:           "unknown",
			MIME:             "application/octet-stream",
			Category:         models.CategoryUnknown,
			ClaimedExtension: claimed,
			MismatchSeverity: models.MismatchNone,
			Description:      describe("unknown"),
			SecurityNotes: []string{
				"no known signature matched; file type could not be determined",
			},
		}
	}

	top := matches[0].Entry
	result := models.FileIdentificationResult{
		TypeID:           top.TypeID,
		MIME:             top.MIME,
		Category:         top.Category,
		Confidence:       top.Confidence,
		Breakdown:        models.ConfidenceBreakdown{Signature: top.Confidence},
		ClaimedExtension: claimed,
		MismatchSeverity: models.MismatchNone,
	}

	var res container.Resolution
	switch top.Container {
	case signature.ContainerBox:
		res = container.ResolveBox(data)
	case signature.ContainerChunk:
		res = container.ResolveChunk(data)
	}
	if res.Resolved {
		result.TypeID = res.TypeID
		result.MIME = res.MIME
		result.Category = res.Category
		// Divide once so the blend does not lose a point to truncation.
		blended := (signatureShare*top.Confidence + containerShare*res.Confidence) / 100
		result.Breakdown.Signature = signatureShare * top.Confidence / 100
		result.Breakdown.Container = blended - result.Breakdown.Signature
		result.Confidence = blended
	}

	applyExtensionCheck(&result)
	result.Description = describe(result.TypeID)
	return result
}

// claimedExtension extracts the lowercased extension without the dot.
func claimedExtension(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return strings.TrimPrefix(ext, ".")
}

func applyExtensionCheck(r *models.FileIdentificationResult) {
	if r.ClaimedExtension == "" {
		// No claim made; nothing to agree or disagree with.
		return
	}
	for _, valid := range validExtensions[r.TypeID] {
		if valid == r.ClaimedExtension {
			r.Breakdown.Extension = extensionBonus
			r.Confidence += extensionBonus
			if r.Confidence > 100 {
				r.Confidence = 100
			}
			return
		}
	}

	r.ExtensionMismatch = true
	r.MismatchSeverity = mismatchSeverity(r.TypeID, r.Category, r.ClaimedExtension)
	switch r.MismatchSeverity {
	case models.MismatchCritical:
		r.SecurityNotes = append(r.SecurityNotes, fmt.Sprintf(
			"file content is %s but the name claims .%s; this disguise pattern is a strong attack signal",
			r.TypeID, r.ClaimedExtension))
	case models.MismatchSuspicious:
		r.SecurityNotes = append(r.SecurityNotes, fmt.Sprintf(
			"detected type %s is incompatible with the claimed .%s extension",
			r.TypeID, r.ClaimedExtension))
	}
}

// mismatchSeverity implements the severity decision table. Unknown detected
// types are never penalized: ambiguity is not maliciousness.
func mismatchSeverity(typeID string, category models.Category, ext string) models.MismatchSeverity {
	if typeID == "unknown" {
		return models.MismatchNone
	}
	extCat := extensionCategory(ext)

	switch category {
	case models.CategoryExecutable:
		if extCat != models.CategoryExecutable {
			return models.MismatchCritical
		}
	case models.CategoryScript:
		if extCat == models.CategoryDocument || extCat == models.CategoryImage {
			return models.MismatchCritical
		}
	case models.CategoryImage:
		switch extCat {
		case models.CategoryExecutable, models.CategoryScript,
			models.CategoryArchive, models.CategoryDocument:
			return models.MismatchSuspicious
		}
	}
	return models.MismatchMinor
}

// extensionCategory reports the category an extension conventionally belongs
// to, or CategoryUnknown for unrecognized extensions.
func extensionCategory(ext string) models.Category {
	for typeID, exts := range validExtensions {
		for _, e := range exts {
			if e == ext {
				return typeCategory[typeID]
			}
		}
	}
	return models.CategoryUnknown
}

func describe(typeID string) string {
	if d, ok := descriptions[typeID]; ok {
		return d
	}
	return typeID + " file"
}
