// Package container disambiguates container-format signature hits into
// concrete types. ISO-BMFF files (MP4, MOV, HEIC, AVIF, ...) share the ftyp
// tag at offset 4 and are told apart by their brand codes; RIFF files (WAV,
// AVI, WebP) share the RIFF tag and are told apart by a subtype at offset 8.
// All parsing degrades to an unresolved result on malformed input.
package container

import (
	"encoding/binary"

	"github.com/LegendeTestimony/sentinel-AI-sub000/pkg/models"
)

const (
	ftypHeaderSize = 8  // 4-byte size + 4-byte type tag
	ftypBrandStart = 16 // compatible brands follow major brand + minor version
	maxTopBoxes    = 10
)

// Box is one parsed size-prefixed record from a box-structured container.
type Box struct {
	Size   uint32
	Type   string
	Offset int
}

// Resolution is the outcome of container disambiguation. Resolved is false
// when the wrapper structure is absent or malformed; confidence is then zero.
type Resolution struct {
	Resolved     bool
	TypeID       string
	MIME         string
	Category     models.Category
	Confidence   int
	MajorBrand   string
	Boxes        []Box
	HasMetadata  bool
	HasMediaData bool
}

type brandInfo struct {
	typeID   string
	mime     string
	category models.Category
}

// brandTable maps ISO-BMFF brand codes to concrete types. Static fact base.
var brandTable = map[string]brandInfo{
	"heic": {"heic", "image/heic", models.CategoryImage},
	"heix": {"heic", "image/heic", models.CategoryImage},
	"hevc": {"heic", "image/heic", models.CategoryImage},
	"mif1": {"heic", "image/heic", models.CategoryImage},
	"msf1": {"heic", "image/heic", models.CategoryImage},
	"avif": {"avif", "image/avif", models.CategoryImage},
	"avis": {"avif", "image/avif", models.CategoryImage},
	"isom": {"mp4", "video/mp4", models.CategoryVideo},
	"iso2": {"mp4", "video/mp4", models.CategoryVideo},
	"iso4": {"mp4", "video/mp4", models.CategoryVideo},
	"iso5": {"mp4", "video/mp4", models.CategoryVideo},
	"iso6": {"mp4", "video/mp4", models.CategoryVideo},
	"mp41": {"mp4", "video/mp4", models.CategoryVideo},
	"mp42": {"mp4", "video/mp4", models.CategoryVideo},
	"mmp4": {"mp4", "video/mp4", models.CategoryVideo},
	"dash": {"mp4", "video/mp4", models.CategoryVideo},
	"qt  ": {"mov", "video/quicktime", models.CategoryVideo},
	"M4A ": {"m4a", "audio/mp4", models.CategoryAudio},
	"M4V ": {"m4v", "video/x-m4v", models.CategoryVideo},
	"3gp4": {"3gp", "video/3gpp", models.CategoryVideo},
	"3gp5": {"3gp", "video/3gpp", models.CategoryVideo},
	"3gp6": {"3gp", "video/3gpp", models.CategoryVideo},
	"crx ": {"cr3", "image/x-canon-cr3", models.CategoryImage},
}

// riffTable maps RIFF subtype codes to concrete types.
var riffTable = map[string]brandInfo{
	"WAVE": {"wav", "audio/wav", models.CategoryAudio},
	"AVI ": {"avi", "video/x-msvideo", models.CategoryVideo},
	"WEBP": {"webp", "image/webp", models.CategoryImage},
}

// ResolveBox resolves an ISO-BMFF buffer to a concrete type. The ftyp box
// must sit at offset 0; an invalid declared size or missing wrapper yields
// an unresolved zero-confidence result.
func ResolveBox(data []byte) Resolution {
	if len(data) < ftypBrandStart {
		return Resolution{}
	}
	boxSize := binary.BigEndian.Uint32(data[0:4])
	if string(data[4:8]) != "ftyp" {
		return Resolution{}
	}
	if boxSize < ftypBrandStart || int(boxSize) > len(data) {
		return Resolution{}
	}

	res := Resolution{Resolved: true, Confidence: 50}
	wellFormed := boxSize%4 == 0
	if wellFormed {
		res.Confidence += 20
	}

	// Major brand directly after the box header, then a 4-byte minor
	// version, then compatible brands filling the rest of the box.
	res.MajorBrand = string(data[ftypHeaderSize : ftypHeaderSize+4])
	info, known := brandTable[res.MajorBrand]
	if !known {
		for off := ftypBrandStart; off+4 <= int(boxSize); off += 4 {
			if compat, ok := brandTable[string(data[off:off+4])]; ok {
				info, known = compat, true
				break
			}
		}
	}
	if known {
		res.TypeID = info.typeID
		res.MIME = info.mime
		res.Category = info.category
		res.Confidence += 15
	} else {
		// Valid ftyp wrapper with an unrecognized brand: report the
		// generic family type without the brand bonus.
		res.TypeID = "mp4"
		res.MIME = "video/mp4"
		res.Category = models.CategoryVideo
	}

	res.Boxes = walkBoxes(data)
	for _, box := range res.Boxes {
		switch box.Type {
		case "moov", "meta":
			res.HasMetadata = true
		case "mdat":
			res.HasMediaData = true
		}
	}
	if res.HasMetadata {
		res.Confidence += 10
	}
	if res.HasMediaData {
		res.Confidence += 5
	}
	if res.Confidence > 100 {
		res.Confidence = 100
	}
	return res
}

// walkBoxes parses up to maxTopBoxes top-level boxes. It stops on a box that
// overruns the buffer, a size-zero box (which by convention extends to the
// end of the file), or the mdat box.
func walkBoxes(data []byte) []Box {
	var boxes []Box
	offset := 0
	for len(boxes) < maxTopBoxes && offset+ftypHeaderSize <= len(data) {
		size := binary.BigEndian.Uint32(data[offset : offset+4])
		boxType := string(data[offset+4 : offset+8])
		box := Box{Size: size, Type: boxType, Offset: offset}
		if size == 0 {
			boxes = append(boxes, box)
			break
		}
		if size < ftypHeaderSize || offset+int(size) > len(data) {
			break
		}
		boxes = append(boxes, box)
		if boxType == "mdat" {
			break
		}
		offset += int(size)
	}
	return boxes
}

// ResolveChunk resolves a RIFF-style buffer by its subtype at offset 8.
func ResolveChunk(data []byte) Resolution {
	if len(data) < 12 || string(data[0:4]) != "RIFF" {
		return Resolution{}
	}
	res := Resolution{Resolved: true, Confidence: 50}

	declared := binary.LittleEndian.Uint32(data[4:8])
	if declared >= 4 && int(declared) <= len(data) {
		res.Confidence += 20
	}

	sub := string(data[8:12])
	res.MajorBrand = sub
	if info, ok := riffTable[sub]; ok {
		res.TypeID = info.typeID
		res.MIME = info.mime
		res.Category = info.category
		res.Confidence += 15
	} else {
		res.TypeID = "riff"
		res.MIME = "application/octet-stream"
		res.Category = models.CategoryUnknown
	}
	if res.Confidence > 100 {
		res.Confidence = 100
	}
	return res
}
