package signature

import "github.com/LegendeTestimony/sentinel-AI-sub000/pkg/models"

// Table is the static signature fact base, ordered roughly by specificity.
// It is never mutated after initialization and is safe to share across
// concurrent scans.
var Table = []Entry{
	// Images
	{TypeID: "png", MIME: "image/png", Category: models.CategoryImage,
		Pattern: []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, Confidence: 95},
	{TypeID: "jpeg", MIME: "image/jpeg", Category: models.CategoryImage,
		Pattern: []byte{0xFF, 0xD8, 0xFF}, Confidence: 90},
	{TypeID: "gif", MIME: "image/gif", Category: models.CategoryImage,
		Pattern: []byte("GIF87a"), Confidence: 92},
	{TypeID: "gif", MIME: "image/gif", Category: models.CategoryImage,
		Pattern: []byte("GIF89a"), Confidence: 92},
	{TypeID: "bmp", MIME: "image/bmp", Category: models.CategoryImage,
		Pattern: []byte("BM"), Confidence: 60},
	{TypeID: "tiff", MIME: "image/tiff", Category: models.CategoryImage,
		Pattern: []byte{0x49, 0x49, 0x2A, 0x00}, Confidence: 90},
	{TypeID: "tiff", MIME: "image/tiff", Category: models.CategoryImage,
		Pattern: []byte{0x4D, 0x4D, 0x00, 0x2A}, Confidence: 90},
	{TypeID: "ico", MIME: "image/x-icon", Category: models.CategoryImage,
		Pattern: []byte{0x00, 0x00, 0x01, 0x00}, Confidence: 55},

	// Container families. The ftyp tag at offset 4 is shared by MP4, MOV,
	// HEIC, AVIF and friends; RIFF wraps WAV, AVI and WebP. Both need brand
	// or subtype resolution before a concrete type is known.
	{TypeID: "mp4", MIME: "video/mp4", Category: models.CategoryVideo,
		Pattern: []byte("ftyp"), Offset: 4, Confidence: 85, Container: ContainerBox},
	{TypeID: "riff", MIME: "application/octet-stream", Category: models.CategoryUnknown,
		Pattern: []byte("RIFF"), Confidence: 70, Container: ContainerChunk},

	// Documents
	{TypeID: "pdf", MIME: "application/pdf", Category: models.CategoryDocument,
		Pattern: []byte("%PDF-"), Confidence: 92},
	{TypeID: "ps", MIME: "application/postscript", Category: models.CategoryDocument,
		Pattern: []byte("%!PS"), Confidence: 85},
	{TypeID: "rtf", MIME: "application/rtf", Category: models.CategoryDocument,
		Pattern: []byte("{\\rtf"), Confidence: 88},

	// Archives
	{TypeID: "zip", MIME: "application/zip", Category: models.CategoryArchive,
		Pattern: []byte{0x50, 0x4B, 0x03, 0x04}, Confidence: 90},
	{TypeID: "zip", MIME: "application/zip", Category: models.CategoryArchive,
		Pattern: []byte{0x50, 0x4B, 0x05, 0x06}, Confidence: 85}, // empty archive
	{TypeID: "zip", MIME: "application/zip", Category: models.CategoryArchive,
		Pattern: []byte{0x50, 0x4B, 0x07, 0x08}, Confidence: 85}, // spanned archive
	{TypeID: "gzip", MIME: "application/gzip", Category: models.CategoryArchive,
		Pattern: []byte{0x1F, 0x8B}, Confidence: 80},
	{TypeID: "tar", MIME: "application/x-tar", Category: models.CategoryArchive,
		Pattern: []byte("ustar"), Offset: 257, Confidence: 90},
	{TypeID: "rar", MIME: "application/x-rar-compressed", Category: models.CategoryArchive,
		Pattern: []byte("Rar!\x1a\x07\x00"), Confidence: 92},
	{TypeID: "rar", MIME: "application/x-rar-compressed", Category: models.CategoryArchive,
		Pattern: []byte("Rar!\x1a\x07\x01\x00"), Confidence: 92},
	{TypeID: "7z", MIME: "application/x-7z-compressed", Category: models.CategoryArchive,
		Pattern: []byte{'7', 'z', 0xBC, 0xAF, 0x27, 0x1C}, Confidence: 93},
	{TypeID: "bzip2", MIME: "application/x-bzip2", Category: models.CategoryArchive,
		Pattern: []byte("BZh"), Confidence: 80},
	{TypeID: "xz", MIME: "application/x-xz", Category: models.CategoryArchive,
		Pattern: []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}, Confidence: 93},

	// Audio
	{TypeID: "mp3", MIME: "audio/mpeg", Category: models.CategoryAudio,
		Pattern: []byte("ID3"), Confidence: 85},
	// MP3 frame sync: 11 set bits, so only the top bits are significant.
	{TypeID: "mp3", MIME: "audio/mpeg", Category: models.CategoryAudio,
		Pattern: []byte{0xFF, 0xE0}, Mask: []byte{0xFF, 0xE0}, Confidence: 50},
	{TypeID: "flac", MIME: "audio/flac", Category: models.CategoryAudio,
		Pattern: []byte("fLaC"), Confidence: 92},
	{TypeID: "ogg", MIME: "audio/ogg", Category: models.CategoryAudio,
		Pattern: []byte("OggS"), Confidence: 90},
	{TypeID: "midi", MIME: "audio/midi", Category: models.CategoryAudio,
		Pattern: []byte("MThd"), Confidence: 90},

	// Video
	{TypeID: "ebml", MIME: "video/webm", Category: models.CategoryVideo,
		Pattern: []byte{0x1A, 0x45, 0xDF, 0xA3}, Confidence: 88},
	{TypeID: "flv", MIME: "video/x-flv", Category: models.CategoryVideo,
		Pattern: []byte("FLV"), Confidence: 88},

	// Executables
	{TypeID: "exe", MIME: "application/x-msdownload", Category: models.CategoryExecutable,
		Pattern: []byte("MZ"), Confidence: 80},
	{TypeID: "elf", MIME: "application/x-executable", Category: models.CategoryExecutable,
		Pattern: []byte{0x7F, 'E', 'L', 'F'}, Confidence: 95},
	{TypeID: "macho", MIME: "application/x-mach-binary", Category: models.CategoryExecutable,
		Pattern: []byte{0xCF, 0xFA, 0xED, 0xFE}, Confidence: 93},
	{TypeID: "macho", MIME: "application/x-mach-binary", Category: models.CategoryExecutable,
		Pattern: []byte{0xCE, 0xFA, 0xED, 0xFE}, Confidence: 93},
	{TypeID: "class", MIME: "application/java-vm", Category: models.CategoryExecutable,
		Pattern: []byte{0xCA, 0xFE, 0xBA, 0xBE}, Confidence: 90},
	{TypeID: "wasm", MIME: "application/wasm", Category: models.CategoryExecutable,
		Pattern: []byte{0x00, 'a', 's', 'm'}, Confidence: 92},

	// Scripts and markup
	{TypeID: "script", MIME: "text/x-shellscript", Category: models.CategoryScript,
		Pattern: []byte("#!"), Confidence: 75},
	{TypeID: "html", MIME: "text/html", Category: models.CategoryScript,
		Pattern: []byte("<!DOCTYPE html"), Confidence: 85},
	{TypeID: "html", MIME: "text/html", Category: models.CategoryScript,
		Pattern: []byte("<!doctype html"), Confidence: 85},
	{TypeID: "html", MIME: "text/html", Category: models.CategoryScript,
		Pattern: []byte("<html"), Confidence: 80},
	{TypeID: "xml", MIME: "application/xml", Category: models.CategoryScript,
		Pattern: []byte("<?xml"), Confidence: 82},

	// Fonts
	{TypeID: "woff", MIME: "font/woff", Category: models.CategoryFont,
		Pattern: []byte("wOFF"), Confidence: 90},
	{TypeID: "woff2", MIME: "font/woff2", Category: models.CategoryFont,
		Pattern: []byte("wOF2"), Confidence: 90},
	{TypeID: "otf", MIME: "font/otf", Category: models.CategoryFont,
		Pattern: []byte("OTTO"), Confidence: 90},
	{TypeID: "ttf", MIME: "font/ttf", Category: models.CategoryFont,
		Pattern: []byte{0x00, 0x01, 0x00, 0x00}, Confidence: 45},
}
