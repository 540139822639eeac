package identify

import "github.com/LegendeTestimony/sentinel-AI-sub000/pkg/models"

// validExtensions maps a type id to the extensions legitimately used for it.
// Static fact base, never mutated.
var validExtensions = map[string][]string{
	"jpeg":  {"jpg", "jpeg", "jpe", "jfif"},
	"png":   {"png"},
	"gif":   {"gif"},
	"bmp":   {"bmp", "dib"},
	"tiff":  {"tif", "tiff"},
	"ico":   {"ico"},
	"webp":  {"webp"},
	"heic":  {"heic", "heif"},
	"avif":  {"avif"},
	"cr3":   {"cr3"},
	"mp4":   {"mp4", "m4v"},
	"mov":   {"mov", "qt"},
	"m4a":   {"m4a"},
	"m4v":   {"m4v"},
	"3gp":   {"3gp", "3gpp"},
	"avi":   {"avi"},
	"ebml":  {"webm", "mkv"},
	"flv":   {"flv"},
	"wav":   {"wav"},
	"mp3":   {"mp3"},
	"flac":  {"flac"},
	"ogg":   {"ogg", "oga", "ogv"},
	"midi":  {"mid", "midi"},
	"pdf":   {"pdf"},
	"ps":    {"ps", "eps"},
	"rtf":   {"rtf"},
	"zip":   {"zip", "jar", "docx", "xlsx", "pptx", "apk", "epub"},
	"gzip":  {"gz", "tgz"},
	"tar":   {"tar"},
	"rar":   {"rar"},
	"7z":    {"7z"},
	"bzip2": {"bz2"},
	"xz":    {"xz"},
	"exe":   {"exe", "dll", "sys", "scr", "com"},
	"elf":   {"elf", "so", "bin"},
	"macho": {"dylib", "bin"},
	"class": {"class"},
	"wasm":  {"wasm"},
	"script": {"sh", "bash", "py", "pl", "rb"},
	"html":  {"html", "htm", "xhtml"},
	"xml":   {"xml", "svg", "xsl"},
	"woff":  {"woff"},
	"woff2": {"woff2"},
	"otf":   {"otf"},
	"ttf":   {"ttf"},
	"riff":  {"riff"},
}

// typeCategory mirrors the category declared in the signature and brand
// tables so extension-only lookups agree with content detection.
var typeCategory = map[string]models.Category{
	"jpeg": models.CategoryImage, "png": models.CategoryImage,
	"gif": models.CategoryImage, "bmp": models.CategoryImage,
	"tiff": models.CategoryImage, "ico": models.CategoryImage,
	"webp": models.CategoryImage, "heic": models.CategoryImage,
	"avif": models.CategoryImage, "cr3": models.CategoryImage,
	"mp4": models.CategoryVideo, "mov": models.CategoryVideo,
	"m4v": models.CategoryVideo, "3gp": models.CategoryVideo,
	"avi": models.CategoryVideo, "ebml": models.CategoryVideo,
	"flv": models.CategoryVideo,
	"wav": models.CategoryAudio, "mp3": models.CategoryAudio,
	"m4a": models.CategoryAudio, "flac": models.CategoryAudio,
	"ogg": models.CategoryAudio, "midi": models.CategoryAudio,
	"pdf": models.CategoryDocument, "ps": models.CategoryDocument,
	"rtf": models.CategoryDocument,
	"zip": models.CategoryArchive, "gzip": models.CategoryArchive,
	"tar": models.CategoryArchive, "rar": models.CategoryArchive,
	"7z": models.CategoryArchive, "bzip2": models.CategoryArchive,
	"xz": models.CategoryArchive,
	"exe": models.CategoryExecutable, "elf": models.CategoryExecutable,
	"macho": models.CategoryExecutable, "class": models.CategoryExecutable,
	"wasm": models.CategoryExecutable,
	"script": models.CategoryScript, "html": models.CategoryScript,
	"xml": models.CategoryScript,
	"woff": models.CategoryFont, "woff2": models.CategoryFont,
	"otf": models.CategoryFont, "ttf": models.CategoryFont,
}

// descriptions supplies the one-line human description per type id.
var descriptions = map[string]string{
	"jpeg":    "JPEG image",
	"png":     "PNG image",
	"gif":     "GIF image",
	"bmp":     "Windows bitmap image",
	"tiff":    "TIFF image",
	"ico":     "Windows icon",
	"webp":    "WebP image",
	"heic":    "HEIC/HEIF image container",
	"avif":    "AVIF image container",
	"mp4":     "MPEG-4 media container",
	"mov":     "QuickTime movie",
	"m4a":     "MPEG-4 audio",
	"m4v":     "MPEG-4 video",
	"3gp":     "3GPP media container",
	"avi":     "AVI video container",
	"ebml":    "Matroska/WebM media container",
	"flv":     "Flash video",
	"wav":     "WAV audio",
	"mp3":     "MP3 audio",
	"flac":    "FLAC lossless audio",
	"ogg":     "Ogg media container",
	"midi":    "MIDI sequence",
	"pdf":     "PDF document",
	"ps":      "PostScript document",
	"rtf":     "Rich Text Format document",
	"zip":     "ZIP archive",
	"gzip":    "gzip compressed data",
	"tar":     "POSIX tar archive",
	"rar":     "RAR archive",
	"7z":      "7-Zip archive",
	"bzip2":   "bzip2 compressed data",
	"xz":      "XZ compressed data",
	"exe":     "Windows PE executable",
	"elf":     "ELF executable",
	"macho":   "Mach-O executable",
	"class":   "Java class file",
	"wasm":    "WebAssembly module",
	"script":  "interpreter script",
	"html":    "HTML document",
	"xml":     "XML document",
	"unknown": "unrecognized data",
}
