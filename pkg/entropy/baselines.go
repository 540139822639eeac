package entropy

// RiskProfile records what a file type can legitimately carry, used by
// downstream scanners to decide which checks are meaningful.
type RiskProfile struct {
	CanContainExecutable bool
	CanContainScripts    bool
	StegoRisk            string // low, medium, high
}

// Baseline is the expected entropy range for one file type. Static fact
// base, never mutated.
type Baseline struct {
	TypeID    string
	Min       float64
	Max       float64
	Typical   float64
	Rationale string
	Risk      RiskProfile
}

// Lookup returns the baseline for a type id, if one exists.
func Lookup(typeID string) (Baseline, bool) {
	b, ok := baselines[typeID]
	return b, ok
}

var baselines = map[string]Baseline{
	"jpeg": {TypeID: "jpeg", Min: 7.0, Max: 7.99, Typical: 7.6,
		Rationale: "DCT coefficients after Huffman coding are close to random",
		Risk:      RiskProfile{StegoRisk: "high"}},
	"png": {TypeID: "png", Min: 7.0, Max: 7.99, Typical: 7.8,
		Rationale: "DEFLATE-compressed image data approaches maximum entropy",
		Risk:      RiskProfile{StegoRisk: "high"}},
	"gif": {TypeID: "gif", Min: 6.5, Max: 7.99, Typical: 7.4,
		Rationale: "LZW compression with palette structure leaves some order",
		Risk:      RiskProfile{StegoRisk: "medium"}},
	"bmp": {TypeID: "bmp", Min: 0.5, Max: 7.5, Typical: 4.5,
		Rationale: "uncompressed pixels vary widely with image content",
		Risk:      RiskProfile{StegoRisk: "high"}},
	"tiff": {TypeID: "tiff", Min: 2.0, Max: 7.9, Typical: 6.0,
		Rationale: "compression is optional, so the range is wide",
		Risk:      RiskProfile{StegoRisk: "medium"}},
	"webp": {TypeID: "webp", Min: 7.0, Max: 7.99, Typical: 7.7,
		Rationale: "VP8 entropy coding produces near-random output",
		Risk:      RiskProfile{StegoRisk: "medium"}},
	"heic": {TypeID: "heic", Min: 7.0, Max: 7.99, Typical: 7.7,
		Rationale: "HEVC intra coding produces near-random output",
		Risk:      RiskProfile{StegoRisk: "medium"}},
	"avif": {TypeID: "avif", Min: 7.0, Max: 7.99, Typical: 7.7,
		Rationale: "AV1 entropy coding produces near-random output",
		Risk:      RiskProfile{StegoRisk: "medium"}},
	"mp3": {TypeID: "mp3", Min: 7.0, Max: 7.99, Typical: 7.6,
		Rationale: "perceptual audio coding removes most redundancy",
		Risk:      RiskProfile{StegoRisk: "medium"}},
	"flac": {TypeID: "flac", Min: 6.5, Max: 7.99, Typical: 7.3,
		Rationale: "lossless audio compression leaves slight structure",
		Risk:      RiskProfile{StegoRisk: "low"}},
	"wav": {TypeID: "wav", Min: 2.0, Max: 7.8, Typical: 6.0,
		Rationale: "raw PCM entropy depends entirely on the recording",
		Risk:      RiskProfile{StegoRisk: "high"}},
	"mp4": {TypeID: "mp4", Min: 7.0, Max: 7.99, Typical: 7.7,
		Rationale: "compressed A/V streams dominate the container",
		Risk:      RiskProfile{StegoRisk: "medium"}},
	"avi": {TypeID: "avi", Min: 6.0, Max: 7.99, Typical: 7.3,
		Rationale: "codec-dependent, usually well compressed",
		Risk:      RiskProfile{StegoRisk: "medium"}},
	"pdf": {TypeID: "pdf", Min: 6.5, Max: 7.99, Typical: 7.4,
		Rationale: "mixed text objects and compressed streams",
		Risk: RiskProfile{CanContainExecutable: true, CanContainScripts: true,
			StegoRisk: "medium"}},
	"zip": {TypeID: "zip", Min: 7.5, Max: 8.0, Typical: 7.9,
		Rationale: "DEFLATE output is nearly indistinguishable from random",
		Risk: RiskProfile{CanContainExecutable: true, CanContainScripts: true,
			StegoRisk: "low"}},
	"gzip": {TypeID: "gzip", Min: 7.5, Max: 8.0, Typical: 7.9,
		Rationale: "DEFLATE output is nearly indistinguishable from random",
		Risk:      RiskProfile{CanContainExecutable: true, StegoRisk: "low"}},
	"7z": {TypeID: "7z", Min: 7.7, Max: 8.0, Typical: 7.95,
		Rationale: "LZMA compresses tighter than DEFLATE",
		Risk:      RiskProfile{CanContainExecutable: true, StegoRisk: "low"}},
	"rar": {TypeID: "rar", Min: 7.5, Max: 8.0, Typical: 7.9,
		Rationale: "modern RAR compression approaches maximum entropy",
		Risk:      RiskProfile{CanContainExecutable: true, StegoRisk: "low"}},
	"exe": {TypeID: "exe", Min: 5.0, Max: 7.5, Typical: 6.4,
		Rationale: "code and import tables are structured; packed binaries run higher",
		Risk: RiskProfile{CanContainExecutable: true, CanContainScripts: true,
			StegoRisk: "low"}},
	"elf": {TypeID: "elf", Min: 4.5, Max: 7.5, Typical: 6.2,
		Rationale: "section tables and symbol data keep entropy moderate",
		Risk:      RiskProfile{CanContainExecutable: true, StegoRisk: "low"}},
	"html": {TypeID: "html", Min: 3.5, Max: 6.5, Typical: 5.0,
		Rationale: "markup is verbose, repetitive text",
		Risk:      RiskProfile{CanContainScripts: true, StegoRisk: "low"}},
	"xml": {TypeID: "xml", Min: 3.5, Max: 6.5, Typical: 5.0,
		Rationale: "markup is verbose, repetitive text",
		Risk:      RiskProfile{CanContainScripts: true, StegoRisk: "low"}},
	"script": {TypeID: "script", Min: 3.5, Max: 6.0, Typical: 4.8,
		Rationale: "source code is highly structured text",
		Risk:      RiskProfile{CanContainScripts: true, StegoRisk: "low"}},
}
