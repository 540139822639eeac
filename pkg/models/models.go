// Package models defines the result snapshot types produced by the forensic
// analysis pipeline. Every type here is created fresh per analysis call and
// owned by the caller; none retain a reference to the input buffer.
package models

// Category classifies a file type into a broad media kind.
type Category string

const (
	CategoryImage      Category = "image"
	CategoryVideo      Category = "video"
	CategoryAudio      Category = "audio"
	CategoryDocument   Category = "document"
	CategoryArchive    Category = "archive"
	CategoryExecutable Category = "executable"
	CategoryScript     Category = "script"
	CategoryFont       Category = "font"
	CategoryUnknown    Category = "unknown"
)

// MismatchSeverity grades how alarming an extension/content disagreement is.
type MismatchSeverity string

const (
	MismatchNone       MismatchSeverity = "none"
	MismatchMinor      MismatchSeverity = "minor"
	MismatchSuspicious MismatchSeverity = "suspicious"
	MismatchCritical   MismatchSeverity = "critical"
)

// EntropyStatus classifies measured entropy against a per-type baseline.
type EntropyStatus string

const (
	EntropyNormal  EntropyStatus = "normal"
	EntropyHigh    EntropyStatus = "high"
	EntropyLow     EntropyStatus = "low"
	EntropyUnknown EntropyStatus = "unknown"
)

// RiskLevel is the final threat verdict tier.
type RiskLevel string

const (
	RiskSafe     RiskLevel = "safe"
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// PolyglotRisk tiers the danger of a multi-format file.
type PolyglotRisk string

const (
	PolyglotLow      PolyglotRisk = "low"
	PolyglotMedium   PolyglotRisk = "medium"
	PolyglotHigh     PolyglotRisk = "high"
	PolyglotCritical PolyglotRisk = "critical"
)

// PayloadKind names the class of an embedded payload finding.
type PayloadKind string

const (
	PayloadShellcode     PayloadKind = "shellcode"
	PayloadExecutable    PayloadKind = "executable"
	PayloadBase64        PayloadKind = "base64-encoded"
	PayloadEncryptedBlob PayloadKind = "encrypted-blob"
	PayloadScript        PayloadKind = "script"
)

// IndicatorCategory groups threat indicators by the evidence they rest on.
type IndicatorCategory string

const (
	IndicatorHeader    IndicatorCategory = "header"
	IndicatorEntropy   IndicatorCategory = "entropy"
	IndicatorStructure IndicatorCategory = "structure"
	IndicatorContent   IndicatorCategory = "content"
	IndicatorBehavior  IndicatorCategory = "behavior"
)

// ConfidenceBreakdown records how each evidence source contributed to the
// final identification confidence.
type ConfidenceBreakdown struct {
	Signature int `json:"signature"`
	Container int `json:"container"`
	Extension int `json:"extension"`
}

// FileIdentificationResult is the single typed outcome of multi-layer file
// identification. Immutable after construction.
type FileIdentificationResult struct {
	TypeID            string              `json:"typeId"`
	MIME              string              `json:"mime"`
	Category          Category            `json:"category"`
	Confidence        int                 `json:"confidence"` // 0-100
	Breakdown         ConfidenceBreakdown `json:"breakdown"`
	ClaimedExtension  string              `json:"claimedExtension"`
	ExtensionMismatch bool                `json:"extensionMismatch"`
	MismatchSeverity  MismatchSeverity    `json:"mismatchSeverity"`
	Description       string              `json:"description"`
	SecurityNotes     []string            `json:"securityNotes,omitempty"`
}

// EntropyClassification reports how a measured Shannon entropy value compares
// to the identified type's expected range.
type EntropyClassification struct {
	HasBaseline bool          `json:"hasBaseline"`
	Status      EntropyStatus `json:"status"`
	Value       float64       `json:"value"`
	Deviation   float64       `json:"deviation"`
	Explanation string        `json:"explanation"`
	Suspicious  bool          `json:"suspicious"`
}

// SteganographyTechnique describes one detection technique that fired.
type SteganographyTechnique struct {
	Name        string   `json:"name"`
	Confidence  int      `json:"confidence"` // 0-100
	Description string   `json:"description"`
	Evidence    []string `json:"evidence,omitempty"`
}

// ExtractedHiddenData holds content actually recovered from a carrier file.
type ExtractedHiddenData struct {
	Messages   []string `json:"messages,omitempty"`
	RawSamples []string `json:"rawSamples,omitempty"` // bounded hex previews
	TotalBytes int      `json:"totalBytes"`
	Locations  []string `json:"locations,omitempty"`
}

// SteganographyResult aggregates all steganography findings for one buffer.
type SteganographyResult struct {
	Detected   bool                     `json:"detected"`
	Confidence int                      `json:"confidence"` // max across techniques
	Techniques []SteganographyTechnique `json:"techniques,omitempty"`
	Summary    string                   `json:"summary"`
	Extracted  *ExtractedHiddenData     `json:"extracted,omitempty"`
}

// PolyglotResult reports whether a buffer is structurally valid as more than
// one file format.
type PolyglotResult struct {
	IsPolyglot     bool         `json:"isPolyglot"`
	Formats        []string     `json:"formats,omitempty"`
	Confidence     int          `json:"confidence"`
	Risk           PolyglotRisk `json:"risk"`
	DangerousPairs []string     `json:"dangerousPairs,omitempty"`
}

// EmbeddedPayload is a single suspicious region found by the payload hunter.
type EmbeddedPayload struct {
	Kind        PayloadKind `json:"kind"`
	Offset      int         `json:"offset"`
	Length      int         `json:"length"`
	Confidence  int         `json:"confidence"`
	Preview     string      `json:"preview"` // bounded hex preview
	Description string      `json:"description"`
}

// PayloadAnalysis aggregates embedded payload findings.
type PayloadAnalysis struct {
	Payloads []EmbeddedPayload `json:"payloads,omitempty"`
	Risk     int               `json:"risk"` // 0-100
	Summary  string            `json:"summary"`
}

// ThreatIndicator is one weighted piece of evidence feeding the threat score.
// Negative weights are evidence of benignity.
type ThreatIndicator struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Category    IndicatorCategory `json:"category"`
	Weight      int               `json:"weight"`     // -100..+100
	Confidence  int               `json:"confidence"` // 0-100
	Description string            `json:"description"`
}

// ThreatScore is the final weighted risk assessment.
type ThreatScore struct {
	Raw         float64           `json:"raw"`
	Score       int               `json:"score"` // normalized 0-100
	Level       RiskLevel         `json:"level"`
	Indicators  []ThreatIndicator `json:"indicators,omitempty"`
	Explanation string            `json:"explanation"`
}
