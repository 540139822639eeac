package threat

import (
	"strings"
	"testing"

	"github.com/LegendeTestimony/sentinel-AI-sub000/pkg/models"
)

func benignInput() Input {
	return Input{
		Identification: models.FileIdentificationResult{
			TypeID: "png", MIME: "image/png", Category: models.CategoryImage,
			Confidence: 100, ClaimedExtension: "png",
		},
		Entropy: models.EntropyClassification{
			HasBaseline: true, Status: models.EntropyNormal, Value: 7.8,
			Explanation: "entropy within range",
		},
		Filename: "photo.png",
	}
}

func TestScoreBenignFile(t *testing.T) {
	got := Score(benignInput())
	if got.Level != models.RiskSafe {
		t.Errorf("level = %s (score %d), want safe", got.Level, got.Score)
	}
	if got.Raw >= 0 {
		t.Errorf("raw = %f, want negative for benign evidence", got.Raw)
	}
	for _, ind := range got.Indicators {
		if ind.Weight > 0 {
			t.Errorf("unexpected risk indicator %s on a benign file", ind.ID)
		}
	}
	if !strings.Contains(got.Explanation, "no risk indicators") {
		t.Errorf("explanation = %q", got.Explanation)
	}
}

func TestScoreDisguisedExecutable(t *testing.T) {
	in := Input{
		Identification: models.FileIdentificationResult{
			TypeID: "exe", Category: models.CategoryExecutable, Confidence: 80,
			ClaimedExtension: "jpg", ExtensionMismatch: true,
			MismatchSeverity: models.MismatchCritical,
		},
		Entropy:  models.EntropyClassification{HasBaseline: true, Status: models.EntropyNormal},
		Filename: "holiday.jpg",
	}
	got := Score(in)
	if got.Level != models.RiskCritical && got.Level != models.RiskHigh {
		t.Errorf("level = %s (score %d), want high or critical", got.Level, got.Score)
	}
	ids := indicatorIDs(got)
	if !ids["ext-mismatch"] || !ids["executable"] {
		t.Errorf("indicators = %v, want ext-mismatch and executable", ids)
	}
}

func TestScoreMismatchSeverityOrdering(t *testing.T) {
	base := benignInput()
	scoreFor := func(sev models.MismatchSeverity) int {
		in := base
		in.Identification.ExtensionMismatch = true
		in.Identification.MismatchSeverity = sev
		in.Identification.ClaimedExtension = "dat"
		return Score(in).Score
	}
	minor := scoreFor(models.MismatchMinor)
	suspicious := scoreFor(models.MismatchSuspicious)
	critical := scoreFor(models.MismatchCritical)
	if !(minor < suspicious && suspicious < critical) {
		t.Errorf("severity ordering broken: %d, %d, %d", minor, suspicious, critical)
	}
}

func TestScoreDoubleExtension(t *testing.T) {
	in := benignInput()
	in.Filename = "invoice.exe.pdf"
	in.Identification.ClaimedExtension = "pdf"
	got := Score(in)
	if !indicatorIDs(got)["double-extension"] {
		t.Errorf("double extension not flagged: %v", got.Indicators)
	}

	in.Filename = "archive.texe.pdf"
	if indicatorIDs(Score(in))["double-extension"] {
		t.Error("texe wrongly matched as exe")
	}
}

func TestScoreCodeInDataFile(t *testing.T) {
	in := benignInput()
	in.CodePatterns = []string{"eval("}
	got := Score(in)
	if !indicatorIDs(got)["code-in-data"] {
		t.Fatal("code pattern in image not flagged")
	}

	// PDFs carry scripts legitimately, so the weight is lower there.
	pdfIn := in
	pdfIn.Identification.TypeID = "pdf"
	pdfIn.Identification.Category = models.CategoryDocument
	if Score(pdfIn).Score >= got.Score {
		t.Error("pdf script weight should be below image script weight")
	}

	// Scripts containing script patterns are just scripts.
	scriptIn := in
	scriptIn.Identification.Category = models.CategoryScript
	if indicatorIDs(Score(scriptIn))["code-in-data"] {
		t.Error("script file penalized for containing code")
	}
}

func TestScoreForeignFormats(t *testing.T) {
	in := benignInput()
	in.ForeignFormats = []string{"png", "zip"}
	got := Score(in)
	if !indicatorIDs(got)["foreign-structure"] {
		t.Fatal("foreign format markers not flagged")
	}
	// A positive-weight indicator never lowers the score.
	if got.Score <= Score(benignInput()).Score {
		t.Errorf("score %d did not rise above the benign baseline", got.Score)
	}

	// The identified type itself is not foreign.
	selfOnly := benignInput()
	selfOnly.ForeignFormats = []string{"png"}
	if indicatorIDs(Score(selfOnly))["foreign-structure"] {
		t.Error("the file's own format counted as foreign")
	}
}

func TestScoreUnknownTypeOnlyMildlyPenalized(t *testing.T) {
	in := Input{
		Identification: models.FileIdentificationResult{
			TypeID: "unknown", Category: models.CategoryUnknown,
		},
		Entropy:  models.EntropyClassification{Status: models.EntropyUnknown},
		Filename: "blob.bin",
	}
	got := Score(in)
	if got.Level != models.RiskMedium && got.Level != models.RiskLow {
		t.Errorf("level = %s (score %d); ambiguity alone must stay moderate", got.Level, got.Score)
	}
}

func TestScoreBounds(t *testing.T) {
	in := Input{
		Identification: models.FileIdentificationResult{
			TypeID: "exe", Category: models.CategoryExecutable,
			ClaimedExtension: "jpg", ExtensionMismatch: true,
			MismatchSeverity: models.MismatchCritical,
		},
		Entropy:        models.EntropyClassification{HasBaseline: true, Status: models.EntropyHigh, Suspicious: true},
		Filename:       "a.exe.jpg",
		CodePatterns:   []string{"eval(", "powershell"},
		ForeignFormats: []string{"zip", "pdf"},
	}
	got := Score(in)
	if got.Score != 100 {
		t.Errorf("score = %d, want capped at 100", got.Score)
	}
	if got.Level != models.RiskCritical {
		t.Errorf("level = %s, want critical", got.Level)
	}
}

func TestLevelBands(t *testing.T) {
	tests := []struct {
		score int
		want  models.RiskLevel
	}{
		{0, models.RiskSafe},
		{19, models.RiskSafe},
		{20, models.RiskLow},
		{34, models.RiskLow},
		{35, models.RiskMedium},
		{54, models.RiskMedium},
		{55, models.RiskHigh},
		{74, models.RiskHigh},
		{75, models.RiskCritical},
		{100, models.RiskCritical},
	}
	for _, tt := range tests {
		if got := levelFor(tt.score); got != tt.want {
			t.Errorf("levelFor(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func indicatorIDs(score models.ThreatScore) map[string]bool {
	ids := make(map[string]bool, len(score.Indicators))
	for _, ind := range score.Indicators {
		ids[ind.ID] = true
	}
	return ids
}
