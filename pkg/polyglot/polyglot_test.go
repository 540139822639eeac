package polyglot

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/LegendeTestimony/sentinel-AI-sub000/pkg/models"
)

// peStub builds a minimal buffer with a coherent MZ -> PE header chain.
func peStub() []byte {
	buf := make([]byte, 128)
	buf[0], buf[1] = 'M', 'Z'
	binary.LittleEndian.PutUint32(buf[0x3C:0x40], 64)
	copy(buf[64:], "PE\x00\x00")
	return buf
}

func TestDetectSingleFormatIsNotPolyglot(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "plain gif", data: []byte("GIF89a and pixel data")},
		{name: "plain pdf", data: []byte("%PDF-1.7\n1 0 obj\nendobj\n")},
		{name: "plain pe", data: peStub()},
		{name: "empty", data: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.data)
			if got.IsPolyglot {
				t.Errorf("formats %v flagged as polyglot", got.Formats)
			}
		})
	}
}

func TestDetectScriptPDFIsCritical(t *testing.T) {
	data := []byte("#!/bin/sh\n# %PDF-1.4\necho run\n")
	got := Detect(data)
	if !got.IsPolyglot {
		t.Fatal("expected polyglot")
	}
	if got.Risk != models.PolyglotCritical {
		t.Errorf("risk = %s, want critical", got.Risk)
	}
	if got.Confidence != matchConfidence {
		t.Errorf("confidence = %d, want %d", got.Confidence, matchConfidence)
	}
	if len(got.DangerousPairs) == 0 {
		t.Error("expected the script+pdf pair to be reported")
	}
}

func TestDetectPEZipIsCritical(t *testing.T) {
	data := peStub()
	data = append(data, bytes.Repeat([]byte{0}, 64)...)
	data = append(data, 0x50, 0x4B, 0x05, 0x06) // trailing EOCD
	data = append(data, make([]byte, 18)...)

	got := Detect(data)
	if !got.IsPolyglot {
		t.Fatal("expected polyglot")
	}
	if got.Risk != models.PolyglotCritical {
		t.Errorf("risk = %s, want critical", got.Risk)
	}
}

func TestDetectPDFZipIsHigh(t *testing.T) {
	data := []byte("%PDF-1.5\nsome objects\n")
	data = append(data, 0x50, 0x4B, 0x05, 0x06)
	data = append(data, make([]byte, 18)...)

	got := Detect(data)
	if !got.IsPolyglot {
		t.Fatal("expected polyglot")
	}
	if got.Risk != models.PolyglotHigh {
		t.Errorf("risk = %s, want high", got.Risk)
	}
}

func TestDetectHTMLNeedsTwoPatterns(t *testing.T) {
	// One stray tag inside a gif must not make it an html polyglot.
	one := []byte("GIF89a <script>alert(1)</script>")
	if got := Detect(one); got.IsPolyglot {
		t.Errorf("single html pattern produced polyglot %v", got.Formats)
	}

	two := []byte("GIF89a <script>x</script><body onload=go()>")
	got := Detect(two)
	if !got.IsPolyglot {
		t.Fatal("expected polyglot with two html patterns")
	}
	if got.Risk != models.PolyglotHigh {
		t.Errorf("risk = %s, want high for html+gif", got.Risk)
	}
}

func TestMatchedFormats(t *testing.T) {
	data := []byte("%PDF-1.4 body")
	formats := MatchedFormats(data)
	if len(formats) != 1 || formats[0] != "pdf" {
		t.Errorf("formats = %v, want [pdf]", formats)
	}
}
