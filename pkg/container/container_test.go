package container

import (
	"encoding/binary"
	"testing"

	"github.com/LegendeTestimony/sentinel-AI-sub000/pkg/models"
)

// ftypBuffer builds a minimal ftyp box with the given major brand and
// optional compatible brands.
func ftypBuffer(major string, compat ...string) []byte {
	size := 16 + 4*len(compat)
	buf := make([]byte, size)
	binary.BigEndian.PutUint32(buf[0:4], uint32(size))
	copy(buf[4:8], "ftyp")
	copy(buf[8:12], major)
	// minor version stays zero
	for i, c := range compat {
		copy(buf[16+4*i:], c)
	}
	return buf
}

func appendBox(buf []byte, boxType string, payload []byte) []byte {
	box := make([]byte, 8+len(payload))
	binary.BigEndian.PutUint32(box[0:4], uint32(len(box)))
	copy(box[4:8], boxType)
	copy(box[8:], payload)
	return append(buf, box...)
}

func TestResolveBoxBrands(t *testing.T) {
	tests := []struct {
		name     string
		major    string
		compat   []string
		wantType string
		wantCat  models.Category
	}{
		{name: "heic major brand", major: "heic", wantType: "heic", wantCat: models.CategoryImage},
		{name: "avif major brand", major: "avif", wantType: "avif", wantCat: models.CategoryImage},
		{name: "isom major brand", major: "isom", wantType: "mp4", wantCat: models.CategoryVideo},
		{name: "quicktime", major: "qt  ", wantType: "mov", wantCat: models.CategoryVideo},
		{name: "m4a audio", major: "M4A ", wantType: "m4a", wantCat: models.CategoryAudio},
		{
			name:     "unknown major resolved via compatible brand",
			major:    "zzzz",
			compat:   []string{"xxxx", "mif1"},
			wantType: "heic",
			wantCat:  models.CategoryImage,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ResolveBox(ftypBuffer(tt.major, tt.compat...))
			if !res.Resolved {
				t.Fatal("expected resolution")
			}
			if res.TypeID != tt.wantType {
				t.Errorf("TypeID = %s, want %s", res.TypeID, tt.wantType)
			}
			if res.Category != tt.wantCat {
				t.Errorf("Category = %s, want %s", res.Category, tt.wantCat)
			}
			// Well-formed wrapper plus a known brand.
			if res.Confidence < 85 {
				t.Errorf("Confidence = %d, want >= 85", res.Confidence)
			}
		})
	}
}

func TestResolveBoxUnknownBrandFallsBackToFamily(t *testing.T) {
	res := ResolveBox(ftypBuffer("zzzz"))
	if !res.Resolved {
		t.Fatal("expected resolution")
	}
	if res.TypeID != "mp4" {
		t.Errorf("TypeID = %s, want generic mp4", res.TypeID)
	}
	// No brand bonus.
	if res.Confidence != 70 {
		t.Errorf("Confidence = %d, want 70", res.Confidence)
	}
}

func TestResolveBoxStructureBonuses(t *testing.T) {
	buf := ftypBuffer("isom")
	buf = appendBox(buf, "moov", make([]byte, 8))
	buf = appendBox(buf, "mdat", []byte{1, 2, 3, 4})

	res := ResolveBox(buf)
	if !res.HasMetadata || !res.HasMediaData {
		t.Fatalf("metadata=%v mediadata=%v, want both true", res.HasMetadata, res.HasMediaData)
	}
	if res.Confidence != 100 {
		t.Errorf("Confidence = %d, want 100", res.Confidence)
	}
	if len(res.Boxes) != 3 {
		t.Errorf("parsed %d boxes, want 3", len(res.Boxes))
	}
}

func TestResolveBoxMalformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "too short", data: []byte("....ftyp")},
		{name: "wrong tag", data: append([]byte{0, 0, 0, 16}, []byte("free00000000")...)},
		{
			name: "declared size beyond buffer",
			data: func() []byte {
				buf := ftypBuffer("isom")
				binary.BigEndian.PutUint32(buf[0:4], 9999)
				return buf
			}(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ResolveBox(tt.data)
			if res.Resolved || res.Confidence != 0 {
				t.Errorf("got resolved=%v confidence=%d, want unresolved zero", res.Resolved, res.Confidence)
			}
		})
	}
}

func TestResolveChunk(t *testing.T) {
	wav := make([]byte, 44)
	copy(wav[0:4], "RIFF")
	binary.LittleEndian.PutUint32(wav[4:8], 36)
	copy(wav[8:12], "WAVE")

	res := ResolveChunk(wav)
	if !res.Resolved {
		t.Fatal("expected resolution")
	}
	if res.TypeID != "wav" || res.Category != models.CategoryAudio {
		t.Errorf("got %s/%s, want wav/audio", res.TypeID, res.Category)
	}
	if res.Confidence != 85 {
		t.Errorf("Confidence = %d, want 85", res.Confidence)
	}
}

func TestResolveChunkUnknownSubtype(t *testing.T) {
	buf := []byte("RIFF\x04\x00\x00\x00ZZZZ")
	res := ResolveChunk(buf)
	if !res.Resolved {
		t.Fatal("expected resolution")
	}
	if res.TypeID != "riff" {
		t.Errorf("TypeID = %s, want riff family fallback", res.TypeID)
	}
}

func TestResolveChunkMalformed(t *testing.T) {
	if res := ResolveChunk([]byte("RIFF")); res.Resolved {
		t.Error("short buffer resolved")
	}
	if res := ResolveChunk([]byte("LIST\x00\x00\x00\x00WAVE")); res.Resolved {
		t.Error("non-RIFF tag resolved")
	}
}
