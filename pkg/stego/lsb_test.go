package stego

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"testing"
)

// embedLSB writes the message bits, most significant bit first, into the low
// bit of consecutive carrier bytes, followed by a zero terminator byte.
func embedLSB(carrier []byte, msg string) {
	bits := messageBits(msg)
	for i, bit := range bits {
		if i >= len(carrier) {
			return
		}
		carrier[i] = carrier[i]&0xFE | bit
	}
	for i := len(bits); i < len(carrier); i++ {
		carrier[i] &= 0xFE
	}
}

func messageBits(msg string) []byte {
	var bits []byte
	for _, b := range []byte(msg) {
		for shift := 7; shift >= 0; shift-- {
			bits = append(bits, (b>>uint(shift))&1)
		}
	}
	return bits
}

func TestPackBits(t *testing.T) {
	msg := "hi"
	got := packBits(messageBits(msg), false)
	if got != msg {
		t.Errorf("packBits = %q, want %q", got, msg)
	}

	// A zero byte terminates the message.
	bits := append(messageBits("cut"), messageBits("\x00tail")...)
	if got := packBits(bits, false); got != "cut" {
		t.Errorf("packBits with terminator = %q, want %q", got, "cut")
	}
}

func TestPackBitsLSBFirst(t *testing.T) {
	// 'A' = 0x41 = 0100_0001; reversed bit order per byte.
	bits := []byte{1, 0, 0, 0, 0, 0, 1, 0}
	if got := packBits(bits, true); got != "A" {
		t.Errorf("packBits lsb-first = %q, want %q", got, "A")
	}
}

func TestPlausibleMessage(t *testing.T) {
	tests := []struct {
		msg  string
		want bool
	}{
		{"attack at dawn", true},
		{"password123", true},
		{"a", false},
		{"", false},
		{"\x01\x02\x03\x04", false},
		{"ab\x7fcd", false},
		{"with\nnewline text", true},
	}
	for _, tt := range tests {
		if got := plausibleMessage(tt.msg); got != tt.want {
			t.Errorf("plausibleMessage(%q) = %v, want %v", tt.msg, got, tt.want)
		}
	}
}

func TestBitsToMessage(t *testing.T) {
	msg := "the cache key is 7731"
	if got, ok := bitsToMessage(messageBits(msg), DefaultThresholds()); !ok || got != msg {
		t.Errorf("bitsToMessage = %q/%v, want %q", got, ok, msg)
	}
	if _, ok := bitsToMessage(messageBits("\xfe\xfd\xfc\xfb"), DefaultThresholds()); ok {
		t.Error("non-text bits accepted")
	}
}

func TestCollectLSBsSkipNth(t *testing.T) {
	// Bytes 0..7 with LSBs 1,0,1,0,...; skipping every 4th position drops
	// indexes 3 and 7.
	data := []byte{1, 0, 1, 0, 1, 0, 1, 0}
	bits := collectLSBsSkipNth(data, 4, 3)
	want := []byte{1, 0, 1, 1, 0, 1}
	if !bytes.Equal(bits, want) {
		t.Errorf("bits = %v, want %v", bits, want)
	}
}

func TestExtractLengthPrefixed(t *testing.T) {
	msg := "rendezvous point bravo"
	bits := make([]byte, 0, 32+len(msg)*8)
	length := uint32(len(msg))
	for shift := 31; shift >= 0; shift-- {
		bits = append(bits, byte((length>>uint(shift))&1))
	}
	bits = append(bits, messageBits(msg)...)

	carrier := make([]byte, len(bits)+64)
	for i, bit := range bits {
		carrier[i] = 0xA0 | bit
	}
	px := pixelStream{bytes: carrier, rowStride: len(carrier)}

	got, ok := extractLengthPrefixed(px, DefaultThresholds())
	if !ok || got != msg {
		t.Errorf("extractLengthPrefixed = %q/%v, want %q", got, ok, msg)
	}
}

// TestExtractLSBFromPNG exercises the whole pipeline: a synthetic PNG whose
// inflated scanline bytes carry a message in their low bits.
func TestExtractLSBFromPNG(t *testing.T) {
	msg := "nothing to see in this picture"

	const width, height = 32, 3
	rowStride := width*4 + 1 // RGBA8 plus filter byte
	raw := make([]byte, rowStride*height)
	for i := range raw {
		raw[i] = 0x80
	}
	embedLSB(raw, msg)

	var idat bytes.Buffer
	zw := zlib.NewWriter(&idat)
	if _, err := zw.Write(raw); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], width)
	binary.BigEndian.PutUint32(ihdr[4:8], height)
	ihdr[8] = 8 // bit depth
	ihdr[9] = 6 // RGBA
	data := pngWithChunks(pngChunk("IHDR", ihdr), pngChunk("IDAT", idat.Bytes()))

	technique, got := extractLSB(data, "png", DefaultThresholds())
	if technique == nil {
		t.Fatal("expected an extraction")
	}
	if got != msg {
		t.Errorf("message = %q, want %q", got, msg)
	}
	if technique.Name != "lsb-extraction" {
		t.Errorf("technique = %s", technique.Name)
	}
}

func TestExtractLSBCleanImage(t *testing.T) {
	// All-zero low bits decode to an empty message under every hypothesis.
	const width, height = 16, 2
	raw := make([]byte, (width*4+1)*height)
	for i := range raw {
		raw[i] = 0x80
	}
	var idat bytes.Buffer
	zw := zlib.NewWriter(&idat)
	zw.Write(raw)
	zw.Close()

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], width)
	binary.BigEndian.PutUint32(ihdr[4:8], height)
	ihdr[8] = 8
	ihdr[9] = 6
	data := pngWithChunks(pngChunk("IHDR", ihdr), pngChunk("IDAT", idat.Bytes()))

	if technique, msg := extractLSB(data, "png", DefaultThresholds()); technique != nil {
		t.Errorf("clean image produced extraction %q", msg)
	}
}

func TestDecodePixelsUnsupportedType(t *testing.T) {
	if _, ok := decodePixels([]byte("GIF89a"), "gif"); ok {
		t.Error("gif pixel decode should not be supported")
	}
	if _, ok := decodePixels([]byte("truncated"), "png"); ok {
		t.Error("malformed png decoded")
	}
}
