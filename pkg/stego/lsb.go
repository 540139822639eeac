package stego

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"image"
	"io"
	"strings"
	"unicode"

	"golang.org/x/image/bmp"

	"github.com/LegendeTestimony/sentinel-AI-sub000/pkg/models"
)

// pixelStream is decompressed pixel data plus the layout hints the
// extraction hypotheses need.
type pixelStream struct {
	bytes     []byte
	rowStride int // bytes per scanline including any leading filter byte
	hasFilter bool
}

const maxPixelBytes = 1 << 22 // bound extraction cost on large images

// lsbStrategy is one pure extraction hypothesis. The true embedding
// convention is unknown a priori, so a fixed menu of hypotheses is tried in
// order and the first plausible result wins.
type lsbStrategy struct {
	name    string
	extract func(px pixelStream, cfg Thresholds) (string, bool)
}

var lsbStrategies = []lsbStrategy{
	{"lsb-every-byte-msb-first", func(px pixelStream, cfg Thresholds) (string, bool) {
		return bitsToMessage(collectLSBs(px.bytes, 1, 0, 1), cfg)
	}},
	{"lsb-every-byte-lsb-first", func(px pixelStream, cfg Thresholds) (string, bool) {
		return bitsToMessageLSBFirst(collectLSBs(px.bytes, 1, 0, 1), cfg)
	}},
	{"lsb-skip-alpha-rgba", func(px pixelStream, cfg Thresholds) (string, bool) {
		return bitsToMessage(collectLSBsSkipNth(px.bytes, 4, 3), cfg)
	}},
	{"lsb-skip-filter-byte", func(px pixelStream, cfg Thresholds) (string, bool) {
		if px.rowStride <= 1 {
			return "", false
		}
		return bitsToMessage(collectLSBsSkipFilter(px.bytes, px.rowStride), cfg)
	}},
	{"lsb-rgb-order", func(px pixelStream, cfg Thresholds) (string, bool) {
		return bitsToMessageLSBFirst(collectLSBsSkipNth(px.bytes, 4, 3), cfg)
	}},
	{"lsb-offset-sweep", extractOffsetSweep},
	{"lsb-length-prefixed", extractLengthPrefixed},
}

// extractLSB runs the hypothesis menu over the format's decompressed pixel
// data. If every hypothesis fails, no finding is reported rather than a
// guess.
func extractLSB(data []byte, typeID string, cfg Thresholds) (*models.SteganographyTechnique, string) {
	px, ok := decodePixels(data, typeID)
	if !ok || len(px.bytes) == 0 {
		return nil, ""
	}
	if len(px.bytes) > maxPixelBytes {
		px.bytes = px.bytes[:maxPixelBytes]
	}
	for _, strat := range lsbStrategies {
		if msg, found := strat.extract(px, cfg); found {
			technique := models.SteganographyTechnique{
				Name:        "lsb-extraction",
				Confidence:  90,
				Description: "a bit-plane extraction hypothesis yielded readable text",
				Evidence: []string{
					fmt.Sprintf("hypothesis %q produced a %d-character message", strat.name, len(msg)),
				},
			}
			return &technique, msg
		}
	}
	return nil, ""
}

// decodePixels produces the raw pixel byte stream for formats whose pixel
// data can be recovered losslessly.
func decodePixels(data []byte, typeID string) (pixelStream, bool) {
	switch typeID {
	case "png":
		return inflatePNG(data)
	case "bmp":
		img, err := bmp.Decode(bytes.NewReader(data))
		if err != nil {
			return pixelStream{}, false
		}
		return rgbaStream(img), true
	}
	return pixelStream{}, false
}

// inflatePNG concatenates the IDAT chunks and inflates them, yielding the
// filtered scanline stream. The scanline stride is derived from IHDR.
func inflatePNG(data []byte) (pixelStream, bool) {
	if !bytes.HasPrefix(data, pngMagic) || len(data) < 33 {
		return pixelStream{}, false
	}
	width := binary.BigEndian.Uint32(data[16:20])
	bitDepth := int(data[24])
	colorType := data[25]
	channels := map[byte]int{0: 1, 2: 3, 3: 1, 4: 2, 6: 4}[colorType]
	if channels == 0 || bitDepth == 0 || width == 0 {
		return pixelStream{}, false
	}
	rowStride := int(width)*channels*bitDepth/8 + 1

	var compressed bytes.Buffer
	pos := len(pngMagic)
	for pos+12 <= len(data) {
		length := binary.BigEndian.Uint32(data[pos : pos+4])
		chunkType := string(data[pos+4 : pos+8])
		if pos+12+int(length) > len(data) {
			break
		}
		if chunkType == "IDAT" {
			compressed.Write(data[pos+8 : pos+8+int(length)])
		}
		if chunkType == "IEND" {
			break
		}
		pos += 12 + int(length)
	}
	if compressed.Len() == 0 {
		return pixelStream{}, false
	}
	zr, err := zlib.NewReader(&compressed)
	if err != nil {
		return pixelStream{}, false
	}
	defer zr.Close()
	raw, err := io.ReadAll(io.LimitReader(zr, maxPixelBytes))
	if err != nil && len(raw) == 0 {
		return pixelStream{}, false
	}
	return pixelStream{bytes: raw, rowStride: rowStride, hasFilter: true}, true
}

// rgbaStream flattens a decoded image into RGBA byte order.
func rgbaStream(img image.Image) pixelStream {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := make([]byte, 0, w*h*4)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			out = append(out, byte(r>>8), byte(g>>8), byte(b>>8), byte(a>>8))
		}
	}
	return pixelStream{bytes: out, rowStride: w * 4}
}

// collectLSBs gathers bitsPerByte low bits from every byte, starting at
// offset, stepping by step.
func collectLSBs(data []byte, bitsPerByte, offset, step int) []byte {
	var bits []byte
	for i := offset; i < len(data); i += step {
		for b := bitsPerByte - 1; b >= 0; b-- {
			bits = append(bits, (data[i]>>uint(b))&1)
		}
		if len(bits) >= 8*4096 {
			break
		}
	}
	return bits
}

// collectLSBsSkipNth gathers the LSB of each byte except every position
// where index%group == skip (the alpha byte in a 4-byte pixel layout).
func collectLSBsSkipNth(data []byte, group, skip int) []byte {
	var bits []byte
	for i := 0; i < len(data); i++ {
		if i%group == skip {
			continue
		}
		bits = append(bits, data[i]&1)
		if len(bits) >= 8*4096 {
			break
		}
	}
	return bits
}

// collectLSBsSkipFilter gathers LSBs while skipping the presumed filter byte
// that leads each scanline.
func collectLSBsSkipFilter(data []byte, rowStride int) []byte {
	var bits []byte
	for i := 0; i < len(data); i++ {
		if i%rowStride == 0 {
			continue
		}
		bits = append(bits, data[i]&1)
		if len(bits) >= 8*4096 {
			break
		}
	}
	return bits
}

// extractOffsetSweep tries small starting offsets combined with 1-bit and
// 2-bit per byte extraction.
func extractOffsetSweep(px pixelStream, cfg Thresholds) (string, bool) {
	for offset := 0; offset <= 10; offset++ {
		for _, bitsPerByte := range []int{1, 2} {
			if msg, ok := bitsToMessage(collectLSBs(px.bytes, bitsPerByte, offset, 1), cfg); ok {
				return msg, true
			}
		}
	}
	return "", false
}

// extractLengthPrefixed interprets the first 32 extracted bits as a
// big-endian message length followed by exactly that many bits.
func extractLengthPrefixed(px pixelStream, cfg Thresholds) (string, bool) {
	bits := collectLSBs(px.bytes, 1, 0, 1)
	if len(bits) < 32 {
		return "", false
	}
	var length uint32
	for _, bit := range bits[:32] {
		length = length<<1 | uint32(bit)
	}
	if length == 0 || int(length) > cfg.MaxMessageSize || int(length)*8 > len(bits)-32 {
		return "", false
	}
	payload := bits[32 : 32+int(length)*8]
	msg := packBits(payload, false)
	if plausibleMessage(msg) {
		return msg, true
	}
	return "", false
}

// bitsToMessage packs bits most-significant-first into bytes, stopping at
// the first zero byte, and accepts only plausible text.
func bitsToMessage(bits []byte, cfg Thresholds) (string, bool) {
	msg := packBits(bits, false)
	if len(msg) > cfg.MaxMessageSize {
		msg = msg[:cfg.MaxMessageSize]
	}
	if plausibleMessage(msg) {
		return msg, true
	}
	return "", false
}

// bitsToMessageLSBFirst packs bits least-significant-first.
func bitsToMessageLSBFirst(bits []byte, cfg Thresholds) (string, bool) {
	msg := packBits(bits, true)
	if len(msg) > cfg.MaxMessageSize {
		msg = msg[:cfg.MaxMessageSize]
	}
	if plausibleMessage(msg) {
		return msg, true
	}
	return "", false
}

func packBits(bits []byte, lsbFirst bool) string {
	var sb strings.Builder
	for i := 0; i+8 <= len(bits); i += 8 {
		var b byte
		for j := 0; j < 8; j++ {
			if lsbFirst {
				b |= bits[i+j] << uint(j)
			} else {
				b = b<<1 | bits[i+j]
			}
		}
		if b == 0 {
			break
		}
		sb.WriteByte(b)
	}
	return sb.String()
}

// plausibleMessage accepts candidate text that is at least three printable
// characters and either contains a space or is entirely alphanumeric or
// punctuation.
func plausibleMessage(msg string) bool {
	if len(msg) < 3 {
		return false
	}
	for _, r := range msg {
		if r > 126 || (r < 32 && r != '\n' && r != '\r' && r != '\t') {
			return false
		}
	}
	if strings.ContainsRune(msg, ' ') {
		return true
	}
	for _, r := range msg {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsPunct(r) {
			return false
		}
	}
	return true
}
