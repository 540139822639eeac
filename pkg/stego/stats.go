package stego

import (
	"fmt"

	"github.com/LegendeTestimony/sentinel-AI-sub000/pkg/entropy"
	"github.com/LegendeTestimony/sentinel-AI-sub000/pkg/models"
)

const maxChiSamples = 1 << 16

// chiSquareCheck samples byte pairs at a fixed stride, builds a frequency
// table over the paired low nibbles and compares it to a uniform
// expectation. LSB embedding randomizes the low bits, pulling the statistic
// toward its uniform expectation, so only a narrow band around that
// expectation is flagged; values far outside it in either direction are
// typical of ordinary content.
func chiSquareCheck(data []byte, cfg Thresholds) *models.SteganographyTechnique {
	stride := cfg.ChiSquareStride
	if stride < 1 {
		stride = 1
	}
	var freq [256]int
	samples := 0
	for i := 0; i+1 < len(data) && samples < maxChiSamples; i += stride {
		bin := (data[i]&0x0F)<<4 | (data[i+1] & 0x0F)
		freq[bin]++
		samples++
	}
	if samples < cfg.ChiSquareMinSamples {
		return nil
	}

	expected := float64(samples) / 256.0
	chi := 0.0
	for _, observed := range freq {
		diff := float64(observed) - expected
		chi += diff * diff / expected
	}
	normalized := chi / 255.0 // degrees of freedom

	if normalized < cfg.ChiSquareBandLow || normalized > cfg.ChiSquareBandHigh {
		return nil
	}
	return &models.SteganographyTechnique{
		Name:       "chi-square-anomaly",
		Confidence: cfg.ChiSquareConfidence,
		Description: "byte-pair distribution sits in the statistical band typical of " +
			"bit-plane embedding",
		Evidence: []string{
			fmt.Sprintf("normalized chi-square %.3f within suspicious band [%.2f, %.2f] over %d samples",
				normalized, cfg.ChiSquareBandLow, cfg.ChiSquareBandHigh, samples),
		},
	}
}

// commonMediaTypes limits the generic window scan to carriers where a large
// hidden region is meaningful.
var commonMediaTypes = map[string]bool{
	"jpeg": true, "png": true, "gif": true, "bmp": true, "webp": true,
	"mp3": true, "mp4": true, "wav": true, "avi": true,
}

// entropyWindowScan slides a fixed-size window across large buffers and
// flags a concentration of near-random windows in common media types.
func entropyWindowScan(data []byte, typeID string, cfg Thresholds) *models.SteganographyTechnique {
	if len(data) < cfg.WindowScanMinBuffer || !commonMediaTypes[typeID] {
		return nil
	}
	count := 0
	windows := 0
	for off := 0; off+cfg.WindowSize <= len(data); off += cfg.WindowSize {
		windows++
		if entropy.Shannon(data[off:off+cfg.WindowSize]) > cfg.WindowEntropyThreshold {
			count++
		}
	}
	if count <= cfg.WindowMinCount {
		return nil
	}
	return &models.SteganographyTechnique{
		Name:       "high-entropy-region",
		Confidence: 60,
		Description: fmt.Sprintf("a large region of near-random data is present inside a %s file",
			typeID),
		Evidence: []string{
			fmt.Sprintf("%d of %d windows exceed %.1f bits/byte entropy",
				count, windows, cfg.WindowEntropyThreshold),
		},
	}
}
