package stego

// Thresholds holds the tunable constants of the steganography detector.
// Several values (notably the chi-square suspicious band) are empirical and
// carried as configuration rather than derived.
type Thresholds struct {
	// Appended-data detection
	MinAppendedBytes int `yaml:"min_appended_bytes"`

	// Text decoding
	PrintableRatio float64 `yaml:"printable_ratio"`

	// Chi-square statistical check
	ChiSquareStride     int     `yaml:"chi_square_stride"`
	ChiSquareMinSamples int     `yaml:"chi_square_min_samples"`
	ChiSquareBandLow    float64 `yaml:"chi_square_band_low"`
	ChiSquareBandHigh   float64 `yaml:"chi_square_band_high"`
	ChiSquareConfidence int     `yaml:"chi_square_confidence"`

	// Generic high-entropy window scan
	WindowScanMinBuffer    int     `yaml:"window_scan_min_buffer"`
	WindowSize             int     `yaml:"window_size"`
	WindowEntropyThreshold float64 `yaml:"window_entropy_threshold"`
	WindowMinCount         int     `yaml:"window_min_count"`

	// Output bounding
	PreviewBytes   int `yaml:"preview_bytes"`
	MaxMessageSize int `yaml:"max_message_size"`
}

// DefaultThresholds returns the stock detector configuration.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinAppendedBytes:       16,
		PrintableRatio:         0.70,
		ChiSquareStride:        4,
		ChiSquareMinSamples:    1024,
		ChiSquareBandLow:       0.5,
		ChiSquareBandHigh:      1.5,
		ChiSquareConfidence:    55,
		WindowScanMinBuffer:    4096,
		WindowSize:             256,
		WindowEntropyThreshold: 7.8,
		WindowMinCount:         8,
		PreviewBytes:           32,
		MaxMessageSize:         4096,
	}
}
