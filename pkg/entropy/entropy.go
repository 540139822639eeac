// Package entropy measures Shannon entropy and classifies it against
// per-type expected ranges. Low entropy is never treated as a threat signal;
// only entropy above a type's expected maximum is suspicious.
package entropy

import (
	"fmt"
	"math"

	"github.com/LegendeTestimony/sentinel-AI-sub000/pkg/models"
)

// Shannon computes the byte-frequency Shannon entropy of the buffer in bits
// per byte (0.0-8.0). An empty buffer has zero entropy.
func Shannon(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}
	var freq [256]int
	for _, b := range data {
		freq[b]++
	}
	total := float64(len(data))
	entropy := 0.0
	for _, count := range freq {
		if count == 0 {
			continue
		}
		p := float64(count) / total
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// Classify compares a measured entropy value to the identified type's
// baseline. Without a baseline no judgment is made.
func Classify(typeID string, value float64) models.EntropyClassification {
	baseline, ok := Lookup(typeID)
	if !ok {
		return models.EntropyClassification{
			Status: models.EntropyUnknown,
			Value:  value,
			Explanation: fmt.Sprintf(
				"no entropy baseline exists for type %q; measured %.2f bits/byte is reported without judgment",
				typeID, value),
		}
	}

	c := models.EntropyClassification{HasBaseline: true, Value: value}
	switch {
	case value > baseline.Max:
		c.Status = models.EntropyHigh
		c.Suspicious = true
		c.Deviation = value - baseline.Max
		c.Explanation = fmt.Sprintf(
			"entropy %.2f exceeds the expected maximum %.2f for %s; an extra encryption or obfuscation layer may sit on top of the normal encoding",
			value, baseline.Max, typeID)
	case value < baseline.Min:
		c.Status = models.EntropyLow
		c.Deviation = baseline.Min - value
		c.Explanation = fmt.Sprintf(
			"entropy %.2f is below the expected minimum %.2f for %s; this indicates incomplete compression or plain structured data, not a threat",
			value, baseline.Min, typeID)
	default:
		c.Status = models.EntropyNormal
		c.Deviation = math.Abs(value - baseline.Typical)
		c.Explanation = fmt.Sprintf(
			"entropy %.2f is within the expected range %.2f-%.2f for %s",
			value, baseline.Min, baseline.Max, typeID)
	}
	return c
}
