package threshold

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func hr(v float64) *float64 { return &v }

func TestClassifyScenario(t *testing.T) {
	cfg := Config{
		SystolicMin: 90, SystolicMax: 120,
		DiastolicMin: 60, DiastolicMax: 90,
		HeartRateMin: 60, HeartRateMax: 90,
	}

	assert.Equal(t, Healthy, Classify(118, 80, hr(75), cfg))
	// systolic margin is 6, so 126 is the last borderline value
	assert.Equal(t, Borderline, Classify(126, 80, hr(75), cfg))
	assert.Equal(t, Abnormal, Classify(130, 80, hr(75), cfg))
	assert.Equal(t, Healthy, Classify(118, 80, nil, cfg))
}

func TestClassifyBandEdgesAreHealthy(t *testing.T) {
	cfg := DefaultConfig

	assert.Equal(t, Healthy, Classify(cfg.SystolicMin, cfg.DiastolicMin, hr(cfg.HeartRateMin), cfg))
	assert.Equal(t, Healthy, Classify(cfg.SystolicMax, cfg.DiastolicMax, hr(cfg.HeartRateMax), cfg))
}

func TestClassifyMarginBoundary(t *testing.T) {
	bands := []Range{
		{Min: 90, Max: 120},
		{Min: 60, Max: 90},
		{Min: 33.3, Max: 71.9},
		{Min: 100, Max: 101},
	}

	for _, r := range bands {
		low := r.Min - r.Margin()
		high := r.Max + r.Margin()

		assert.True(t, r.WithinMargin(low), "low edge %v of %v", low, r)
		assert.True(t, r.WithinMargin(high), "high edge %v of %v", high, r)
		assert.False(t, r.WithinMargin(math.Nextafter(low, math.Inf(-1))), "below low edge of %v", r)
		assert.False(t, r.WithinMargin(math.Nextafter(high, math.Inf(1))), "above high edge of %v", r)
	}
}

func TestClassifyHeartRateOnly(t *testing.T) {
	cfg := DefaultConfig

	// heart rate margin is 6 on a 60-90 band
	assert.Equal(t, Borderline, Classify(100, 70, hr(54), cfg))
	assert.Equal(t, Abnormal, Classify(100, 70, hr(53.9), cfg))
	assert.Equal(t, Borderline, Classify(100, 70, hr(96), cfg))
}

func TestClassifyZeroWidthBand(t *testing.T) {
	cfg := DefaultConfig
	cfg.HeartRateMin = 70
	cfg.HeartRateMax = 70

	assert.Equal(t, Healthy, Classify(100, 70, hr(70), cfg))
	assert.Equal(t, Abnormal, Classify(100, 70, hr(70.5), cfg))
	assert.Equal(t, Abnormal, Classify(100, 70, hr(69.5), cfg))
}

func TestClassifyWorstMetricWins(t *testing.T) {
	cfg := DefaultConfig

	// systolic borderline, diastolic abnormal
	assert.Equal(t, Abnormal, Classify(124, 120, hr(75), cfg))
	// every metric borderline
	assert.Equal(t, Borderline, Classify(124, 94, hr(94), cfg))
}
