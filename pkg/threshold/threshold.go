// Package threshold holds the banding rules for vital-sign readings: the threshold
// configuration, the safety envelope it must stay inside, validation and classification.
//
// Everything here is pure so the same rules serve the immediate-feedback validation
// endpoint, the authoritative draft checks and bulk preview over stored records.
package threshold

import "fmt"

type Metric string

const (
	MetricSystolic  Metric = "systolic"
	MetricDiastolic Metric = "diastolic"
	MetricHeartRate Metric = "heart_rate"
)

var Metrics = []Metric{MetricSystolic, MetricDiastolic, MetricHeartRate}

// Range is an inclusive [Min, Max] band for one metric.
type Range struct {
	Min float64
	Max float64
}

func (r Range) Contains(v float64) bool {
	return r.Min <= v && v <= r.Max
}

// Margin is the borderline allowance on either side of the band.
func (r Range) Margin() float64 {
	return (r.Max - r.Min) * BorderlineMarginRatio
}

// WithinMargin reports whether v is in range or at most one margin outside of it.
func (r Range) WithinMargin(v float64) bool {
	margin := r.Margin()
	return r.Min-margin <= v && v <= r.Max+margin
}

func (r Range) String() string {
	return fmt.Sprintf("%v-%v", r.Min, r.Max)
}

type Config struct {
	SystolicMin  float64 `json:"systolic_min"`
	SystolicMax  float64 `json:"systolic_max"`
	DiastolicMin float64 `json:"diastolic_min"`
	DiastolicMax float64 `json:"diastolic_max"`
	HeartRateMin float64 `json:"heart_rate_min"`
	HeartRateMax float64 `json:"heart_rate_max"`
}

func (c Config) Range(m Metric) Range {
	switch m {
	case MetricSystolic:
		return Range{Min: c.SystolicMin, Max: c.SystolicMax}
	case MetricDiastolic:
		return Range{Min: c.DiastolicMin, Max: c.DiastolicMax}
	case MetricHeartRate:
		return Range{Min: c.HeartRateMin, Max: c.HeartRateMax}
	}
	panic(fmt.Sprintf("threshold: unknown metric %q", m))
}

// SafetyBounds is the system envelope every Config field must stay inside.
type SafetyBounds struct {
	SystolicMin  float64 `json:"systolic_min"`
	SystolicMax  float64 `json:"systolic_max"`
	DiastolicMin float64 `json:"diastolic_min"`
	DiastolicMax float64 `json:"diastolic_max"`
	HeartRateMin float64 `json:"heart_rate_min"`
	HeartRateMax float64 `json:"heart_rate_max"`
}

func (b SafetyBounds) Range(m Metric) Range {
	return Config(b).Range(m)
}

const BorderlineMarginRatio = 0.2

var (
	DefaultConfig = Config{
		SystolicMin:  90,
		SystolicMax:  120,
		DiastolicMin: 60,
		DiastolicMax: 90,
		HeartRateMin: 60,
		HeartRateMax: 90,
	}

	DefaultSafetyBounds = SafetyBounds{
		SystolicMin:  30,
		SystolicMax:  250,
		DiastolicMin: 30,
		DiastolicMax: 250,
		HeartRateMin: 30,
		HeartRateMax: 150,
	}
)
