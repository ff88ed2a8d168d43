package threshold

type Classification string

const (
	Healthy    Classification = "healthy"
	Borderline Classification = "borderline"
	Abnormal   Classification = "abnormal"
)

var Classifications = []Classification{Healthy, Borderline, Abnormal}

// Classify bands one observation against cfg. A nil heartRate never downgrades the result.
// Callers must reject non-finite inputs first.
func Classify(systolic, diastolic float64, heartRate *float64, cfg Config) Classification {
	sys := cfg.Range(MetricSystolic)
	dia := cfg.Range(MetricDiastolic)
	hr := cfg.Range(MetricHeartRate)

	if sys.Contains(systolic) && dia.Contains(diastolic) && (heartRate == nil || hr.Contains(*heartRate)) {
		return Healthy
	}

	if sys.WithinMargin(systolic) && dia.WithinMargin(diastolic) && (heartRate == nil || hr.WithinMargin(*heartRate)) {
		return Borderline
	}

	return Abnormal
}
