package threshold

import (
	"fmt"
	"strings"
)

type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Violations []Violation

func (v Violations) Messages() []string {
	msgs := make([]string, len(v))
	for i := range v {
		msgs[i] = v[i].Message
	}
	return msgs
}

func (v Violations) Error() string {
	return strings.Join(v.Messages(), "; ")
}

// Validate checks every metric of cfg against bounds and its own min/max ordering,
// collecting every violation instead of stopping at the first.
func Validate(cfg Config, bounds SafetyBounds) Violations {
	var violations Violations

	for _, m := range Metrics {
		band := cfg.Range(m)
		envelope := bounds.Range(m)
		minField := string(m) + "_min"
		maxField := string(m) + "_max"

		if !envelope.Contains(band.Min) {
			violations = append(violations, Violation{
				Field:   minField,
				Message: fmt.Sprintf("%s must be between %s", minField, envelope),
			})
		}
		if !envelope.Contains(band.Max) {
			violations = append(violations, Violation{
				Field:   maxField,
				Message: fmt.Sprintf("%s must be between %s", maxField, envelope),
			})
		}
		if band.Min > band.Max {
			violations = append(violations, Violation{
				Field:   minField,
				Message: fmt.Sprintf("%s must not exceed %s", minField, maxField),
			})
		}
	}

	return violations
}
