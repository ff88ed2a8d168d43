package models

import (
	"time"

	"liyu1981.xyz/vitals-console/pkg/threshold"
)

// Operator is the authenticated actor behind a request.
type Operator struct {
	ID       uint
	Username string
	Role     Role
}

func (o Operator) IsSuperAdmin() bool {
	return o.Role == RoleSuperAdmin
}

func (o Operator) Ref() OperatorRef {
	return OperatorRef{ID: o.ID, Username: o.Username}
}

type ActiveThresholds struct {
	ID           *uint                  `json:"id"`
	Config       threshold.Config       `json:"config"`
	Version      int64                  `json:"version"`
	PublishedAt  *time.Time             `json:"published_at"`
	SafetyBounds threshold.SafetyBounds `json:"safety_bounds"`
	Fallback     bool                   `json:"fallback,omitempty"`
}

type ThresholdDraft struct {
	ID        uint             `json:"id"`
	Config    threshold.Config `json:"config"`
	Version   int64            `json:"version"`
	CreatedAt time.Time        `json:"created_at"`
}

func DraftFromVersion(v *ThresholdVersion) *ThresholdDraft {
	if v == nil {
		return nil
	}
	return &ThresholdDraft{ID: v.ID, Config: v.Config, Version: v.Version, CreatedAt: v.CreatedAt}
}

type ImpactSummary struct {
	Healthy       int64   `json:"healthy"`
	HealthyPct    float64 `json:"healthy_pct"`
	Borderline    int64   `json:"borderline"`
	BorderlinePct float64 `json:"borderline_pct"`
	Abnormal      int64   `json:"abnormal"`
	AbnormalPct   float64 `json:"abnormal_pct"`
	Total         int64   `json:"total"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

func NewPagination(page, size int, total int64) Pagination {
	pages := int64(0)
	if size > 0 {
		pages = (total + int64(size) - 1) / int64(size)
	}
	return Pagination{Page: page, Size: size, Total: total, Pages: pages}
}

type AuditLogPage struct {
	Logs       []ThresholdAuditLog `json:"logs"`
	Pagination Pagination          `json:"pagination"`
}

type ClassifiedRecord struct {
	HealthRecord
	Classification threshold.Classification `json:"classification"`
}
