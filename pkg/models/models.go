package models

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"liyu1981.xyz/vitals-console/pkg/threshold"
)

type Role string

const (
	RoleUser       Role = "USER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

var roleRank = map[Role]int{
	RoleUser:       0,
	RoleAdmin:      1,
	RoleSuperAdmin: 2,
}

// AtLeast compares roles by rank; unknown roles rank as USER.
func (r Role) AtLeast(min Role) bool {
	return roleRank[r] >= roleRank[min]
}

type ThresholdStatus string

const (
	ThresholdStatusDraft    ThresholdStatus = "draft"
	ThresholdStatusActive   ThresholdStatus = "active"
	ThresholdStatusInactive ThresholdStatus = "inactive"
)

type AuditAction string

const (
	AuditActionPublished AuditAction = "published"
)

type User struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	Username           string     `gorm:"uniqueIndex;not null" json:"username"`
	Email              string     `json:"email"`
	PasswordHash       string     `json:"-"`
	Role               Role       `gorm:"type:varchar(20);not null;check:role IN ('USER','ADMIN','SUPER_ADMIN')" json:"role"`
	MustChangePassword bool       `gorm:"not null;default:false" json:"must_change_password"`
	LastLoginAt        *time.Time `json:"last_login_at"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"-"`
}

type HealthRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
	Systolic  float64   `json:"systolic"`
	Diastolic float64   `json:"diastolic"`
	HeartRate *float64  `json:"heart_rate"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

// ThresholdVersion is one row per configuration version; at most one row is draft and
// at most one is active at any time.
type ThresholdVersion struct {
	ID              uint             `gorm:"primaryKey" json:"id"`
	Version         int64            `gorm:"uniqueIndex;not null" json:"version"`
	Status          ThresholdStatus  `gorm:"type:varchar(20);index;not null;check:status IN ('draft','active','inactive')" json:"status"`
	Config          threshold.Config `gorm:"embedded" json:"config"`
	CreatedByUserID uint             `json:"created_by_user_id"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	PublishedAt     *time.Time       `json:"published_at"`
}

type OperatorRef struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// ThresholdAuditLog is append-only: the hooks below refuse updates and deletes.
type ThresholdAuditLog struct {
	ID        uint                                  `gorm:"primaryKey" json:"id"`
	ConfigID  uint                                  `gorm:"index" json:"config_id"`
	Action    AuditAction                           `gorm:"type:varchar(20);not null" json:"action"`
	Operator  OperatorRef                           `gorm:"embedded;embeddedPrefix:operator_" json:"operator"`
	OldConfig *datatypes.JSONType[threshold.Config] `json:"old_config"`
	NewConfig datatypes.JSONType[threshold.Config]  `gorm:"not null" json:"new_config"`
	CreatedAt time.Time                             `gorm:"index" json:"created_at"`
}

var ErrAuditLogImmutable = errors.New("audit log entries cannot be modified")

func (ThresholdAuditLog) BeforeUpdate(tx *gorm.DB) error {
	return ErrAuditLogImmutable
}

func (ThresholdAuditLog) BeforeDelete(tx *gorm.DB) error {
	return ErrAuditLogImmutable
}
