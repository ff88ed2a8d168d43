package vitals

//go:generate mockgen -source=vitals.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"sync"

	"liyu1981.xyz/vitals-console/pkg/db"
	"liyu1981.xyz/vitals-console/pkg/metrics"
	"liyu1981.xyz/vitals-console/pkg/models"
	"liyu1981.xyz/vitals-console/pkg/threshold"
)

// ConfigStore owns the single Active slot, the single Draft slot and the audit ledger.
// GetActive and GetDraft return (nil, nil) when the slot is empty.
type ConfigStore interface {
	GetActive(ctx context.Context) (*models.ThresholdVersion, error)
	GetDraft(ctx context.Context) (*models.ThresholdVersion, error)
	PutDraft(ctx context.Context, cfg threshold.Config, operator models.Operator) (*models.ThresholdVersion, error)
	// SwapActiveAndClearDraft promotes the draft, retires the previous active version and
	// appends one audit entry, all or nothing.
	SwapActiveAndClearDraft(ctx context.Context, draftID uint, operator models.Operator) (*models.ThresholdVersion, *models.ThresholdAuditLog, error)
	ListAuditLogs(ctx context.Context, offset, limit int) ([]models.ThresholdAuditLog, int64, error)
}

type IGovernance interface {
	FetchActive(ctx context.Context) (*models.ActiveThresholds, error)
	FetchDraft(ctx context.Context, operator models.Operator) (*models.ThresholdDraft, error)
	Validate(cfg threshold.Config) threshold.Violations
	SaveDraft(ctx context.Context, operator models.Operator, cfg threshold.Config) (*models.ThresholdDraft, error)
	PreviewImpact(ctx context.Context, operator models.Operator, cfg threshold.Config) (*models.ImpactSummary, error)
	Publish(ctx context.Context, operator models.Operator, draftID uint) (*models.ActiveThresholds, error)
	ResetToDefault(ctx context.Context, operator models.Operator) (*models.ThresholdDraft, error)
	ListAuditLogs(ctx context.Context, operator models.Operator, page, size int) (*models.AuditLogPage, error)
	ExportAuditLogs(ctx context.Context, operator models.Operator) ([]byte, error)
}

type IRecord interface {
	AddRecord(ctx context.Context, userID uint, input *models.HealthRecord) (*models.ClassifiedRecord, error)
	ListRecords(ctx context.Context, userID uint, limit int) ([]models.ClassifiedRecord, error)
	ClassifyReading(ctx context.Context, systolic, diastolic float64, heartRate *float64) (threshold.Classification, error)
	ForEachRecordBatch(ctx context.Context, batchSize int, fn func([]models.HealthRecord) error) error
}

type IAdmin interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
	ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error
	GetUser(ctx context.Context, userID uint) (*models.User, error)
	ListUsers(ctx context.Context, operator models.Operator) ([]models.User, error)
	PromoteAdmin(ctx context.Context, operator models.Operator, userID uint) (*models.User, error)
	DemoteAdmin(ctx context.Context, operator models.Operator, userID uint) (*models.User, error)
	ResetPassword(ctx context.Context, operator models.Operator, userID uint) (string, error)
	RegisterUser(ctx context.Context, operator models.Operator, username, email, password string) (*models.User, error)
	EnsureSuperAdmin(ctx context.Context, username, password string) (*models.User, error)
}

// Broadcaster pushes a newly published configuration to classifier consumers.
type Broadcaster interface {
	BroadcastActive(ctx context.Context, active *models.ActiveThresholds) error
}

type Vitals struct {
	Db          db.DB
	Store       ConfigStore
	Record      IRecord
	Governance  IGovernance
	Admin       IAdmin
	Broadcaster Broadcaster
	Metrics     *metrics.Collector

	// serializes writers of the Draft and Active slots
	writeMu sync.Mutex
}

type ServiceOpts struct {
	Store       ConfigStore
	Record      IRecord
	Governance  IGovernance
	Admin       IAdmin
	Broadcaster Broadcaster
	Metrics     *metrics.Collector
}

func (v *Vitals) WithServices(opts ServiceOpts) *Vitals {
	if opts.Store != nil {
		v.Store = opts.Store
	}
	if opts.Record != nil {
		v.Record = opts.Record
	}
	if opts.Governance != nil {
		v.Governance = opts.Governance
	}
	if opts.Admin != nil {
		v.Admin = opts.Admin
	}
	if opts.Broadcaster != nil {
		v.Broadcaster = opts.Broadcaster
	}
	if opts.Metrics != nil {
		v.Metrics = opts.Metrics
	}
	return v
}

// WithDefaultServices wires the gorm backed implementations for every unset service.
func (v *Vitals) WithDefaultServices() *Vitals {
	return v.WithServices(ServiceOpts{
		Store:       v.orDefaultStore(),
		Record:      v.orDefaultRecord(),
		Governance:  v.orDefaultGovernance(),
		Admin:       v.orDefaultAdmin(),
		Broadcaster: v.orDefaultBroadcaster(),
	})
}

func (v *Vitals) orDefaultStore() ConfigStore {
	if v.Store != nil {
		return v.Store
	}
	return v.GetConfigStore()
}

func (v *Vitals) orDefaultRecord() IRecord {
	if v.Record != nil {
		return v.Record
	}
	return v.GetIRecord()
}

func (v *Vitals) orDefaultGovernance() IGovernance {
	if v.Governance != nil {
		return v.Governance
	}
	return v.GetIGovernance()
}

func (v *Vitals) orDefaultAdmin() IAdmin {
	if v.Admin != nil {
		return v.Admin
	}
	return v.GetIAdmin()
}

func (v *Vitals) orDefaultBroadcaster() Broadcaster {
	if v.Broadcaster != nil {
		return v.Broadcaster
	}
	return NopBroadcaster{}
}
