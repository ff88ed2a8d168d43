package vitals

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/vitals-console/pkg/common"
	"liyu1981.xyz/vitals-console/pkg/models"
	"liyu1981.xyz/vitals-console/pkg/threshold"
)

const previewBatchSize = 500

var AuditCSVHeader = []string{"id", "action", "operator.username", "created_at", "new_config"}

// DefaultActiveThresholds is what readers fall back to when storage cannot be reached or
// nothing has been published yet.
func DefaultActiveThresholds() *models.ActiveThresholds {
	return &models.ActiveThresholds{
		Config:       threshold.DefaultConfig,
		Version:      0,
		SafetyBounds: threshold.DefaultSafetyBounds,
		Fallback:     true,
	}
}

func activeFromVersion(v *models.ThresholdVersion) *models.ActiveThresholds {
	id := v.ID
	return &models.ActiveThresholds{
		ID:           &id,
		Config:       v.Config,
		Version:      v.Version,
		PublishedAt:  v.PublishedAt,
		SafetyBounds: threshold.DefaultSafetyBounds,
	}
}

func requireSuperAdmin(operator models.Operator) error {
	if !operator.IsSuperAdmin() {
		return ErrForbidden
	}
	return nil
}

func (v *Vitals) fetchActive(ctx context.Context) (*models.ActiveThresholds, error) {
	active, err := v.Store.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	if active == nil {
		return DefaultActiveThresholds(), nil
	}
	return activeFromVersion(active), nil
}

// activeOrDefault is the degraded read used by classifier consumers: storage failures
// are logged and the built-in configuration is used instead.
func (v *Vitals) activeOrDefault(ctx context.Context) *models.ActiveThresholds {
	active, err := v.Governance.FetchActive(ctx)
	if err != nil {
		common.GetCategoryLogger(common.LoggerNameVitalsCore, common.LoggerCategoryThreshold).
			Warn("Falling back to default thresholds", zap.Error(err))
		return DefaultActiveThresholds()
	}
	return active
}

func (v *Vitals) fetchDraft(ctx context.Context, operator models.Operator) (*models.ThresholdDraft, error) {
	if !operator.IsSuperAdmin() {
		return nil, nil
	}
	draft, err := v.Store.GetDraft(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	return models.DraftFromVersion(draft), nil
}

func (v *Vitals) saveDraft(ctx context.Context, operator models.Operator, cfg threshold.Config, action string) (*models.ThresholdDraft, error) {
	logger := common.GetCategoryLogger(common.LoggerNameVitalsCore, common.LoggerCategoryThreshold)

	if err := requireSuperAdmin(operator); err != nil {
		v.Metrics.ThresholdAction(action, "forbidden")
		return nil, err
	}

	logger.Info("Received draft", zap.String("operator", operator.Username), zap.Reflect("config", cfg))

	if violations := threshold.Validate(cfg, threshold.DefaultSafetyBounds); len(violations) > 0 {
		v.Metrics.ThresholdAction(action, "invalid")
		logger.Info("Draft rejected", zap.Strings("violations", violations.Messages()))
		return nil, newValidationError(violations)
	}

	saved, err := v.Store.PutDraft(ctx, cfg, operator)
	if err != nil {
		v.Metrics.ThresholdAction(action, "error")
		return nil, err
	}

	v.Metrics.ThresholdAction(action, "ok")
	logger.Info("Saved draft", zap.Uint("draft_id", saved.ID), zap.Int64("version", saved.Version))

	return models.DraftFromVersion(saved), nil
}

func percentOf(n, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(n)/float64(total)*1000) / 10
}

func (v *Vitals) previewImpact(ctx context.Context, operator models.Operator, cfg threshold.Config) (*models.ImpactSummary, error) {
	if err := requireSuperAdmin(operator); err != nil {
		return nil, err
	}

	if violations := threshold.Validate(cfg, threshold.DefaultSafetyBounds); len(violations) > 0 {
		v.Metrics.ThresholdAction("preview", "invalid")
		return nil, newValidationError(violations)
	}

	summary := models.ImpactSummary{}
	err := v.Record.ForEachRecordBatch(ctx, previewBatchSize, func(records []models.HealthRecord) error {
		for i := range records {
			rec := &records[i]
			switch threshold.Classify(rec.Systolic, rec.Diastolic, rec.HeartRate, cfg) {
			case threshold.Healthy:
				summary.Healthy++
			case threshold.Borderline:
				summary.Borderline++
			default:
				summary.Abnormal++
			}
		}
		return nil
	})
	if err != nil {
		v.Metrics.ThresholdAction("preview", "error")
		return nil, err
	}

	summary.Total = summary.Healthy + summary.Borderline + summary.Abnormal
	summary.HealthyPct = percentOf(summary.Healthy, summary.Total)
	summary.BorderlinePct = percentOf(summary.Borderline, summary.Total)
	summary.AbnormalPct = percentOf(summary.Abnormal, summary.Total)

	v.Metrics.ThresholdAction("preview", "ok")
	return &summary, nil
}

func (v *Vitals) publish(ctx context.Context, operator models.Operator, draftID uint) (*models.ActiveThresholds, error) {
	logger := common.GetCategoryLogger(common.LoggerNameVitalsCore, common.LoggerCategoryThreshold)

	if err := requireSuperAdmin(operator); err != nil {
		v.Metrics.ThresholdAction("publish", "forbidden")
		return nil, err
	}

	published, audit, err := v.Store.SwapActiveAndClearDraft(ctx, draftID, operator)
	if err != nil {
		v.Metrics.ThresholdAction("publish", "error")
		logger.Info("Publish failed", zap.Uint("draft_id", draftID), zap.Error(err))
		return nil, err
	}

	active := activeFromVersion(published)

	v.Metrics.ThresholdAction("publish", "ok")
	v.Metrics.SetActiveVersion(active.Version)
	logger.Info("Published threshold config",
		zap.Uint("config_id", published.ID),
		zap.Int64("version", published.Version),
		zap.Uint("audit_id", audit.ID),
		zap.String("operator", operator.Username))

	// the swap is committed; a failed broadcast must not turn into a retried publish
	if v.Broadcaster != nil {
		if err := v.Broadcaster.BroadcastActive(ctx, active); err != nil {
			common.GetCategoryLogger(common.LoggerNameVitalsCore, common.LoggerCategoryBroadcast).
				Error("Broadcast of active thresholds failed", zap.Int64("version", active.Version), zap.Error(err))
		}
	}

	return active, nil
}

func (v *Vitals) listAuditPage(ctx context.Context, operator models.Operator, page, size int) (*models.AuditLogPage, error) {
	if err := requireSuperAdmin(operator); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}

	logs, total, err := v.Store.ListAuditLogs(ctx, (page-1)*size, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	return &models.AuditLogPage{
		Logs:       logs,
		Pagination: models.NewPagination(page, size, total),
	}, nil
}

func (v *Vitals) exportAuditLogs(ctx context.Context, operator models.Operator) ([]byte, error) {
	if err := requireSuperAdmin(operator); err != nil {
		return nil, err
	}

	logs, _, err := v.Store.ListAuditLogs(ctx, 0, -1)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	return RenderAuditCSV(logs)
}

// RenderAuditCSV writes the header plus one row per entry, with new_config as compact JSON.
func RenderAuditCSV(logs []models.ThresholdAuditLog) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(AuditCSVHeader); err != nil {
		return nil, err
	}

	for _, entry := range logs {
		cfg, err := json.Marshal(entry.NewConfig.Data())
		if err != nil {
			return nil, err
		}
		if err := w.Write([]string{
			strconv.FormatUint(uint64(entry.ID), 10),
			string(entry.Action),
			entry.Operator.Username,
			entry.CreatedAt.UTC().Format(time.RFC3339),
			string(cfg),
		}); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

type IGovernanceImpl struct {
	vitals *Vitals
}

func (ig *IGovernanceImpl) FetchActive(ctx context.Context) (*models.ActiveThresholds, error) {
	return ig.vitals.fetchActive(ctx)
}

func (ig *IGovernanceImpl) FetchDraft(ctx context.Context, operator models.Operator) (*models.ThresholdDraft, error) {
	return ig.vitals.fetchDraft(ctx, operator)
}

func (ig *IGovernanceImpl) Validate(cfg threshold.Config) threshold.Violations {
	return threshold.Validate(cfg, threshold.DefaultSafetyBounds)
}

func (ig *IGovernanceImpl) SaveDraft(ctx context.Context, operator models.Operator, cfg threshold.Config) (*models.ThresholdDraft, error) {
	return ig.vitals.saveDraft(ctx, operator, cfg, "draft")
}

func (ig *IGovernanceImpl) PreviewImpact(ctx context.Context, operator models.Operator, cfg threshold.Config) (*models.ImpactSummary, error) {
	return ig.vitals.previewImpact(ctx, operator, cfg)
}

func (ig *IGovernanceImpl) Publish(ctx context.Context, operator models.Operator, draftID uint) (*models.ActiveThresholds, error) {
	return ig.vitals.publish(ctx, operator, draftID)
}

func (ig *IGovernanceImpl) ResetToDefault(ctx context.Context, operator models.Operator) (*models.ThresholdDraft, error) {
	return ig.vitals.saveDraft(ctx, operator, threshold.DefaultConfig, "reset")
}

func (ig *IGovernanceImpl) ListAuditLogs(ctx context.Context, operator models.Operator, page, size int) (*models.AuditLogPage, error) {
	return ig.vitals.listAuditPage(ctx, operator, page, size)
}

func (ig *IGovernanceImpl) ExportAuditLogs(ctx context.Context, operator models.Operator) ([]byte, error) {
	return ig.vitals.exportAuditLogs(ctx, operator)
}

func (v *Vitals) GetIGovernance() IGovernance {
	return &IGovernanceImpl{vitals: v}
}
