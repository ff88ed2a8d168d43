package vitals

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"liyu1981.xyz/vitals-console/pkg/common"
	"liyu1981.xyz/vitals-console/pkg/models"
	"liyu1981.xyz/vitals-console/pkg/threshold"
)

func (v *Vitals) findVersion(ctx context.Context, status models.ThresholdStatus) (*models.ThresholdVersion, error) {
	var version models.ThresholdVersion
	// an empty slot is a normal state, Find keeps it out of the gorm error log
	result := v.Db.Conn.WithContext(ctx).
		Where("status = ?", status).
		Order("version desc").
		Limit(1).
		Find(&version)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &version, nil
}

func (v *Vitals) putDraft(ctx context.Context, cfg threshold.Config, operator models.Operator) (*models.ThresholdVersion, error) {
	v.writeMu.Lock()
	defer v.writeMu.Unlock()

	var draft models.ThresholdVersion

	err := v.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("status = ?", models.ThresholdStatusDraft).Limit(1).Find(&draft)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var maxVersion int64
			if err := tx.Model(&models.ThresholdVersion{}).
				Select("COALESCE(MAX(version), 0)").
				Scan(&maxVersion).Error; err != nil {
				return err
			}
			draft = models.ThresholdVersion{
				Version:         maxVersion + 1,
				Status:          models.ThresholdStatusDraft,
				Config:          cfg,
				CreatedByUserID: operator.ID,
			}
			return tx.Create(&draft).Error
		}

		// last write wins on the single draft slot
		draft.Config = cfg
		draft.CreatedByUserID = operator.ID
		return tx.Save(&draft).Error
	})
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

func (v *Vitals) swapActiveAndClearDraft(ctx context.Context, draftID uint, operator models.Operator) (*models.ThresholdVersion, *models.ThresholdAuditLog, error) {
	v.writeMu.Lock()
	defer v.writeMu.Unlock()

	logger := common.GetCategoryLogger(common.LoggerNameVitalsCore, common.LoggerCategoryAudit)

	var draft models.ThresholdVersion
	var audit models.ThresholdAuditLog

	err := v.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ? AND status = ?", draftID, models.ThresholdStatusDraft).First(&draft).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoDraft
		}
		if err != nil {
			return err
		}

		var previous *models.ThresholdVersion
		var current models.ThresholdVersion
		result := tx.Where("status = ?", models.ThresholdStatusActive).Limit(1).Find(&current)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			previous = &current
		}

		if err := tx.Model(&models.ThresholdVersion{}).
			Where("status = ?", models.ThresholdStatusActive).
			Update("status", models.ThresholdStatusInactive).Error; err != nil {
			return err
		}

		now := time.Now().UTC()
		draft.Status = models.ThresholdStatusActive
		draft.PublishedAt = &now
		if err := tx.Save(&draft).Error; err != nil {
			return err
		}

		audit = models.ThresholdAuditLog{
			ConfigID:  draft.ID,
			Action:    models.AuditActionPublished,
			Operator:  operator.Ref(),
			NewConfig: datatypes.NewJSONType(draft.Config),
		}
		if previous != nil {
			old := datatypes.NewJSONType(previous.Config)
			audit.OldConfig = &old
		}
		return tx.Create(&audit).Error
	})
	if err != nil {
		return nil, nil, err
	}

	logger.Info("Audit entry appended", zap.Uint("audit_id", audit.ID), zap.Uint("config_id", audit.ConfigID),
		zap.String("operator", audit.Operator.Username))

	return &draft, &audit, nil
}

func (v *Vitals) listAuditLogs(ctx context.Context, offset, limit int) ([]models.ThresholdAuditLog, int64, error) {
	query := v.Db.Conn.WithContext(ctx).Model(&models.ThresholdAuditLog{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	logs := []models.ThresholdAuditLog{}
	err := v.Db.Conn.WithContext(ctx).
		Order("created_at desc").
		Order("id desc").
		Offset(offset).
		Limit(limit).
		Find(&logs).Error
	return logs, total, err
}

type ConfigStoreImpl struct {
	vitals *Vitals
}

func (s *ConfigStoreImpl) GetActive(ctx context.Context) (*models.ThresholdVersion, error) {
	return s.vitals.findVersion(ctx, models.ThresholdStatusActive)
}

func (s *ConfigStoreImpl) GetDraft(ctx context.Context) (*models.ThresholdVersion, error) {
	return s.vitals.findVersion(ctx, models.ThresholdStatusDraft)
}

func (s *ConfigStoreImpl) PutDraft(ctx context.Context, cfg threshold.Config, operator models.Operator) (*models.ThresholdVersion, error) {
	return s.vitals.putDraft(ctx, cfg, operator)
}

func (s *ConfigStoreImpl) SwapActiveAndClearDraft(ctx context.Context, draftID uint, operator models.Operator) (*models.ThresholdVersion, *models.ThresholdAuditLog, error) {
	return s.vitals.swapActiveAndClearDraft(ctx, draftID, operator)
}

// ListAuditLogs returns newest first; a negative limit returns everything.
func (s *ConfigStoreImpl) ListAuditLogs(ctx context.Context, offset, limit int) ([]models.ThresholdAuditLog, int64, error) {
	return s.vitals.listAuditLogs(ctx, offset, limit)
}

func (v *Vitals) GetConfigStore() ConfigStore {
	return &ConfigStoreImpl{vitals: v}
}
