package vitals

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/vitals-console/pkg/common"
	"liyu1981.xyz/vitals-console/pkg/models"
	"liyu1981.xyz/vitals-console/pkg/threshold"
)

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// checkReading rejects inputs the classifier is not defined for.
func checkReading(systolic, diastolic float64, heartRate *float64) error {
	var violations threshold.Violations
	if !isFinite(systolic) {
		violations = append(violations, threshold.Violation{Field: "systolic", Message: "systolic must be a finite number"})
	}
	if !isFinite(diastolic) {
		violations = append(violations, threshold.Violation{Field: "diastolic", Message: "diastolic must be a finite number"})
	}
	if heartRate != nil && !isFinite(*heartRate) {
		violations = append(violations, threshold.Violation{Field: "heart_rate", Message: "heart_rate must be a finite number"})
	}
	if len(violations) > 0 {
		return newValidationError(violations)
	}
	return nil
}

func (v *Vitals) classifyReading(ctx context.Context, systolic, diastolic float64, heartRate *float64) (threshold.Classification, error) {
	if err := checkReading(systolic, diastolic, heartRate); err != nil {
		return "", err
	}
	active := v.activeOrDefault(ctx)
	return threshold.Classify(systolic, diastolic, heartRate, active.Config), nil
}

func (v *Vitals) addRecord(ctx context.Context, userID uint, input *models.HealthRecord) (*models.ClassifiedRecord, error) {
	logger := common.GetCategoryLogger(common.LoggerNameVitalsCore, common.LoggerCategoryRecord)

	if err := checkReading(input.Systolic, input.Diastolic, input.HeartRate); err != nil {
		return nil, err
	}

	record := models.HealthRecord{
		UserID:    userID,
		Timestamp: input.Timestamp,
		Systolic:  input.Systolic,
		Diastolic: input.Diastolic,
		HeartRate: input.HeartRate,
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().UTC()
	}

	logger.Info("Received record for user", zap.Uint("user_id", userID), zap.Reflect("record", record))

	if err := v.Db.Conn.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}

	active := v.activeOrDefault(ctx)
	classification := threshold.Classify(record.Systolic, record.Diastolic, record.HeartRate, active.Config)
	v.Metrics.RecordClassified(string(classification))

	logger.Info("Stored record for user",
		zap.Uint("record_id", record.ID),
		zap.String("classification", string(classification)),
		zap.Int64("threshold_version", active.Version))

	return &models.ClassifiedRecord{HealthRecord: record, Classification: classification}, nil
}

func (v *Vitals) listRecords(ctx context.Context, userID uint, limit int) ([]models.ClassifiedRecord, error) {
	var records []models.HealthRecord
	err := v.Db.Conn.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp desc").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	cfg := v.activeOrDefault(ctx).Config
	return common.Mapper(records, func(r models.HealthRecord) models.ClassifiedRecord {
		return models.ClassifiedRecord{
			HealthRecord:   r,
			Classification: threshold.Classify(r.Systolic, r.Diastolic, r.HeartRate, cfg),
		}
	}), nil
}

func (v *Vitals) forEachRecordBatch(ctx context.Context, batchSize int, fn func([]models.HealthRecord) error) error {
	var batch []models.HealthRecord
	return v.Db.Conn.WithContext(ctx).
		FindInBatches(&batch, batchSize, func(tx *gorm.DB, _ int) error {
			return fn(batch)
		}).Error
}

type IRecordImpl struct {
	vitals *Vitals
}

func (ir *IRecordImpl) AddRecord(ctx context.Context, userID uint, input *models.HealthRecord) (*models.ClassifiedRecord, error) {
	return ir.vitals.addRecord(ctx, userID, input)
}

func (ir *IRecordImpl) ListRecords(ctx context.Context, userID uint, limit int) ([]models.ClassifiedRecord, error) {
	return ir.vitals.listRecords(ctx, userID, limit)
}

func (ir *IRecordImpl) ClassifyReading(ctx context.Context, systolic, diastolic float64, heartRate *float64) (threshold.Classification, error) {
	return ir.vitals.classifyReading(ctx, systolic, diastolic, heartRate)
}

func (ir *IRecordImpl) ForEachRecordBatch(ctx context.Context, batchSize int, fn func([]models.HealthRecord) error) error {
	return ir.vitals.forEachRecordBatch(ctx, batchSize, fn)
}

func (v *Vitals) GetIRecord() IRecord {
	return &IRecordImpl{vitals: v}
}
