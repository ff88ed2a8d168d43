package db

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"liyu1981.xyz/vitals-console/pkg/common"
	"liyu1981.xyz/vitals-console/pkg/models"
	_ "liyu1981.xyz/vitals-console/pkg/testing"
	"liyu1981.xyz/vitals-console/pkg/threshold"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func tableExists(db *gorm.DB, tableName string) bool {
	var count int64
	err := db.Raw(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name=?`, tableName,
	).Scan(&count).Error
	return err == nil && count > 0
}

func TestWithMemorySqlite(t *testing.T) {
	common.SetTestLoggerNop()

	instance := GetInstance(UseMemorySqliteDialector())
	if instance == nil {
		t.Fatal("Expected non-nil DB instance")
	}

	var tables = []string{"users", "health_records", "threshold_versions", "threshold_audit_logs"}
	for _, table := range tables {
		if !tableExists(instance.Conn, table) {
			t.Errorf("Expected table %q to exist after migration", table)
		}
	}
}

func TestSingletonConcurrency(t *testing.T) {
	common.SetTestLoggerNop()

	const goroutineCount = 20

	var wg sync.WaitGroup
	instances := make(chan *DB, goroutineCount)

	for range goroutineCount {
		wg.Add(1)
		go func() {
			defer wg.Done()
			instances <- GetInstance(UseMemorySqliteDialector())
		}()
	}

	wg.Wait()
	close(instances)

	var first *DB
	for inst := range instances {
		if first == nil {
			first = inst
			continue
		}
		if inst != first {
			t.Error("Expected all instances to be the same (singleton), but found different ones")
		}
	}
}

func TestIsolatedInstancesDoNotShareRows(t *testing.T) {
	common.SetTestLoggerNop()

	a, err := Open(UseIsolatedMemorySqliteDialector())
	require.NoError(t, err)
	b, err := Open(UseIsolatedMemorySqliteDialector())
	require.NoError(t, err)

	require.NoError(t, a.Conn.Create(&models.User{Username: "alice", Role: models.RoleUser}).Error)

	var count int64
	require.NoError(t, b.Conn.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestAuditLogIsAppendOnly(t *testing.T) {
	common.SetTestLoggerNop()

	instance, err := Open(UseIsolatedMemorySqliteDialector())
	require.NoError(t, err)

	entry := models.ThresholdAuditLog{
		ConfigID:  1,
		Action:    models.AuditActionPublished,
		Operator:  models.OperatorRef{ID: 1, Username: "root"},
		NewConfig: datatypes.NewJSONType(threshold.DefaultConfig),
	}
	require.NoError(t, instance.Conn.Create(&entry).Error)

	err = instance.Conn.Model(&entry).Update("action", "edited").Error
	assert.ErrorIs(t, err, models.ErrAuditLogImmutable)

	err = instance.Conn.Delete(&entry).Error
	assert.ErrorIs(t, err, models.ErrAuditLogImmutable)

	var stored models.ThresholdAuditLog
	require.NoError(t, instance.Conn.First(&stored, entry.ID).Error)
	assert.Equal(t, models.AuditActionPublished, stored.Action)
	assert.Equal(t, threshold.DefaultConfig, stored.NewConfig.Data())
	assert.Nil(t, stored.OldConfig)
}
