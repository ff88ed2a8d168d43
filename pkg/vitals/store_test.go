package vitals

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"liyu1981.xyz/vitals-console/pkg/common"
	_ "liyu1981.xyz/vitals-console/pkg/testing"
)

type recordingGormWriter struct {
	lines []string
}

func (w *recordingGormWriter) Printf(format string, args ...any) {
	w.lines = append(w.lines, fmt.Sprintf(format, args...))
}

func TestEmptySlotLookupsDoNotLogErrors(t *testing.T) {
	common.SetTestLoggerNop()
	ctrl, v, _, _, _ := GetMockVitalsWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	writer := &recordingGormWriter{}
	v.Db.Conn = v.Db.Conn.Session(&gorm.Session{
		Logger: gormlogger.New(writer, gormlogger.Config{LogLevel: gormlogger.Warn}),
	})
	ctx := context.Background()

	active, err := v.Governance.FetchActive(ctx)
	require.NoError(t, err)
	assert.True(t, active.Fallback)

	draft, err := v.Governance.FetchDraft(ctx, superAdmin)
	require.NoError(t, err)
	assert.Nil(t, draft)

	_, err = v.Record.ClassifyReading(ctx, 118, 80, nil)
	require.NoError(t, err)

	// first draft and first publish both start from empty slots
	saved, err := v.Governance.SaveDraft(ctx, superAdmin, tighter)
	require.NoError(t, err)
	_, err = v.Governance.Publish(ctx, superAdmin, saved.ID)
	require.NoError(t, err)

	for _, line := range writer.lines {
		assert.NotContains(t, line, gorm.ErrRecordNotFound.Error())
	}
}
