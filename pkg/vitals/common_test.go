package vitals

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"liyu1981.xyz/vitals-console/pkg/db"
	"liyu1981.xyz/vitals-console/pkg/models"
	"liyu1981.xyz/vitals-console/pkg/vitals/mocks"
)

var (
	superAdmin = models.Operator{ID: 1, Username: "root", Role: models.RoleSuperAdmin}
	admin      = models.Operator{ID: 2, Username: "ops", Role: models.RoleAdmin}
	plainUser  = models.Operator{ID: 3, Username: "patient", Role: models.RoleUser}
)

// GetMockVitalsWithMemorySqliteDialector builds a Vitals on its own in-memory database and
// swaps in mocks for the requested collaborators.
func GetMockVitalsWithMemorySqliteDialector(t *testing.T, useMockStore, useMockRecord, useMockBroadcaster bool) (
	*gomock.Controller,
	*Vitals,
	*mocks.MockConfigStore,
	*mocks.MockIRecord,
	*mocks.MockBroadcaster,
) {
	ctrl := gomock.NewController(t)

	mockStore := mocks.NewMockConfigStore(ctrl)
	mockRecord := mocks.NewMockIRecord(ctrl)
	mockBroadcaster := mocks.NewMockBroadcaster(ctrl)

	dbInstance, err := db.Open(db.UseIsolatedMemorySqliteDialector())
	require.NoError(t, err)
	vitalsInstance := &Vitals{Db: *dbInstance}

	opts := ServiceOpts{}
	if useMockStore {
		opts.Store = mockStore
	}
	if useMockRecord {
		opts.Record = mockRecord
	}
	if useMockBroadcaster {
		opts.Broadcaster = mockBroadcaster
	}
	vitalsInstance.WithServices(opts).WithDefaultServices()

	return ctrl, vitalsInstance, mockStore, mockRecord, mockBroadcaster
}

func seedRecords(t *testing.T, v *Vitals, userID uint, readings [][3]float64) {
	for _, r := range readings {
		hr := r[2]
		rec := models.HealthRecord{UserID: userID, Systolic: r[0], Diastolic: r[1], HeartRate: &hr}
		if hr == 0 {
			rec.HeartRate = nil
		}
		require.NoError(t, v.Db.Conn.Create(&rec).Error)
	}
}

func seedUser(t *testing.T, v *Vitals, username string, role models.Role) *models.User {
	user, err := v.CreateUser(context.Background(), username, username+"@example.com", "password123", role)
	require.NoError(t, err)
	return user
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		var j any
		if err := json.Unmarshal(scanner.Bytes(), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
