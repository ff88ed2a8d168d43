package db

import (
	"os"
	"path/filepath"
	"testing"

	"liyu1981.xyz/vitals-console/pkg/common"
	constant "liyu1981.xyz/vitals-console/pkg/common"
)

func TestWithEnvPath(t *testing.T) {
	common.SetTestLoggerNop()

	if os.Getenv(constant.EnvKeyRunIntegrationTests) != "true" {
		t.Skip("Skipping integration test: RUN_INTEGRATION_TESTS environment variable not set")
	}

	testPath := filepath.Join(t.TempDir(), "test.db")
	t.Setenv(constant.EnvKeyVitalsDbPath, testPath)

	instance, err := Open(UseSqliteDialector())
	if err != nil || instance == nil || instance.Conn == nil {
		t.Fatalf("Expected non-nil DB connection, err: %v", err)
	}

	if _, err := os.Stat(testPath); os.IsNotExist(err) {
		t.Errorf("Expected database file to be created at %s", testPath)
	}
}

func TestWithPostgresDSN(t *testing.T) {
	common.SetTestLoggerNop()

	dsn := os.Getenv(constant.EnvKeyVitalsPostgresDSN)
	if os.Getenv(constant.EnvKeyRunIntegrationTests) != "true" || dsn == "" {
		t.Skip("Skipping integration test: RUN_INTEGRATION_TESTS or VITALS_POSTGRES_DSN not set")
	}

	dialector, err := UsePostgresDialector(dsn)
	if err != nil {
		t.Fatalf("Failed to build postgres dialector: %v", err)
	}

	instance, err := Open(dialector)
	if err != nil || instance == nil {
		t.Fatalf("Expected postgres connection, err: %v", err)
	}
}
