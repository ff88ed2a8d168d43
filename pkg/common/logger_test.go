package common

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	_ "liyu1981.xyz/vitals-console/pkg/testing"
)

func TestLoggingCapture(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	logger := GetLogger()
	logger.Info("Test log message", zap.String("key", "value"))

	logOutput := buf.String()
	if !strings.Contains(logOutput, "Test log message") {
		t.Errorf("expected log output to contain message, got: %s", logOutput)
	}
}

func TestCategoryLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	GetCategoryLogger(LoggerNameVitalsCore, LoggerCategoryThreshold).Info("draft saved")

	out := buf.String()
	assert.Contains(t, out, `"logger":"vitals_core"`)
	assert.Contains(t, out, `"category":"threshold"`)
	assert.Contains(t, out, `"msg":"draft saved"`)
}

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, []string{"a:9092", "b:9092"}, SplitCSV(" a:9092, ,b:9092 "))
	assert.Empty(t, SplitCSV(""))
}

func TestGetEnvOr(t *testing.T) {
	t.Setenv("VITALS_TEST_KEY", "  ")
	assert.Equal(t, "fallback", GetEnvOr("VITALS_TEST_KEY", "fallback"))

	t.Setenv("VITALS_TEST_KEY", " value ")
	assert.Equal(t, "value", GetEnvOr("VITALS_TEST_KEY", "fallback"))
}

func TestLogsDirFromEnv(t *testing.T) {
	t.Setenv(EnvKeyVitalsLogDir, "/var/log/vitals")
	assert.Equal(t, "/var/log/vitals", logsDir())

	t.Setenv(EnvKeyVitalsLogDir, "")
	assert.True(t, strings.HasSuffix(logsDir(), "logs"))
}
