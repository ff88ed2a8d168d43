package vitals

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/vitals-console/pkg/common"
	"liyu1981.xyz/vitals-console/pkg/models"
	"liyu1981.xyz/vitals-console/pkg/threshold"
)

type captureWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *captureWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *captureWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaBroadcaster(t *testing.T) {
	common.SetTestLoggerNop()

	w := &captureWriter{}
	kb := &KafkaBroadcaster{Writer: w}

	id := uint(7)
	err := kb.BroadcastActive(context.Background(), &models.ActiveThresholds{
		ID:           &id,
		Config:       tighter,
		Version:      3,
		SafetyBounds: threshold.DefaultSafetyBounds,
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "active", string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "3", string(msg.Headers[0].Value))

	var decoded models.ActiveThresholds
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, tighter, decoded.Config)
	assert.Equal(t, int64(3), decoded.Version)

	require.NoError(t, kb.Close())
	assert.True(t, w.closed)
}

func TestKafkaBroadcasterWriteError(t *testing.T) {
	common.SetTestLoggerNop()

	kb := &KafkaBroadcaster{Writer: &captureWriter{err: errors.New("leader not available")}}
	err := kb.BroadcastActive(context.Background(), DefaultActiveThresholds())
	assert.Error(t, err)
}

func TestNewKafkaBroadcaster(t *testing.T) {
	kb := NewKafkaBroadcaster([]string{"localhost:9092"}, common.DefaultKafkaThresholdTopic)
	writer, ok := kb.Writer.(*kafka.Writer)
	require.True(t, ok)
	assert.Equal(t, common.DefaultKafkaThresholdTopic, writer.Topic)
}
