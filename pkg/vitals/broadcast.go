package vitals

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"liyu1981.xyz/vitals-console/pkg/common"
	"liyu1981.xyz/vitals-console/pkg/models"
)

type NopBroadcaster struct{}

func (NopBroadcaster) BroadcastActive(ctx context.Context, active *models.ActiveThresholds) error {
	return nil
}

// MessageWriter is the part of *kafka.Writer the broadcaster needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaBroadcaster publishes every newly active configuration to one topic, keyed by a
// constant so consumers see versions in publish order.
type KafkaBroadcaster struct {
	Writer MessageWriter
}

const activeThresholdsKey = "active"

func NewKafkaBroadcaster(brokers []string, topic string) *KafkaBroadcaster {
	return &KafkaBroadcaster{
		Writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			WriteTimeout: 5 * time.Second,
			Async:        false,
		},
	}
}

func (kb *KafkaBroadcaster) BroadcastActive(ctx context.Context, active *models.ActiveThresholds) error {
	payload, err := json.Marshal(active)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(activeThresholdsKey),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "version", Value: []byte(strconv.FormatInt(active.Version, 10))},
		},
	}

	if err := kb.Writer.WriteMessages(ctx, msg); err != nil {
		return err
	}

	common.GetCategoryLogger(common.LoggerNameVitalsCore, common.LoggerCategoryBroadcast).
		Info("Broadcast active thresholds", zap.Int64("version", active.Version))
	return nil
}

func (kb *KafkaBroadcaster) Close() error {
	return kb.Writer.Close()
}
