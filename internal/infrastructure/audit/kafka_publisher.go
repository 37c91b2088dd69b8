package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"moving_pricing/internal/domain/entities"
	"moving_pricing/internal/usecase/interfaces"
)

type kafkaMessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher exports one audit record per calculated estimate, keyed by
// estimate id so every record of an estimate lands on the same partition.
type KafkaPublisher struct {
	writer kafkaMessageWriter
}

var _ interfaces.IAuditPublisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{writer: &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		WriteTimeout: 5 * time.Second,
	}}
}

func newKafkaPublisherWith(w kafkaMessageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) Publish(ctx context.Context, ev entities.AuditEvent) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(ev.EstimateID),
		Value: b,
		Headers: []kafka.Header{
			{Key: "rules_version", Value: []byte(ev.RulesVersion)},
			{Key: "result_hash", Value: []byte(ev.ResultHash)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write audit event %s: %w", ev.EstimateID, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// LogPublisher writes audit records to the service log. Used when no
// brokers are configured.
type LogPublisher struct {
	log *zap.Logger
}

var _ interfaces.IAuditPublisher = (*LogPublisher)(nil)

func NewLogPublisher(log *zap.Logger) *LogPublisher {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogPublisher{log: log}
}

func (p *LogPublisher) Publish(_ context.Context, ev entities.AuditEvent) error {
	p.log.Info("[estimate][audit] record",
		zap.String("estimate_id", ev.EstimateID),
		zap.String("customer_id", ev.CustomerID),
		zap.String("calculated_by", ev.CalculatedBy),
		zap.String("rules_version", ev.RulesVersion),
		zap.Float64("final_price", ev.FinalPrice),
		zap.String("input_hash", ev.InputHash),
		zap.String("result_hash", ev.ResultHash),
		zap.Time("calculated_at", ev.CalculatedAt))
	return nil
}
