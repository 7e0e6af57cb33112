package kafka

import (
	"context"
	"fmt"
	"time"

	"holocron-go/internal/config"
	"holocron-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Producer 向固定 topic 发送消息
type Producer struct {
	writer *kafka.Writer
	topic  string
}

// NewProducer 初始化 Kafka 生产者
func NewProducer(cfg *config.KafkaConfig) *Producer {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		WriteTimeout:           cfg.PublishTimeout(),
		MaxAttempts:            1,
		AllowAutoTopicCreation: true,
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
		zap.String("topic", cfg.Topic),
	)

	return &Producer{writer: writer, topic: cfg.Topic}
}

// Publish 发送一条消息，相同 key 落在同一分区以保证顺序
func (p *Producer) Publish(ctx context.Context, key string, value []byte) error {
	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send kafka message to %s: %w", p.topic, err)
	}
	return nil
}

// Close 关闭生产者
func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	logger.Info("Kafka producer closed")
	return p.writer.Close()
}
