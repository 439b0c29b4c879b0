package events

import (
	"context"
	"fmt"
	"time"

	"github.com/api-sage/bankwire/src/internal/domain"
	"github.com/api-sage/bankwire/src/internal/logger"
	"github.com/segmentio/kafka-go"
)

const kafkaWriteTimeout = 10 * time.Second

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer messageWriter
	topic  string
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		WriteTimeout: kafkaWriteTimeout,
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		Logger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			logger.Debug(fmt.Sprintf(msg, args...), nil)
		}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			logger.Error(fmt.Sprintf(msg, args...), nil, nil)
		}),
	}

	return newKafkaPublisher(writer, topic)
}

func newKafkaPublisher(writer messageWriter, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: writer,
		topic:  topic,
	}
}

// PublishTransferCommitted keys the message by transfer id so redeliveries of
// the same transfer land on one partition.
func (p *KafkaPublisher) PublishTransferCommitted(ctx context.Context, transfer domain.Transfer) error {
	payload, err := NewTransferCommittedEvent(transfer).Marshal()
	if err != nil {
		return fmt.Errorf("marshal transfer committed event: %w", err)
	}

	produceCtx, cancel := context.WithTimeout(ctx, kafkaWriteTimeout)
	defer cancel()

	if err := p.writer.WriteMessages(produceCtx, kafka.Message{
		Key:   []byte(transfer.ID),
		Value: payload,
	}); err != nil {
		return fmt.Errorf("publish transfer %s to %s: %w", transfer.ID, p.topic, err)
	}

	logger.Debug("transfer event published", logger.Fields{
		"transferId": transfer.ID,
		"topic":      p.topic,
	})
	return nil
}

func (p *KafkaPublisher) Close() error {
	if p.writer == nil {
		return nil
	}
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("close kafka writer: %w", err)
	}
	return nil
}
