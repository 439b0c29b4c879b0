package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/api-sage/bankwire/src/internal/domain"
	"github.com/api-sage/bankwire/src/internal/usecase/services"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
	deadline bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	_, w.deadline = ctx.Deadline()
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func committed() domain.Transfer {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	transfer := domain.NewTransfer("tx-1", "A", "B", domain.NewMoney(decimal.RequireFromString("12.34"), domain.EUR), created)
	transfer.MarkCommitted(created.Add(time.Millisecond))
	return transfer
}

func TestKafkaPublisherPublishesCommittedTransfer(t *testing.T) {
	writer := &fakeWriter{}
	publisher := newKafkaPublisher(writer, "bankwire.transfers")

	require.NoError(t, publisher.PublishTransferCommitted(context.Background(), committed()))
	require.Len(t, writer.messages, 1)
	assert.True(t, writer.deadline)

	msg := writer.messages[0]
	assert.Equal(t, "tx-1", string(msg.Key))

	var event TransferCommittedEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.Equal(t, TransferCommittedEventType, event.Type)
	assert.Equal(t, "A", event.SenderAccountID)
	assert.Equal(t, "B", event.ReceiverAccountID)
	assert.Equal(t, "EUR", event.Currency)
	assert.True(t, event.Amount.Equal(decimal.RequireFromString("12.34")))
	assert.True(t, event.CommittedAt.After(event.CreatedAt))

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestKafkaPublisherWrapsWriteErrors(t *testing.T) {
	brokerErr := errors.New("leader not available")
	publisher := newKafkaPublisher(&fakeWriter{err: brokerErr}, "bankwire.transfers")

	err := publisher.PublishTransferCommitted(context.Background(), committed())
	require.ErrorIs(t, err, brokerErr)
	assert.Contains(t, err.Error(), "tx-1")
}

var (
	_ services.TransferPublisher = (*KafkaPublisher)(nil)
	_ services.TransferPublisher = NopPublisher{}
)

func TestNopPublisher(t *testing.T) {
	publisher := NopPublisher{}
	assert.NoError(t, publisher.PublishTransferCommitted(context.Background(), committed()))
	assert.NoError(t, publisher.Close())
}

func TestEnsureTopicRequiresBrokers(t *testing.T) {
	assert.Error(t, EnsureTopic(context.Background(), nil, "bankwire.transfers"))
}
