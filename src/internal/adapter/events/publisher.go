package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/api-sage/bankwire/src/internal/domain"
	"github.com/shopspring/decimal"
)

const TransferCommittedEventType = "transfer.committed"

type TransferCommittedEvent struct {
	Type              string          `json:"type"`
	TransferID        string          `json:"transferId"`
	SenderAccountID   string          `json:"senderAccountId"`
	ReceiverAccountID string          `json:"receiverAccountId"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	CreatedAt         time.Time       `json:"createdAt"`
	CommittedAt       time.Time       `json:"committedAt"`
}

func NewTransferCommittedEvent(transfer domain.Transfer) TransferCommittedEvent {
	event := TransferCommittedEvent{
		Type:              TransferCommittedEventType,
		TransferID:        transfer.ID,
		SenderAccountID:   transfer.SenderID,
		ReceiverAccountID: transfer.ReceiverID,
		Amount:            transfer.Amount.Amount,
		Currency:          transfer.Currency().String(),
		CreatedAt:         transfer.CreatedAt,
	}
	if transfer.CompletedAt != nil {
		event.CommittedAt = *transfer.CompletedAt
	}
	return event
}

func (e TransferCommittedEvent) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishTransferCommitted(context.Context, domain.Transfer) error {
	return nil
}

func (NopPublisher) Close() error {
	return nil
}
