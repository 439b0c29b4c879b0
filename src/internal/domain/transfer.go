package domain

import "time"

type TransferStatus string

const (
	TransferStatusPending   TransferStatus = "PENDING"
	TransferStatusCommitted TransferStatus = "COMMITTED"
	TransferStatusAbandoned TransferStatus = "ABANDONED"
)

type Transfer struct {
	ID          string
	SenderID    string
	ReceiverID  string
	Amount      Money
	Status      TransferStatus
	CreatedAt   time.Time
	CompletedAt *time.Time
}

func NewTransfer(id string, senderID string, receiverID string, amount Money, createdAt time.Time) Transfer {
	return Transfer{
		ID:         id,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Amount:     amount,
		Status:     TransferStatusPending,
		CreatedAt:  createdAt,
	}
}

func (t Transfer) Currency() Currency {
	return t.Amount.Currency
}

func (t Transfer) IsPending() bool {
	return t.Status == TransferStatusPending
}

func (t *Transfer) markCompleted(status TransferStatus, at time.Time) {
	t.Status = status
	t.CompletedAt = &at
}

func (t *Transfer) MarkCommitted(at time.Time) {
	t.markCompleted(TransferStatusCommitted, at)
}

func (t *Transfer) MarkAbandoned(at time.Time) {
	t.markCompleted(TransferStatusAbandoned, at)
}
