package models

import (
	"errors"
	"strings"
	"time"

	"github.com/api-sage/bankwire/src/internal/domain"
	"github.com/shopspring/decimal"
)

// TransferRequest carries already-typed transfer input. Currency may be left
// empty, in which case the sender account's currency is used.
type TransferRequest struct {
	SenderAccountID   string          `json:"senderAccountNumber"`
	ReceiverAccountID string          `json:"receiverAccountNumber"`
	Money             decimal.Decimal `json:"money"`
	Currency          string          `json:"currencyCode,omitempty"`
}

func (r TransferRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.SenderAccountID) == "" || strings.TrimSpace(r.ReceiverAccountID) == "" {
		errs = append(errs, "senderAccountNumber and receiverAccountNumber are mandatory")
	}
	if r.Money.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "money must be greater than zero")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type TransferResponse struct {
	TransferID        string          `json:"transferId"`
	SenderAccountID   string          `json:"senderAccountNumber"`
	ReceiverAccountID string          `json:"receiverAccountNumber"`
	Money             decimal.Decimal `json:"money"`
	Currency          string          `json:"currencyCode"`
	Status            string          `json:"status"`
	CreatedAt         string          `json:"createdAt"`
	CompletedAt       string          `json:"completedAt,omitempty"`
}

func NewTransferResponse(transfer domain.Transfer) TransferResponse {
	response := TransferResponse{
		TransferID:        transfer.ID,
		SenderAccountID:   transfer.SenderID,
		ReceiverAccountID: transfer.ReceiverID,
		Money:             transfer.Amount.Amount,
		Currency:          transfer.Currency().String(),
		Status:            string(transfer.Status),
		CreatedAt:         transfer.CreatedAt.Format(time.RFC3339),
	}
	if transfer.CompletedAt != nil {
		response.CompletedAt = transfer.CompletedAt.Format(time.RFC3339)
	}
	return response
}
