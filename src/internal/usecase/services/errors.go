package services

import (
	"errors"

	"github.com/api-sage/bankwire/src/internal/domain"
)

func failureMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return "validation failed"
	case errors.Is(err, domain.ErrSenderNotFound):
		return "Sender account not found"
	case errors.Is(err, domain.ErrReceiverNotFound):
		return "Receiver account not found"
	case errors.Is(err, domain.ErrAccountNotFound), errors.Is(err, domain.ErrNotFound):
		return "Record not found"
	case errors.Is(err, domain.ErrAlreadyExists):
		return "Account already exists"
	case errors.Is(err, domain.ErrCurrencyMismatch):
		return "Currency mismatch"
	case errors.Is(err, domain.ErrInsufficientBalance):
		return "Insufficient balance"
	case errors.Is(err, domain.ErrTimeout):
		return "Transfer timed out"
	case errors.Is(err, domain.ErrInterrupted):
		return "Transfer interrupted"
	default:
		return "Unable to process request right now"
	}
}
