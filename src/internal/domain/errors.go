package domain

import "errors"

var ErrAlreadyExists = errors.New("account already exists")
var ErrNotFound = errors.New("record not found")
var ErrInvalidRequest = errors.New("invalid request")
var ErrAccountNotFound = errors.New("account not found")
var ErrCurrencyMismatch = errors.New("sender and receiver currencies don't match")
var ErrInsufficientBalance = errors.New("insufficient balance")
var ErrTimeout = errors.New("transfer timed out waiting for account locks")
var ErrInterrupted = errors.New("transfer interrupted")

// ErrSenderNotFound and ErrReceiverNotFound both match ErrAccountNotFound with errors.Is.
var (
	ErrSenderNotFound   = &accountRoleError{role: "sender"}
	ErrReceiverNotFound = &accountRoleError{role: "receiver"}
)

type accountRoleError struct {
	role string
}

func (e *accountRoleError) Error() string {
	return e.role + " account does not exist"
}

func (e *accountRoleError) Unwrap() error {
	return ErrAccountNotFound
}
