// Package validation holds the side-effect-free checks run on a transfer
// before and after the engine acquires the account locks.
package validation

import (
	"fmt"
	"strings"

	"github.com/api-sage/bankwire/src/internal/domain"
)

// ValidateTransferRequest checks the shape of a transfer request: both ids
// present and distinct. Ids are compared case-insensitively.
func ValidateTransferRequest(senderID string, receiverID string) error {
	senderID = strings.TrimSpace(senderID)
	receiverID = strings.TrimSpace(receiverID)

	if senderID == "" || receiverID == "" {
		return fmt.Errorf("%w: sender and receiver account ids are mandatory", domain.ErrInvalidRequest)
	}
	if strings.EqualFold(senderID, receiverID) {
		return fmt.Errorf("%w: sender and receiver are identical", domain.ErrInvalidRequest)
	}
	return nil
}

func ValidateAmount(amount domain.Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", domain.ErrInvalidRequest)
	}
	return nil
}

// ValidateAccounts checks that both accounts resolved and share a currency.
func ValidateAccounts(sender domain.Account, senderFound bool, receiver domain.Account, receiverFound bool) error {
	if !senderFound {
		return domain.ErrSenderNotFound
	}
	if !receiverFound {
		return domain.ErrReceiverNotFound
	}
	if sender.Currency() != receiver.Currency() {
		return domain.ErrCurrencyMismatch
	}
	return nil
}

func ValidateTransferCurrency(sender domain.Account, amount domain.Money) error {
	if sender.Currency() != amount.Currency {
		return fmt.Errorf("%w: transfer is in %s, accounts hold %s", domain.ErrCurrencyMismatch, amount.Currency, sender.Currency())
	}
	return nil
}

func ValidateSufficientBalance(sender domain.Account, amount domain.Money) error {
	if sender.Balance.LessThan(amount) {
		return fmt.Errorf("%w: available %s", domain.ErrInsufficientBalance, sender.Balance)
	}
	return nil
}

// ValidateTransfer runs the existence, currency and sufficiency checks in the
// order the engine needs them.
func ValidateTransfer(sender domain.Account, senderFound bool, receiver domain.Account, receiverFound bool, amount domain.Money) error {
	if err := ValidateAccounts(sender, senderFound, receiver, receiverFound); err != nil {
		return err
	}
	if err := ValidateTransferCurrency(sender, amount); err != nil {
		return err
	}
	return ValidateSufficientBalance(sender, amount)
}
