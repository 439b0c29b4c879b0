package models

import (
	"errors"
	"strings"
	"time"

	"github.com/api-sage/bankwire/src/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateAccountRequest struct {
	AccountID string              `json:"accountNumber,omitempty"`
	FirstName string              `json:"firstName"`
	LastName  string              `json:"lastName"`
	Money     decimal.NullDecimal `json:"money"`
	Currency  string              `json:"currencyCode"`
}

func (r CreateAccountRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.FirstName) == "" || strings.TrimSpace(r.LastName) == "" {
		errs = append(errs, "firstName and lastName are mandatory")
	}
	if strings.TrimSpace(r.Currency) == "" {
		errs = append(errs, "currencyCode is required")
	}
	if !r.Money.Valid {
		errs = append(errs, "money is required")
	} else if r.Money.Decimal.IsNegative() {
		errs = append(errs, "money cannot be negative")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type AccountResponse struct {
	AccountID string          `json:"accountNumber"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Balance   decimal.Decimal `json:"balance"`
	Currency  string          `json:"currencyCode"`
	CreatedAt string          `json:"createdAt"`
}

func NewAccountResponse(account domain.Account) AccountResponse {
	return AccountResponse{
		AccountID: account.ID,
		FirstName: account.Owner.FirstName,
		LastName:  account.Owner.LastName,
		Balance:   account.Balance.Amount,
		Currency:  account.Currency().String(),
		CreatedAt: account.CreatedAt.Format(time.RFC3339),
	}
}
