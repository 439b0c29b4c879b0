package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/api-sage/bankwire/src/internal/domain"
	"github.com/api-sage/bankwire/src/internal/logger"
)

// accountSlot holds the latest snapshot of one account. Each id owns its own
// slot, so operations on unrelated accounts never contend.
type accountSlot struct {
	current atomic.Pointer[domain.Account]
}

type AccountRepository struct {
	accounts sync.Map
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{}
}

func (r *AccountRepository) Create(_ context.Context, account domain.Account) (domain.Account, error) {
	slot := &accountSlot{}
	slot.current.Store(&account)

	if _, loaded := r.accounts.LoadOrStore(account.ID, slot); loaded {
		logger.Info("account repository create duplicate", logger.Fields{
			"accountId": account.ID,
		})
		return domain.Account{}, fmt.Errorf("account %s: %w", account.ID, domain.ErrAlreadyExists)
	}

	logger.Debug("account repository create success", logger.Fields{
		"accountId": account.ID,
		"currency":  account.Currency(),
		"balance":   account.Balance.Amount.String(),
	})

	return account, nil
}

func (r *AccountRepository) FindByID(_ context.Context, id string) (domain.Account, error) {
	slot, ok := r.slot(id)
	if !ok {
		return domain.Account{}, fmt.Errorf("account %s: %w", id, domain.ErrNotFound)
	}
	return *slot.current.Load(), nil
}

func (r *AccountRepository) Delete(_ context.Context, id string) (domain.Account, error) {
	value, loaded := r.accounts.LoadAndDelete(id)
	if !loaded {
		return domain.Account{}, fmt.Errorf("account %s: %w", id, domain.ErrNotFound)
	}

	logger.Debug("account repository delete success", logger.Fields{
		"accountId": id,
	})

	return *value.(*accountSlot).current.Load(), nil
}

func (r *AccountRepository) Debit(_ context.Context, id string, amount domain.Money) (domain.Account, error) {
	return r.update(id, func(balance domain.Money) (domain.Money, error) {
		return balance.Sub(amount)
	})
}

func (r *AccountRepository) Credit(_ context.Context, id string, amount domain.Money) (domain.Account, error) {
	return r.update(id, func(balance domain.Money) (domain.Money, error) {
		return balance.Add(amount)
	})
}

func (r *AccountRepository) ListAll(_ context.Context) ([]domain.Account, error) {
	accounts := make([]domain.Account, 0)
	r.accounts.Range(func(_, value any) bool {
		accounts = append(accounts, *value.(*accountSlot).current.Load())
		return true
	})
	return accounts, nil
}

func (r *AccountRepository) Clear(_ context.Context) error {
	r.accounts.Clear()
	return nil
}

func (r *AccountRepository) slot(id string) (*accountSlot, bool) {
	value, ok := r.accounts.Load(id)
	if !ok {
		return nil, false
	}
	return value.(*accountSlot), true
}

func (r *AccountRepository) update(id string, apply func(domain.Money) (domain.Money, error)) (domain.Account, error) {
	slot, ok := r.slot(id)
	if !ok {
		return domain.Account{}, fmt.Errorf("account %s: %w", id, domain.ErrNotFound)
	}

	for {
		prev := slot.current.Load()
		balance, err := apply(prev.Balance)
		if err != nil {
			return domain.Account{}, fmt.Errorf("account %s: %w", id, err)
		}

		next := prev.WithBalance(balance)
		if slot.current.CompareAndSwap(prev, &next) {
			return next, nil
		}
	}
}
