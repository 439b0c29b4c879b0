package domain

import (
	"sync"
	"time"
)

type Owner struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Account is a ledger entry holding a balance in one currency. Copies of an
// Account share the same lock, so a snapshot returned by the store can be
// used to lock the account it was taken from.
type Account struct {
	ID        string
	Owner     Owner
	Balance   Money
	CreatedAt time.Time

	lock *sync.Mutex
}

func NewAccount(id string, owner Owner, balance Money, createdAt time.Time) Account {
	return Account{
		ID:        id,
		Owner:     owner,
		Balance:   balance,
		CreatedAt: createdAt,
		lock:      &sync.Mutex{},
	}
}

func (a Account) Currency() Currency {
	return a.Balance.Currency
}

// TryLock acquires the account lock without waiting.
func (a Account) TryLock() bool {
	if a.lock == nil {
		return false
	}
	return a.lock.TryLock()
}

func (a Account) Unlock() {
	a.lock.Unlock()
}

// SameAs reports whether both values are snapshots of the same account record.
func (a Account) SameAs(other Account) bool {
	return a.lock != nil && a.lock == other.lock
}

// WithBalance returns a snapshot of the same account carrying balance.
func (a Account) WithBalance(balance Money) Account {
	a.Balance = balance
	return a
}
